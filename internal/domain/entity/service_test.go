package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want ServiceCategory
	}{
		{"Flight", CategoryFlight},
		{"flight", CategoryFlight},
		{"Avia ticket", CategoryFlight},
		{"Hotel", CategoryHotel},
		{"Accommodation", CategoryHotel},
		{"Group transfer", CategoryTransfer},
		{"Tour", CategoryTour},
		{"Package Tour", CategoryTour},
		{"Insurance", CategoryOther},
		{"", CategoryOther},
		{"  HOTEL  ", CategoryHotel},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCategory(tt.raw))
		})
	}
}

func TestSegmentKey(t *testing.T) {
	dep := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	a := FlightSegment{
		FlightNumber:           "BA123",
		Departure:              "LHR",
		Arrival:                "JFK",
		DepartureDate:          dep,
		DepartureTimeScheduled: "08:00",
		Airline:                "British Airways",
	}
	b := FlightSegment{
		FlightNumber:           "BA123",
		Departure:              "LHR",
		Arrival:                "JFK",
		DepartureDate:          dep,
		DepartureTimeScheduled: "08:00",
		CabinClass:             "Y",
	}

	// Display fields do not contribute to leg identity.
	assert.Equal(t, a.Key(), b.Key())

	c := b
	c.DepartureTimeScheduled = "09:00"
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestArrivalNextDay(t *testing.T) {
	dep := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

	sameDay := FlightSegment{DepartureDate: dep, ArrivalDate: dep}
	assert.False(t, sameDay.ArrivalNextDay())

	overnight := FlightSegment{DepartureDate: dep, ArrivalDate: dep.AddDate(0, 0, 1)}
	assert.True(t, overnight.ArrivalNextDay())

	noArrival := FlightSegment{DepartureDate: dep}
	assert.False(t, noArrival.ArrivalNextDay())
}

func TestServiceGroupKey(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	split := Service{ID: "s1", SplitGroupID: "g1", Category: CategoryHotel}
	assert.Equal(t, "g1", split.GroupKey())

	plain := Service{ID: "s2", Category: CategoryHotel, Name: "Grand Hotel", DateFrom: &from, DateTo: &to}
	twin := Service{ID: "s3", Category: CategoryHotel, Name: "Grand Hotel", DateFrom: &from, DateTo: &to}
	assert.Equal(t, plain.GroupKey(), twin.GroupKey())

	other := Service{ID: "s4", Category: CategoryHotel, Name: "Grand Hotel", DateFrom: &from}
	assert.NotEqual(t, plain.GroupKey(), other.GroupKey())
}

func TestCancelled(t *testing.T) {
	assert.True(t, (&Service{ResStatus: "cancelled"}).Cancelled())
	assert.True(t, (&Service{ResStatus: " Cancelled "}).Cancelled())
	assert.False(t, (&Service{ResStatus: "confirmed"}).Cancelled())
	assert.False(t, (&Service{}).Cancelled())
}
