package usecase

import (
	"reflect"
	"testing"

	"travel-itinerary-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func travelDayFixture() []entity.Service {
	return []entity.Service{
		{
			ID: "h1", Category: entity.CategoryHotel, SplitGroupID: "g1", HotelName: "Grand Hotel",
			DateFrom: dayPtr("2025-07-05"), DateTo: dayPtr("2025-07-10"),
			AssignedTravellerIDs: []string{"A"},
		},
		{
			ID: "h2", Category: entity.CategoryHotel, SplitGroupID: "g1", HotelName: "Grand Hotel",
			DateFrom: dayPtr("2025-07-05"), DateTo: dayPtr("2025-07-10"),
			AssignedTravellerIDs: []string{"B"},
		},
		{
			ID: "tr1", Category: entity.CategoryTransfer, Name: "Hotel to airport",
			DateFrom:             dayPtr("2025-07-10"),
			AssignedTravellerIDs: []string{"A", "B"},
		},
		{
			ID: "f1", Category: entity.CategoryFlight,
			FlightSegments: []entity.FlightSegment{{
				FlightNumber: "BA123", Departure: "LHR", Arrival: "JFK",
				DepartureDate: day("2025-07-10"), DepartureTimeScheduled: "14:00",
			}},
		},
		{
			ID: "f2", Category: entity.CategoryFlight, ServiceType: entity.TypeChange,
			FlightSegments: []entity.FlightSegment{{
				FlightNumber: "BA123", Departure: "LHR", Arrival: "JFK",
				DepartureDate: day("2025-07-10"), DepartureTimeScheduled: "14:00",
			}},
		},
	}
}

func TestBuildTimelineTravelDay(t *testing.T) {
	days := BuildTimeline(travelDayFixture(), roster(), "")

	require.Len(t, days, 2)

	// Check-in day
	assert.Equal(t, day("2025-07-05"), days[0].Date)
	require.Len(t, days[0].Events, 1)
	assert.Equal(t, entity.EventHotelCheckin, days[0].Events[0].Type)
	assert.Equal(t, "Adams, Baker", days[0].Events[0].TravellerLabel)

	// Travel day reads checkout, transfer, flight; the amended flight row
	// contributes no second leg.
	assert.Equal(t, day("2025-07-10"), days[1].Date)
	assert.Equal(t, []entity.EventType{
		entity.EventHotelCheckout,
		entity.EventTransfer,
		entity.EventFlight,
	}, eventTypes(days[1].Events))
}

func TestBuildTimelineIdempotent(t *testing.T) {
	first := BuildTimeline(travelDayFixture(), roster(), "")
	second := BuildTimeline(travelDayFixture(), roster(), "")

	assert.True(t, reflect.DeepEqual(first, second))
}

func TestBuildTimelineTravellerFilter(t *testing.T) {
	services := []entity.Service{
		{ID: "everyone", Category: entity.CategoryTransfer, Name: "Shared transfer", DateFrom: dayPtr("2025-07-10")},
		{
			ID: "only-y", Category: entity.CategoryHotel, HotelName: "Grand Hotel",
			DateFrom:             dayPtr("2025-07-10"),
			AssignedTravellerIDs: []string{"Y"},
		},
	}

	days := BuildTimeline(services, roster(), "X")

	require.Len(t, days, 1)
	require.Len(t, days[0].Events, 1)
	assert.Equal(t, "everyone", days[0].Events[0].ServiceID)
}

func TestBuildTimelineCancellationExclusion(t *testing.T) {
	services := []entity.Service{
		{
			ID: "f1", Category: entity.CategoryFlight, ResStatus: "cancelled",
			FlightSegments: []entity.FlightSegment{{
				FlightNumber: "BA123", Departure: "LHR", Arrival: "JFK",
				DepartureDate: day("2025-07-10"), DepartureTimeScheduled: "08:00",
			}},
		},
	}

	assert.Empty(t, BuildTimeline(services, roster(), ""))
}

func TestServicesVersion(t *testing.T) {
	services := travelDayFixture()

	v1 := ServicesVersion(services)
	v2 := ServicesVersion(travelDayFixture())
	assert.Equal(t, v1, v2)

	services[0].UpdatedAt = day("2025-07-11")
	assert.NotEqual(t, v1, ServicesVersion(services))

	assert.NotEqual(t, ServicesVersion(nil), "")
}
