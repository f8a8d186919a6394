// internal/domain/entity/timeline.go
package entity

import (
	"time"
)

// EventType defines the kind of a timeline event
type EventType string

const (
	EventFlight        EventType = "flight"
	EventHotelCheckin  EventType = "hotel_checkin"
	EventHotelCheckout EventType = "hotel_checkout"
	EventTransfer      EventType = "transfer"
	EventOther         EventType = "other"
)

// Same-day sort weights, lower sorts first. On a travel day the itinerary
// reads checkout, transfer, flights, check-in, then everything else. Flights
// occupy the 20-30 band, biased within it by scheduled departure time, so the
// transfer to the airport has to sit below the band.
const (
	WeightHotelCheckout = 10.0
	WeightTransfer      = 15.0
	WeightFlightBase    = 20.0
	WeightFlightSpan    = 10.0
	WeightHotelCheckin  = 50.0
	WeightOther         = 60.0
)

// TimelineEvent is one derived itinerary entry. Events are constructed,
// consumed and discarded within a single computation; they are never persisted
// except as part of a cached timeline snapshot.
type TimelineEvent struct {
	ID             string    `json:"id" bson:"id"`
	Date           time.Time `json:"date" bson:"date"`
	Type           EventType `json:"type" bson:"type"`
	SortOrder      float64   `json:"sortOrder" bson:"sortOrder"`
	Title          string    `json:"title" bson:"title"`
	Subtitle       string    `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	FlightNumber   string    `json:"flightNumber,omitempty" bson:"flightNumber,omitempty"`
	Airline        string    `json:"airline,omitempty" bson:"airline,omitempty"`
	Departure      string    `json:"departure,omitempty" bson:"departure,omitempty"`
	DepartureCity  string    `json:"departureCity,omitempty" bson:"departureCity,omitempty"`
	Arrival        string    `json:"arrival,omitempty" bson:"arrival,omitempty"`
	ArrivalCity    string    `json:"arrivalCity,omitempty" bson:"arrivalCity,omitempty"`
	DepartureTime  string    `json:"departureTime,omitempty" bson:"departureTime,omitempty"`
	ArrivalTime    string    `json:"arrivalTime,omitempty" bson:"arrivalTime,omitempty"`
	DepartureTerm  string    `json:"departureTerminal,omitempty" bson:"departureTerminal,omitempty"`
	ArrivalTerm    string    `json:"arrivalTerminal,omitempty" bson:"arrivalTerminal,omitempty"`
	Duration       string    `json:"duration,omitempty" bson:"duration,omitempty"`
	CabinClass     string    `json:"cabinClass,omitempty" bson:"cabinClass,omitempty"`
	Baggage        string    `json:"baggage,omitempty" bson:"baggage,omitempty"`
	TicketNumbers  []string  `json:"ticketNumbers,omitempty" bson:"ticketNumbers,omitempty"`
	ArrivalNextDay bool      `json:"arrivalNextDay,omitempty" bson:"arrivalNextDay,omitempty"`
	ServiceID      string    `json:"serviceId" bson:"serviceId"`
	TravellerLabel string    `json:"travellerLabel,omitempty" bson:"travellerLabel,omitempty"`
}

// Day returns the calendar-day key the event is anchored to.
func (e TimelineEvent) Day() string {
	return e.Date.Format(DateLayout)
}

// DayGroup is one presentation bucket: all events of a single calendar day in
// final display order. Groups are emitted in ascending date order.
type DayGroup struct {
	Date   time.Time       `json:"date" bson:"date"`
	Events []TimelineEvent `json:"events" bson:"events"`
}
