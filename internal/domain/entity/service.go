// internal/domain/entity/service.go
package entity

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date layout used across the timeline.
const DateLayout = "2006-01-02"

// ServiceCategory is the closed set of service kinds the timeline understands.
// Free-text supplier categories are mapped onto it once at the ingestion
// boundary, so the expander dispatches on an enum rather than on substrings.
type ServiceCategory string

const (
	CategoryFlight   ServiceCategory = "flight"
	CategoryHotel    ServiceCategory = "hotel"
	CategoryTransfer ServiceCategory = "transfer"
	CategoryTour     ServiceCategory = "tour"
	CategoryOther    ServiceCategory = "other"
)

// Service Type
const (
	TypeOriginal     = "original"
	TypeChange       = "change"
	TypeCancellation = "cancellation"
)

// ResStatusCancelled excludes a service from the timeline entirely.
const ResStatusCancelled = "cancelled"

// ParseCategory maps a free-text supplier category onto the closed enum.
// Unknown values fall through to CategoryOther.
func ParseCategory(raw string) ServiceCategory {
	c := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(c, "flight") || strings.Contains(c, "avia") || strings.Contains(c, "air ticket"):
		return CategoryFlight
	case strings.Contains(c, "hotel") || strings.Contains(c, "accommodation"):
		return CategoryHotel
	case strings.Contains(c, "transfer"):
		return CategoryTransfer
	case strings.Contains(c, "tour") || strings.Contains(c, "package"):
		return CategoryTour
	default:
		return CategoryOther
	}
}

// TicketNumber identifies one issued ticket for one client.
type TicketNumber struct {
	ClientID string `json:"clientId" bson:"clientId"`
	TicketNr string `json:"ticketNr" bson:"ticketNr"`
}

// BoardingPass is an opaque reference to an uploaded boarding pass document.
type BoardingPass struct {
	TravellerID string `json:"travellerId" bson:"travellerId"`
	FileRef     string `json:"fileRef" bson:"fileRef"`
}

// FlightSegment is one flight leg in canonical form. Supplier payloads arrive
// in two different field namings and are normalized to this shape before use.
type FlightSegment struct {
	FlightNumber           string    `json:"flightNumber"`
	Airline                string    `json:"airline"`
	Departure              string    `json:"departure"`
	DepartureCity          string    `json:"departureCity"`
	Arrival                string    `json:"arrival"`
	ArrivalCity            string    `json:"arrivalCity"`
	DepartureDate          time.Time `json:"departureDate"`
	DepartureTimeScheduled string    `json:"departureTimeScheduled"`
	ArrivalDate            time.Time `json:"arrivalDate"`
	ArrivalTimeScheduled   string    `json:"arrivalTimeScheduled"`
	DepartureTerminal      string    `json:"departureTerminal"`
	ArrivalTerminal        string    `json:"arrivalTerminal"`
	Duration               string    `json:"duration"`
	CabinClass             string    `json:"cabinClass"`
	Baggage                string    `json:"baggage"`
}

// SegmentKey is the canonical identity of a flight leg. Two segments describe
// the same physical leg iff their keys are equal.
type SegmentKey struct {
	DepartureDate string
	DepartureTime string
	FlightNumber  string
	Departure     string
	Arrival       string
}

// Key derives the leg identity from a segment.
func (s FlightSegment) Key() SegmentKey {
	return SegmentKey{
		DepartureDate: formatDate(s.DepartureDate),
		DepartureTime: s.DepartureTimeScheduled,
		FlightNumber:  s.FlightNumber,
		Departure:     s.Departure,
		Arrival:       s.Arrival,
	}
}

// ArrivalNextDay reports whether the leg lands on a later calendar day than it
// departs. A missing arrival date counts as same-day.
func (s FlightSegment) ArrivalNextDay() bool {
	if s.ArrivalDate.IsZero() || s.DepartureDate.IsZero() {
		return false
	}
	return formatDate(s.ArrivalDate) != formatDate(s.DepartureDate)
}

// Service is one booked line item of a travel order, read-only input to the
// timeline. A logical booking may span several rows: split parts share a
// SplitGroupID, amendments reference the same booking with TypeChange.
type Service struct {
	ID                   string
	OrderID              string
	Category             ServiceCategory
	RawCategory          string
	ServiceType          string
	DateFrom             *time.Time
	DateTo               *time.Time
	ResStatus            string
	SplitGroupID         string
	AssignedTravellerIDs []string
	FlightSegments       []FlightSegment
	TicketNumbers        []TicketNumber
	BoardingPasses       []BoardingPass
	Baggage              string
	RefNr                string
	Name                 string
	Supplier             string
	HotelName            string
	UpdatedAt            time.Time
}

// Cancelled reports whether the service is excluded from the timeline.
func (s *Service) Cancelled() bool {
	return strings.EqualFold(strings.TrimSpace(s.ResStatus), ResStatusCancelled)
}

// GroupKey identifies the logical booking a row belongs to: the split group
// when present, otherwise category, name and date range together.
func (s *Service) GroupKey() string {
	if s.SplitGroupID != "" {
		return s.SplitGroupID
	}
	return fmt.Sprintf("%s|%s|%s|%s", s.Category, s.Name, formatDatePtr(s.DateFrom), formatDatePtr(s.DateTo))
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}
