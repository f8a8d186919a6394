package usecase

import (
	"fmt"
	"sort"
	"strings"

	"travel-itinerary-service/internal/domain/entity"
	"travel-itinerary-service/pkg/utils"
)

// expandState carries the dedup sets threaded across one expansion pass.
// Flight legs dedup globally by SegmentKey; hotel, transfer and other events
// dedup by split group, one seen-set per event family. The state is built
// fresh per pass and never outlives it.
type expandState struct {
	seenSegments  map[entity.SegmentKey]struct{}
	seenHotels    map[string]struct{}
	seenTransfers map[string]struct{}
	seenOthers    map[string]struct{}
	surnames      map[string]string
}

func newExpandState(roster []entity.Traveller) *expandState {
	surnames := make(map[string]string, len(roster))
	for _, t := range roster {
		surnames[t.ID] = t.LastName
	}
	return &expandState{
		seenSegments:  make(map[entity.SegmentKey]struct{}),
		seenHotels:    make(map[string]struct{}),
		seenTransfers: make(map[string]struct{}),
		seenOthers:    make(map[string]struct{}),
		surnames:      surnames,
	}
}

// ExpandAll maps every aggregated service to its timeline events, sharing one
// dedup state across the whole pass so a leg referenced by several records
// (an original kept alongside its change, a flight embedded in a tour) shows
// up once.
func ExpandAll(services []entity.Service, roster []entity.Traveller) []entity.TimelineEvent {
	st := newExpandState(roster)
	var events []entity.TimelineEvent
	for i := range services {
		events = append(events, expandService(&services[i], st)...)
	}
	return events
}

// expandService dispatches one aggregated service on its category. Amendment
// workflows keep the superseded record visible for audit; the timeline must
// show the traveller-facing itinerary once, not once per audit row.
func expandService(svc *entity.Service, st *expandState) []entity.TimelineEvent {
	flightBearing := svc.Category == entity.CategoryFlight ||
		svc.ServiceType == entity.TypeChange ||
		(svc.Category == entity.CategoryTour && len(svc.FlightSegments) > 0)

	switch {
	case flightBearing:
		events := expandFlights(svc, st)
		if svc.Category == entity.CategoryTour {
			events = append(events, expandHotelStay(svc, st)...)
		}
		return events
	case svc.Category == entity.CategoryHotel:
		return expandHotelStay(svc, st)
	case svc.Category == entity.CategoryTransfer:
		return expandSingle(svc, st.seenTransfers, entity.EventTransfer, entity.WeightTransfer, st)
	default:
		return expandSingle(svc, st.seenOthers, entity.EventOther, entity.WeightOther, st)
	}
}

// expandFlights emits one event per not-yet-seen flight leg. A flight service
// without segment data degrades to a single event labelled with the service
// name rather than disappearing.
func expandFlights(svc *entity.Service, st *expandState) []entity.TimelineEvent {
	if len(svc.FlightSegments) == 0 {
		if svc.DateFrom == nil {
			return nil
		}
		return []entity.TimelineEvent{{
			ID:             svc.ID + ":flight",
			Date:           *svc.DateFrom,
			Type:           entity.EventFlight,
			SortOrder:      entity.WeightFlightBase,
			Title:          svc.Name,
			TicketNumbers:  ticketStrings(svc.TicketNumbers),
			ServiceID:      svc.ID,
			TravellerLabel: travellerLabel(svc, st),
		}}
	}

	tickets := ticketStrings(svc.TicketNumbers)
	events := make([]entity.TimelineEvent, 0, len(svc.FlightSegments))
	for _, seg := range svc.FlightSegments {
		if seg.DepartureDate.IsZero() {
			continue
		}
		key := seg.Key()
		if _, ok := st.seenSegments[key]; ok {
			continue
		}
		st.seenSegments[key] = struct{}{}

		events = append(events, entity.TimelineEvent{
			ID:             fmt.Sprintf("%s:flight:%s:%s-%s", svc.ID, key.FlightNumber, key.Departure, key.Arrival),
			Date:           seg.DepartureDate,
			Type:           entity.EventFlight,
			SortOrder:      flightWeight(seg.DepartureTimeScheduled),
			Title:          routeLabel(seg),
			FlightNumber:   seg.FlightNumber,
			Airline:        seg.Airline,
			Departure:      seg.Departure,
			DepartureCity:  seg.DepartureCity,
			Arrival:        seg.Arrival,
			ArrivalCity:    seg.ArrivalCity,
			DepartureTime:  seg.DepartureTimeScheduled,
			ArrivalTime:    seg.ArrivalTimeScheduled,
			DepartureTerm:  seg.DepartureTerminal,
			ArrivalTerm:    seg.ArrivalTerminal,
			Duration:       seg.Duration,
			CabinClass:     seg.CabinClass,
			Baggage:        seg.Baggage,
			TicketNumbers:  tickets,
			ArrivalNextDay: seg.ArrivalNextDay(),
			ServiceID:      svc.ID,
		})
	}
	return events
}

// expandHotelStay emits the synthetic check-in/check-out pair for a stay.
// The first split part to arrive wins; later parts are skipped. A tour row
// and a plain hotel row describing the same split group also collapse here.
func expandHotelStay(svc *entity.Service, st *expandState) []entity.TimelineEvent {
	if svc.SplitGroupID != "" {
		if _, ok := st.seenHotels[svc.SplitGroupID]; ok {
			return nil
		}
		st.seenHotels[svc.SplitGroupID] = struct{}{}
	}

	title := svc.HotelName
	if title == "" {
		title = svc.Name
	}
	label := travellerLabel(svc, st)

	var events []entity.TimelineEvent
	if svc.DateFrom != nil {
		events = append(events, entity.TimelineEvent{
			ID:             svc.ID + ":checkin",
			Date:           *svc.DateFrom,
			Type:           entity.EventHotelCheckin,
			SortOrder:      entity.WeightHotelCheckin,
			Title:          title,
			Subtitle:       svc.Supplier,
			ServiceID:      svc.ID,
			TravellerLabel: label,
		})
	}
	if svc.DateTo != nil && (svc.DateFrom == nil || !svc.DateTo.Equal(*svc.DateFrom)) {
		events = append(events, entity.TimelineEvent{
			ID:             svc.ID + ":checkout",
			Date:           *svc.DateTo,
			Type:           entity.EventHotelCheckout,
			SortOrder:      entity.WeightHotelCheckout,
			Title:          title,
			Subtitle:       svc.Supplier,
			ServiceID:      svc.ID,
			TravellerLabel: label,
		})
	}
	return events
}

// expandSingle emits one dated event for transfer and fallback services.
func expandSingle(svc *entity.Service, seen map[string]struct{}, eventType entity.EventType, weight float64, st *expandState) []entity.TimelineEvent {
	if svc.SplitGroupID != "" {
		if _, ok := seen[svc.SplitGroupID]; ok {
			return nil
		}
		seen[svc.SplitGroupID] = struct{}{}
	}
	if svc.DateFrom == nil {
		return nil
	}

	return []entity.TimelineEvent{{
		ID:             fmt.Sprintf("%s:%s", svc.ID, eventType),
		Date:           *svc.DateFrom,
		Type:           eventType,
		SortOrder:      weight,
		Title:          svc.Name,
		Subtitle:       svc.Supplier,
		ServiceID:      svc.ID,
		TravellerLabel: travellerLabel(svc, st),
	}}
}

// flightWeight places a flight inside the 20–30 band by its scheduled
// departure time so same-day flights sort by actual time. Flights with a
// missing or malformed time sit at the bottom of the band.
func flightWeight(clock string) float64 {
	frac, ok := utils.ClockFraction(clock)
	if !ok {
		return entity.WeightFlightBase
	}
	return entity.WeightFlightBase + entity.WeightFlightSpan*frac
}

// routeLabel prefers city names over bare airport codes for display.
func routeLabel(seg entity.FlightSegment) string {
	from := seg.DepartureCity
	if from == "" {
		from = seg.Departure
	}
	to := seg.ArrivalCity
	if to == "" {
		to = seg.Arrival
	}
	return fmt.Sprintf("%s %s - %s", seg.FlightNumber, from, to)
}

// travellerLabel resolves the sorted, deduplicated surnames of the travellers
// sharing an event. Travellers missing from the roster are left out rather
// than shown as raw ids.
func travellerLabel(svc *entity.Service, st *expandState) string {
	if len(svc.AssignedTravellerIDs) == 0 {
		return ""
	}

	seen := make(map[string]struct{}, len(svc.AssignedTravellerIDs))
	names := make([]string, 0, len(svc.AssignedTravellerIDs))
	for _, id := range svc.AssignedTravellerIDs {
		name := st.surnames[id]
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func ticketStrings(tickets []entity.TicketNumber) []string {
	if len(tickets) == 0 {
		return nil
	}
	out := make([]string, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, t.TicketNr)
	}
	return out
}
