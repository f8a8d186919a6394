package usecase

import (
	"travel-itinerary-service/internal/domain/entity"
)

// AggregateServices collapses rows that belong to the same logical booking
// into one representative record. A real-world booking can be split into
// several rows for different payers or duplicated across an original and a
// change record; showing each row as its own timeline entry would present
// ghost duplicates. Cancelled rows are dropped entirely.
//
// Groups keep first-seen order, so the result is deterministic for a given
// input order. The input slice is not modified.
func AggregateServices(services []entity.Service) []entity.Service {
	merged := make([]entity.Service, 0, len(services))
	index := make(map[string]int, len(services))

	for _, svc := range services {
		if svc.Cancelled() {
			continue
		}
		key := svc.GroupKey()
		i, ok := index[key]
		if !ok {
			index[key] = len(merged)
			merged = append(merged, cloneService(svc))
			continue
		}
		mergeService(&merged[i], svc)
	}
	return merged
}

// cloneService copies a service with fresh slices so merging never writes
// through to the caller's rows.
func cloneService(svc entity.Service) entity.Service {
	out := svc
	out.AssignedTravellerIDs = append([]string(nil), svc.AssignedTravellerIDs...)
	out.FlightSegments = append([]entity.FlightSegment(nil), svc.FlightSegments...)
	out.TicketNumbers = append([]entity.TicketNumber(nil), svc.TicketNumbers...)
	out.BoardingPasses = append([]entity.BoardingPass(nil), svc.BoardingPasses...)
	return out
}

// mergeService folds a later group member into the representative record.
// Traveller sets, ticket numbers and boarding passes are unioned; identifying
// fields stay as first seen unless the representative lacks them.
func mergeService(dst *entity.Service, src entity.Service) {
	dst.AssignedTravellerIDs = unionStrings(dst.AssignedTravellerIDs, src.AssignedTravellerIDs)
	dst.TicketNumbers = unionTickets(dst.TicketNumbers, src.TicketNumbers)
	dst.BoardingPasses = unionBoardingPasses(dst.BoardingPasses, src.BoardingPasses)

	if len(dst.FlightSegments) == 0 {
		dst.FlightSegments = append([]entity.FlightSegment(nil), src.FlightSegments...)
	}
	if dst.DateFrom == nil {
		dst.DateFrom = src.DateFrom
	}
	if dst.DateTo == nil {
		dst.DateTo = src.DateTo
	}
	if dst.Name == "" {
		dst.Name = src.Name
	}
	if dst.HotelName == "" {
		dst.HotelName = src.HotelName
	}
	if dst.Supplier == "" {
		dst.Supplier = src.Supplier
	}
	if dst.RefNr == "" {
		dst.RefNr = src.RefNr
	}
	if dst.Baggage == "" {
		dst.Baggage = src.Baggage
	}
}

func unionStrings(dst, src []string) []string {
	seen := make(map[string]struct{}, len(dst)+len(src))
	for _, v := range dst {
		seen[v] = struct{}{}
	}
	for _, v := range src {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		dst = append(dst, v)
	}
	return dst
}

// unionTickets dedups by (clientId, ticketNr).
func unionTickets(dst, src []entity.TicketNumber) []entity.TicketNumber {
	seen := make(map[entity.TicketNumber]struct{}, len(dst)+len(src))
	for _, t := range dst {
		seen[t] = struct{}{}
	}
	for _, t := range src {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		dst = append(dst, t)
	}
	return dst
}

func unionBoardingPasses(dst, src []entity.BoardingPass) []entity.BoardingPass {
	seen := make(map[entity.BoardingPass]struct{}, len(dst)+len(src))
	for _, p := range dst {
		seen[p] = struct{}{}
	}
	for _, p := range src {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		dst = append(dst, p)
	}
	return dst
}
