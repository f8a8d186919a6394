package usecase

import (
	"travel-itinerary-service/internal/domain/entity"
)

// BuildTimeline runs the full itinerary pipeline: traveller filter,
// aggregation of split/duplicate rows, event expansion with dedup, sort and
// day grouping. It is a pure function of its inputs with no shared state
// outside the per-call dedup sets, so identical inputs always produce an
// identical timeline and callers may memoize the result.
func BuildTimeline(services []entity.Service, roster []entity.Traveller, travellerID string) []entity.DayGroup {
	filtered := FilterByTraveller(services, travellerID)
	aggregated := AggregateServices(filtered)
	events := ExpandAll(aggregated, roster)
	return GroupByDay(SortEvents(events))
}
