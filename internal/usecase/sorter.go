package usecase

import (
	"sort"

	"travel-itinerary-service/internal/domain/entity"
)

// SortEvents orders events by calendar day, then by same-day weight. Events
// with equal (day, weight) keep their input order, so the result is stable
// for a given expansion.
func SortEvents(events []entity.TimelineEvent) []entity.TimelineEvent {
	sorted := make([]entity.TimelineEvent, len(events))
	copy(sorted, events)

	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i].Day(), sorted[j].Day()
		if di != dj {
			return di < dj
		}
		return sorted[i].SortOrder < sorted[j].SortOrder
	})
	return sorted
}

// GroupByDay buckets an already-sorted event stream into per-day groups.
// Group order equals the first-occurrence order of each date, which for a
// sorted stream is ascending. The presentation layer renders a day header on
// each group boundary.
func GroupByDay(events []entity.TimelineEvent) []entity.DayGroup {
	var days []entity.DayGroup
	lastDay := ""
	for _, ev := range events {
		day := ev.Day()
		if day != lastDay {
			days = append(days, entity.DayGroup{Date: ev.Date})
			lastDay = day
		}
		last := &days[len(days)-1]
		last.Events = append(last.Events, ev)
	}
	return days
}
