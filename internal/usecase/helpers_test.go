package usecase

import (
	"time"

	"travel-itinerary-service/internal/domain/entity"
)

func day(value string) time.Time {
	t, err := time.Parse(entity.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(value string) *time.Time {
	t := day(value)
	return &t
}

func roster() []entity.Traveller {
	return []entity.Traveller{
		{ID: "A", FirstName: "Alice", LastName: "Adams"},
		{ID: "B", FirstName: "Bob", LastName: "Baker"},
		{ID: "X", FirstName: "Xenia", LastName: "Xu"},
		{ID: "Y", FirstName: "Yan", LastName: "Young"},
	}
}

func eventTypes(events []entity.TimelineEvent) []entity.EventType {
	types := make([]entity.EventType, 0, len(events))
	for _, ev := range events {
		types = append(types, ev.Type)
	}
	return types
}
