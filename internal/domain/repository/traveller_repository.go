package repository

import (
	"context"

	"travel-itinerary-service/internal/domain/entity"
)

// TravellerRepository defines the interface for the traveller roster
type TravellerRepository interface {
	ListByOrderID(ctx context.Context, orderID string) ([]entity.Traveller, error)
}
