package repository

import (
	"context"

	"travel-itinerary-service/internal/domain/entity"
)

// OrderServiceRepository defines the interface for reading booked services
type OrderServiceRepository interface {
	ListByOrderID(ctx context.Context, orderID string) ([]entity.Service, error)
}
