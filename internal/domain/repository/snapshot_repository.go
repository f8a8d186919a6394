package repository

import (
	"context"

	"travel-itinerary-service/internal/domain/entity"
)

// SnapshotRepository defines the interface for cached timeline snapshots
type SnapshotRepository interface {
	FindByKey(ctx context.Context, cacheKey string) (*entity.TimelineSnapshot, error)
	Upsert(ctx context.Context, snapshot *entity.TimelineSnapshot) error
}
