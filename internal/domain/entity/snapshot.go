// internal/domain/entity/snapshot.go
package entity

import (
	"time"
)

// TimelineSnapshot is a cached computed timeline for one order, keyed by
// (orderId, servicesVersion, travellerId). The version changes whenever any
// underlying service row changes, so a stale snapshot is simply never found.
type TimelineSnapshot struct {
	ID              string     `bson:"_id,omitempty"`
	CacheKey        string     `bson:"cacheKey"` // {orderId}:{servicesVersion}:{travellerId} - unique index
	OrderID         string     `bson:"orderId"`
	ServicesVersion string     `bson:"servicesVersion"`
	TravellerID     string     `bson:"travellerId"`
	Days            []DayGroup `bson:"days"`
	CreatedAt       time.Time  `bson:"createdAt"`
	UpdatedAt       time.Time  `bson:"updatedAt"`
}
