package repository

import (
	"context"
	"errors"
	"time"

	"travel-itinerary-service/internal/domain/entity"
	"travel-itinerary-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSnapshotRepository implements SnapshotRepository
type MongoSnapshotRepository struct {
	collection *mongo.Collection
}

// NewMongoSnapshotRepository creates a new timeline snapshot repository
func NewMongoSnapshotRepository(db *mongo.Database, ttl time.Duration) repository.SnapshotRepository {
	collection := db.Collection("timeline_snapshots")

	// Create unique index on cacheKey
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"cacheKey": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	// Expire snapshots so superseded versions do not accumulate
	ttlIndex := mongo.IndexModel{
		Keys:    bson.M{"updatedAt": 1},
		Options: options.Index().SetExpireAfterSeconds(int32(ttl.Seconds())),
	}
	collection.Indexes().CreateOne(ctx, ttlIndex)

	return &MongoSnapshotRepository{
		collection: collection,
	}
}

// FindByKey finds a cached timeline by its cache key. A missing snapshot is
// not an error; it just means the timeline has to be rebuilt.
func (r *MongoSnapshotRepository) FindByKey(ctx context.Context, cacheKey string) (*entity.TimelineSnapshot, error) {
	var snapshot entity.TimelineSnapshot
	err := r.collection.FindOne(ctx, bson.M{"cacheKey": cacheKey}).Decode(&snapshot)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &snapshot, nil
}

// Upsert creates or refreshes a cached timeline
func (r *MongoSnapshotRepository) Upsert(ctx context.Context, snapshot *entity.TimelineSnapshot) error {
	snapshot.UpdatedAt = time.Now()

	// For new snapshots
	if snapshot.ID == "" {
		snapshot.ID = primitive.NewObjectID().Hex()
		snapshot.CreatedAt = time.Now()
	}

	updateDoc := bson.M{
		"cacheKey":        snapshot.CacheKey,
		"orderId":         snapshot.OrderID,
		"servicesVersion": snapshot.ServicesVersion,
		"travellerId":     snapshot.TravellerID,
		"days":            snapshot.Days,
		"createdAt":       snapshot.CreatedAt,
		"updatedAt":       snapshot.UpdatedAt,
	}

	opts := options.Update().SetUpsert(true)
	filter := bson.M{"cacheKey": snapshot.CacheKey}

	result, err := r.collection.UpdateOne(
		ctx,
		filter,
		bson.M{"$set": updateDoc},
		opts,
	)
	if err != nil {
		return err
	}

	// If it was an insert, we need to get the new ID
	if result.UpsertedCount > 0 && result.UpsertedID != nil {
		if oid, ok := result.UpsertedID.(primitive.ObjectID); ok {
			snapshot.ID = oid.Hex()
		}
	}

	return nil
}
