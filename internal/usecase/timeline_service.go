package usecase

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"
	"time"

	"travel-itinerary-service/internal/domain/entity"
	"travel-itinerary-service/internal/domain/repository"
	"travel-itinerary-service/pkg/logger"
	"travel-itinerary-service/pkg/metrics"
)

// TimelineService orchestrates fetching the inputs, enriching segments from
// airport reference data, running the pure timeline build and caching the
// result as a snapshot.
type TimelineService struct {
	serviceRepo   repository.OrderServiceRepository
	travellerRepo repository.TravellerRepository
	airportRepo   repository.AirportRepository
	snapshotRepo  repository.SnapshotRepository
	metrics       *metrics.Metrics
	logger        logger.Logger
}

// NewTimelineService creates a new timeline service
func NewTimelineService(
	serviceRepo repository.OrderServiceRepository,
	travellerRepo repository.TravellerRepository,
	airportRepo repository.AirportRepository,
	snapshotRepo repository.SnapshotRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *TimelineService {
	return &TimelineService{
		serviceRepo:   serviceRepo,
		travellerRepo: travellerRepo,
		airportRepo:   airportRepo,
		snapshotRepo:  snapshotRepo,
		metrics:       metrics,
		logger:        logger,
	}
}

// GetTimeline returns the day-grouped itinerary for one order, optionally
// filtered to a single traveller. Results are cached per
// (orderID, servicesVersion, travellerID); any change to a service row
// rotates the version, so stale snapshots are simply never found.
func (ts *TimelineService) GetTimeline(ctx context.Context, orderID, travellerID string) ([]entity.DayGroup, error) {
	start := time.Now()

	services, err := ts.serviceRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		ts.metrics.ErrorsCount.WithLabelValues("list_services").Inc()
		return nil, fmt.Errorf("list services for order %s: %w", orderID, err)
	}

	version := ServicesVersion(services)
	cacheKey := fmt.Sprintf("%s:%s:%s", orderID, version, travellerID)

	snapshot, err := ts.snapshotRepo.FindByKey(ctx, cacheKey)
	if err != nil {
		ts.logger.Warn("Snapshot lookup failed", "cacheKey", cacheKey, "error", err)
	}
	if snapshot != nil {
		ts.metrics.SnapshotHits.Inc()
		ts.logger.Debug("Timeline served from snapshot", "orderID", orderID, "cacheKey", cacheKey)
		return snapshot.Days, nil
	}
	ts.metrics.SnapshotMisses.Inc()

	roster, err := ts.travellerRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		// Roster only feeds traveller labels; build the timeline without them.
		ts.metrics.ErrorsCount.WithLabelValues("list_travellers").Inc()
		ts.logger.Warn("Failed to load traveller roster", "orderID", orderID, "error", err)
		roster = nil
	}

	ts.enrichSegments(ctx, services)

	days := BuildTimeline(services, roster, travellerID)

	if err := ts.snapshotRepo.Upsert(ctx, &entity.TimelineSnapshot{
		CacheKey:        cacheKey,
		OrderID:         orderID,
		ServicesVersion: version,
		TravellerID:     travellerID,
		Days:            days,
	}); err != nil {
		ts.metrics.ErrorsCount.WithLabelValues("store_snapshot").Inc()
		ts.logger.Warn("Failed to store timeline snapshot", "cacheKey", cacheKey, "error", err)
	}

	ts.metrics.TimelinesBuilt.Inc()
	ts.metrics.BuildTime.Observe(time.Since(start).Seconds())
	ts.logger.Info("Timeline built", "orderID", orderID, "travellerID", travellerID, "days", len(days))
	return days, nil
}

// ServicesVersion hashes row identity and update time in fetch order so any
// row change rotates the snapshot key.
func ServicesVersion(services []entity.Service) string {
	h := fnv.New64a()
	for _, svc := range services {
		h.Write([]byte(svc.ID))
		h.Write([]byte{'|'})
		h.Write([]byte(svc.UpdatedAt.UTC().Format(time.RFC3339Nano)))
		h.Write([]byte{'\n'})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

// enrichSegments fills missing city names from airport reference data before
// the pure build. Lookup failures leave the field blank.
func (ts *TimelineService) enrichSegments(ctx context.Context, services []entity.Service) {
	for i := range services {
		for j := range services[i].FlightSegments {
			seg := &services[i].FlightSegments[j]
			if seg.DepartureCity == "" && seg.Departure != "" {
				if airport, err := ts.airportRepo.GetByCode(ctx, seg.Departure); err == nil {
					seg.DepartureCity = airport.CityName
				} else {
					ts.logger.Debug("No airport reference for departure", "code", seg.Departure)
				}
			}
			if seg.ArrivalCity == "" && seg.Arrival != "" {
				if airport, err := ts.airportRepo.GetByCode(ctx, seg.Arrival); err == nil {
					seg.ArrivalCity = airport.CityName
				} else {
					ts.logger.Debug("No airport reference for arrival", "code", seg.Arrival)
				}
			}
		}
	}
}
