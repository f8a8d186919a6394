package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travel-itinerary-service/internal/domain/entity"
	"travel-itinerary-service/internal/usecase"
	"travel-itinerary-service/pkg/logger"
	"travel-itinerary-service/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMetrics = metrics.NewMetrics("itinerary_rest_test")

type stubServiceRepo struct {
	services []entity.Service
	err      error
}

func (s *stubServiceRepo) ListByOrderID(ctx context.Context, orderID string) ([]entity.Service, error) {
	return s.services, s.err
}

type stubTravellerRepo struct{}

func (s *stubTravellerRepo) ListByOrderID(ctx context.Context, orderID string) ([]entity.Traveller, error) {
	return nil, nil
}

type stubAirportRepo struct{}

func (s *stubAirportRepo) GetByCode(ctx context.Context, code string) (*entity.Airport, error) {
	return nil, errors.New("airport not found")
}

type stubSnapshotRepo struct{}

func (s *stubSnapshotRepo) FindByKey(ctx context.Context, cacheKey string) (*entity.TimelineSnapshot, error) {
	return nil, nil
}

func (s *stubSnapshotRepo) Upsert(ctx context.Context, snapshot *entity.TimelineSnapshot) error {
	return nil
}

func newTestMux(serviceRepo *stubServiceRepo) *http.ServeMux {
	timelines := usecase.NewTimelineService(
		serviceRepo,
		&stubTravellerRepo{},
		&stubAirportRepo{},
		&stubSnapshotRepo{},
		testMetrics,
		logger.NewNop(),
	)
	mux := http.NewServeMux()
	NewTimelineHandler(timelines, logger.NewNop()).Register(mux)
	return mux
}

func TestGetTimelineEndpoint(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	mux := newTestMux(&stubServiceRepo{services: []entity.Service{{
		ID: "h1", Category: entity.CategoryHotel, HotelName: "Grand Hotel",
		DateFrom: &from, DateTo: &to,
	}}})

	req := httptest.NewRequest(http.MethodGet, "/orders/ord-1/timeline", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	var resp timelineResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ord-1", resp.OrderID)
	require.Len(t, resp.Days, 2)
	assert.Equal(t, entity.EventHotelCheckin, resp.Days[0].Events[0].Type)
}

func TestGetTimelineEndpointEmptyOrder(t *testing.T) {
	mux := newTestMux(&stubServiceRepo{})

	req := httptest.NewRequest(http.MethodGet, "/orders/ord-2/timeline", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp timelineResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotNil(t, resp.Days)
	assert.Empty(t, resp.Days)
}

func TestGetTimelineEndpointStoreError(t *testing.T) {
	mux := newTestMux(&stubServiceRepo{err: errors.New("connection refused")})

	req := httptest.NewRequest(http.MethodGet, "/orders/ord-3/timeline", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
