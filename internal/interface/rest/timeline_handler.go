package rest

import (
	"encoding/json"
	"net/http"

	"travel-itinerary-service/internal/domain/entity"
	"travel-itinerary-service/internal/usecase"
	"travel-itinerary-service/pkg/logger"

	"github.com/google/uuid"
)

// TimelineHandler serves the read-only timeline projection. Consumers get a
// freshly computed (or cached) snapshot per request; nothing here mutates
// order data.
type TimelineHandler struct {
	timelines *usecase.TimelineService
	logger    logger.Logger
}

// NewTimelineHandler creates a new timeline handler
func NewTimelineHandler(timelines *usecase.TimelineService, logger logger.Logger) *TimelineHandler {
	return &TimelineHandler{
		timelines: timelines,
		logger:    logger,
	}
}

// Register attaches the handler's routes to a mux
func (h *TimelineHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /orders/{orderID}/timeline", h.GetTimeline)
}

// timelineResponse is the JSON projection consumed by the presentation layer
type timelineResponse struct {
	OrderID     string            `json:"orderId"`
	TravellerID string            `json:"travellerId,omitempty"`
	Days        []entity.DayGroup `json:"days"`
}

// GetTimeline handles GET /orders/{orderID}/timeline?traveller=
func (h *TimelineHandler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get("X-Request-Id")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	log := h.logger.With("requestId", requestID)

	orderID := r.PathValue("orderID")
	if orderID == "" {
		http.Error(w, "missing order id", http.StatusBadRequest)
		return
	}
	travellerID := r.URL.Query().Get("traveller")

	days, err := h.timelines.GetTimeline(r.Context(), orderID, travellerID)
	if err != nil {
		log.Error("Failed to build timeline", "orderID", orderID, "error", err)
		http.Error(w, "failed to build timeline", http.StatusInternalServerError)
		return
	}
	if days == nil {
		days = []entity.DayGroup{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-Id", requestID)
	if err := json.NewEncoder(w).Encode(timelineResponse{
		OrderID:     orderID,
		TravellerID: travellerID,
		Days:        days,
	}); err != nil {
		log.Error("Failed to encode timeline response", "orderID", orderID, "error", err)
	}
}
