package usecase

import (
	"travel-itinerary-service/internal/domain/entity"
)

// FilterByTraveller restricts services to those touching the given traveller.
// A service with no assigned travellers applies to everyone and is kept. The
// filter runs before aggregation so split parts that do not involve the
// traveller are excluded before merging.
func FilterByTraveller(services []entity.Service, travellerID string) []entity.Service {
	if travellerID == "" {
		return services
	}

	filtered := make([]entity.Service, 0, len(services))
	for _, svc := range services {
		if len(svc.AssignedTravellerIDs) == 0 {
			filtered = append(filtered, svc)
			continue
		}
		for _, id := range svc.AssignedTravellerIDs {
			if id == travellerID {
				filtered = append(filtered, svc)
				break
			}
		}
	}
	return filtered
}
