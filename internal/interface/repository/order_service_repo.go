package repository

import (
	"context"
	"strings"
	"time"

	"travel-itinerary-service/internal/domain/entity"
	"travel-itinerary-service/internal/domain/repository"
	"travel-itinerary-service/pkg/utils"

	"gorm.io/gorm"
)

// GormOrderServiceRepository implements the OrderServiceRepository interface
type GormOrderServiceRepository struct {
	db         *gorm.DB
	normalizer *utils.PayloadNormalizer
}

// NewGormOrderServiceRepository creates a new GORM order service repository
func NewGormOrderServiceRepository(db *gorm.DB, normalizer *utils.PayloadNormalizer) repository.OrderServiceRepository {
	return &GormOrderServiceRepository{
		db:         db,
		normalizer: normalizer,
	}
}

// OrderServices GORM model for database mapping. The payload columns hold the
// supplier's raw JSON in whichever naming it arrived; normalization to the
// canonical entity shape happens on read.
type OrderServices struct {
	ID                 string     `gorm:"primaryKey;column:id"`
	OrderID            string     `gorm:"column:order_id;index"`
	Category           string     `gorm:"column:category"`
	ServiceType        string     `gorm:"column:service_type"`
	DateFrom           *time.Time `gorm:"column:date_from"`
	DateTo             *time.Time `gorm:"column:date_to"`
	ResStatus          string     `gorm:"column:res_status"`
	SplitGroupID       *string    `gorm:"column:split_group_id;index"`
	AssignedTravellers []byte     `gorm:"column:assigned_travellers;type:jsonb"`
	FlightSegments     []byte     `gorm:"column:flight_segments;type:jsonb"`
	TicketNumbers      []byte     `gorm:"column:ticket_numbers;type:jsonb"`
	BoardingPasses     []byte     `gorm:"column:boarding_passes;type:jsonb"`
	Baggage            string     `gorm:"column:baggage"`
	RefNr              string     `gorm:"column:ref_nr"`
	Name               string     `gorm:"column:name"`
	Supplier           string     `gorm:"column:supplier"`
	HotelName          string     `gorm:"column:hotel_name"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the default table name
func (OrderServices) TableName() string {
	return "t_order_services"
}

// ListByOrderID returns all booked service rows of one order in insertion
// order. Rows are returned as-is, including cancelled and superseded ones;
// filtering is the engine's job.
func (r *GormOrderServiceRepository) ListByOrderID(ctx context.Context, orderID string) ([]entity.Service, error) {
	var rows []OrderServices
	result := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("created_at, id").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	services := make([]entity.Service, 0, len(rows))
	for _, row := range rows {
		services = append(services, r.toEntity(row))
	}
	return services, nil
}

// toEntity converts a GORM model to a domain entity, normalizing the free
// text category and the raw payload columns at this boundary.
func (r *GormOrderServiceRepository) toEntity(row OrderServices) entity.Service {
	splitGroupID := ""
	if row.SplitGroupID != nil {
		splitGroupID = *row.SplitGroupID
	}

	return entity.Service{
		ID:                   row.ID,
		OrderID:              row.OrderID,
		Category:             entity.ParseCategory(row.Category),
		RawCategory:          row.Category,
		ServiceType:          strings.ToLower(strings.TrimSpace(row.ServiceType)),
		DateFrom:             row.DateFrom,
		DateTo:               row.DateTo,
		ResStatus:            row.ResStatus,
		SplitGroupID:         splitGroupID,
		AssignedTravellerIDs: r.normalizer.NormalizeIDList(row.AssignedTravellers),
		FlightSegments:       r.normalizer.NormalizeSegments(row.FlightSegments),
		TicketNumbers:        r.normalizer.NormalizeTicketNumbers(row.TicketNumbers),
		BoardingPasses:       r.normalizer.NormalizeBoardingPasses(row.BoardingPasses),
		Baggage:              row.Baggage,
		RefNr:                row.RefNr,
		Name:                 row.Name,
		Supplier:             row.Supplier,
		HotelName:            row.HotelName,
		UpdatedAt:            row.UpdatedAt,
	}
}
