package repository

import (
	"context"
	"time"

	"travel-itinerary-service/internal/domain/entity"
	"travel-itinerary-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormTravellerRepository implements the TravellerRepository interface
type GormTravellerRepository struct {
	db *gorm.DB
}

// NewGormTravellerRepository creates a new GORM traveller repository
func NewGormTravellerRepository(db *gorm.DB) repository.TravellerRepository {
	return &GormTravellerRepository{
		db: db,
	}
}

// Travellers GORM model for database mapping
type Travellers struct {
	ID        string `gorm:"primaryKey;column:id"`
	OrderID   string `gorm:"column:order_id;index"`
	FirstName string `gorm:"column:first_name"`
	LastName  string `gorm:"column:last_name"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the default table name
func (Travellers) TableName() string {
	return "t_travellers"
}

// ListByOrderID returns the traveller roster of one order
func (r *GormTravellerRepository) ListByOrderID(ctx context.Context, orderID string) ([]entity.Traveller, error) {
	var rows []Travellers
	result := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("last_name, first_name").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	travellers := make([]entity.Traveller, 0, len(rows))
	for _, row := range rows {
		travellers = append(travellers, entity.Traveller{
			ID:        row.ID,
			OrderID:   row.OrderID,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return travellers, nil
}
