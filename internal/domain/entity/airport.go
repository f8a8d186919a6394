package entity

import (
	"time"

	"gorm.io/gorm"
)

// Airport represents airport reference data used to fill in missing city and
// airport names on flight segments.
type Airport struct {
	ID          uint
	AirportCode string
	AirportName string
	CityCode    string
	CityName    string
	GmtTz       string
	TzName      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt
}
