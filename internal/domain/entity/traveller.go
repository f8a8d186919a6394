package entity

import (
	"time"
)

// Traveller is one person on a travel order's roster. The timeline only uses
// it to resolve surnames for traveller labels.
type Traveller struct {
	ID        string
	OrderID   string
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
