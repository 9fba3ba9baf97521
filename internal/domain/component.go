package domain

import (
	"time"

	"github.com/google/uuid"
)

// Component is one electronics inventory record.
type Component struct {
	ID             uuid.UUID
	Name           string
	Category       Category
	Stock          int
	MinStock       int
	Specifications string
	Supplier       string
	Status         StockStatus
	DateAdded      time.Time
	LastUpdated    time.Time
}

// ComponentUpdateParams describes a partial update: nil fields are left
// untouched. Status is filled by the caller when Stock or MinStock changes;
// it is never supplied by clients directly.
type ComponentUpdateParams struct {
	Name           *string
	Category       *Category
	Stock          *int
	MinStock       *int
	Specifications *string
	Supplier       *string
	Status         *StockStatus
}
