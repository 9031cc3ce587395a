package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service represents a billable salon service (haircut, beard trim, ...)
type Service struct {
	ID              uuid.UUID
	Name            string
	Description     *string
	Price           float64
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Product represents a retail product sold at the counter
type Product struct {
	ID            uuid.UUID
	Name          string
	Description   *string
	Price         float64
	StockQuantity int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// InStock returns true if at least quantity units are available
func (p *Product) InStock(quantity int) bool {
	return p.StockQuantity >= quantity
}
