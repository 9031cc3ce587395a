package domain

import (
	"time"

	"github.com/google/uuid"
)

// Professional represents a member of the salon staff (a column in the day grid)
type Professional struct {
	ID                uuid.UUID
	Name              string
	Email             *string
	Phone             *string
	Specialties       []string
	CommissionPercent float64
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CommissionFor returns the professional's commission for a sale amount
func (p *Professional) CommissionFor(amount float64) float64 {
	return amount * p.CommissionPercent / 100
}
