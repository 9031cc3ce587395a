package domain

import (
	"time"

	"github.com/google/uuid"
)

// SaleStatus represents the payment status of a sale
type SaleStatus string

const (
	SaleStatusPaid    SaleStatus = "paid"
	SaleStatusPending SaleStatus = "pending"
)

// ItemType distinguishes services from retail products on a sale line
type ItemType string

const (
	ItemTypeService ItemType = "service"
	ItemTypeProduct ItemType = "product"
)

// SaleItem represents one line of a point-of-sale receipt
type SaleItem struct {
	ID          uuid.UUID
	SaleID      uuid.UUID
	ItemID      uuid.UUID
	ItemType    ItemType
	ItemName    string
	PriceAtSale float64
	Quantity    int
}

// LineTotal returns the line amount (price at sale time x quantity)
func (i *SaleItem) LineTotal() float64 {
	return i.PriceAtSale * float64(i.Quantity)
}

// Sale represents a closed point-of-sale order
type Sale struct {
	ID             uuid.UUID
	ClientID       *uuid.UUID
	ProfessionalID *uuid.UUID
	AppointmentID  *uuid.UUID
	Items          []SaleItem
	PaymentMethod  *string
	Status         SaleStatus

	Subtotal       float64
	DiscountAmount float64
	TipAmount      float64
	TotalAmount    float64

	CreatedAt time.Time
}

// ComputeSubtotal returns the sum of all line totals
func (s *Sale) ComputeSubtotal() float64 {
	var subtotal float64
	for i := range s.Items {
		subtotal += s.Items[i].LineTotal()
	}
	return subtotal
}

// ComputeTotal derives the amount due: subtotal - discount + tip
func (s *Sale) ComputeTotal() float64 {
	return s.Subtotal - s.DiscountAmount + s.TipAmount
}

// ChangeFor returns the change due for a cash payment
// The caller is responsible for ensuring amountPaid >= TotalAmount
func (s *Sale) ChangeFor(amountPaid float64) float64 {
	return amountPaid - s.TotalAmount
}

// Commission represents the professional's cut of a sale
type Commission struct {
	ID             uuid.UUID
	SaleID         uuid.UUID
	ProfessionalID uuid.UUID
	Amount         float64
	CreatedAt      time.Time
}

// SalesFilter фильтр выборки продаж
type SalesFilter struct {
	StartDate *time.Time  // Начало периода (опционально)
	EndDate   *time.Time  // Конец периода (опционально)
	Status    *SaleStatus // Фильтр по статусу оплаты (опционально)
}
