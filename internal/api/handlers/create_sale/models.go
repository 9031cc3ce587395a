package create_sale

import (
	"time"

	"github.com/google/uuid"

	createSale "github.com/clickcy/clickbarber/internal/usecase/create_sale"
)

// SaleItemRequest строка чека в HTTP запросе
type SaleItemRequest struct {
	ItemID   string `json:"itemId"`
	ItemType string `json:"itemType"` // service | product
	Quantity int    `json:"quantity"`
}

// CreateSaleRequest HTTP request model
type CreateSaleRequest struct {
	ClientID       *string           `json:"clientId,omitempty"`
	ProfessionalID *string           `json:"professionalId,omitempty"`
	AppointmentID  *string           `json:"appointmentId,omitempty"`
	Items          []SaleItemRequest `json:"items"`
	PaymentMethod  *string           `json:"paymentMethod,omitempty"`
	DiscountAmount float64           `json:"discountAmount,omitempty"`
	TipAmount      float64           `json:"tipAmount,omitempty"`
	AmountPaid     *float64          `json:"amountPaid,omitempty"`
}

// SaleItemResponse строка чека в HTTP ответе
type SaleItemResponse struct {
	ItemID      string  `json:"itemId"`
	ItemType    string  `json:"itemType"`
	ItemName    string  `json:"itemName"`
	PriceAtSale float64 `json:"priceAtSale"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"lineTotal"`
}

// SaleResponse HTTP response model
type SaleResponse struct {
	ID               string             `json:"id"`
	ClientID         *string            `json:"clientId,omitempty"`
	ProfessionalID   *string            `json:"professionalId,omitempty"`
	AppointmentID    *string            `json:"appointmentId,omitempty"`
	Items            []SaleItemResponse `json:"items"`
	PaymentMethod    *string            `json:"paymentMethod,omitempty"`
	Status           string             `json:"status"`
	Subtotal         float64            `json:"subtotal"`
	DiscountAmount   float64            `json:"discountAmount"`
	TipAmount        float64            `json:"tipAmount"`
	TotalAmount      float64            `json:"totalAmount"`
	ChangeDue        *float64           `json:"changeDue,omitempty"`
	CommissionAmount *float64           `json:"commissionAmount,omitempty"`
	CreatedAt        string             `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateSaleRequest) ToUseCaseRequest() (*createSale.Request, error) {
	clientID, err := parseOptionalUUID(r.ClientID)
	if err != nil {
		return nil, err
	}

	professionalID, err := parseOptionalUUID(r.ProfessionalID)
	if err != nil {
		return nil, err
	}

	appointmentID, err := parseOptionalUUID(r.AppointmentID)
	if err != nil {
		return nil, err
	}

	items := make([]createSale.ItemRequest, len(r.Items))
	for i, item := range r.Items {
		itemID, err := uuid.Parse(item.ItemID)
		if err != nil {
			return nil, err
		}
		items[i] = createSale.ItemRequest{
			ItemID:   itemID,
			ItemType: item.ItemType,
			Quantity: item.Quantity,
		}
	}

	return &createSale.Request{
		ClientID:       clientID,
		ProfessionalID: professionalID,
		AppointmentID:  appointmentID,
		Items:          items,
		PaymentMethod:  r.PaymentMethod,
		DiscountAmount: r.DiscountAmount,
		TipAmount:      r.TipAmount,
		AmountPaid:     r.AmountPaid,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createSale.Response) *SaleResponse {
	items := make([]SaleItemResponse, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = SaleItemResponse{
			ItemID:      item.ItemID.String(),
			ItemType:    item.ItemType,
			ItemName:    item.ItemName,
			PriceAtSale: item.PriceAtSale,
			Quantity:    item.Quantity,
			LineTotal:   item.LineTotal,
		}
	}

	return &SaleResponse{
		ID:               resp.ID.String(),
		ClientID:         uuidToString(resp.ClientID),
		ProfessionalID:   uuidToString(resp.ProfessionalID),
		AppointmentID:    uuidToString(resp.AppointmentID),
		Items:            items,
		PaymentMethod:    resp.PaymentMethod,
		Status:           resp.Status,
		Subtotal:         resp.Subtotal,
		DiscountAmount:   resp.DiscountAmount,
		TipAmount:        resp.TipAmount,
		TotalAmount:      resp.TotalAmount,
		ChangeDue:        resp.ChangeDue,
		CommissionAmount: resp.CommissionAmount,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
}

func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func uuidToString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
