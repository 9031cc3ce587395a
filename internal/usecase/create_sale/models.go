package create_sale

import (
	"time"

	"github.com/google/uuid"
)

// ItemRequest строка чека в запросе
type ItemRequest struct {
	ItemID   uuid.UUID // ID услуги или товара
	ItemType string    // service | product
	Quantity int       // Для услуг всегда 1
}

// Request модель запроса на оформление продажи
type Request struct {
	ClientID       *uuid.UUID    // Клиент (опционально - продажа может быть анонимной)
	ProfessionalID *uuid.UUID    // Профессионал для начисления комиссии (опционально)
	AppointmentID  *uuid.UUID    // Связанная запись (опционально)
	Items          []ItemRequest // Строки чека
	PaymentMethod  *string       // Способ оплаты (опционально)
	DiscountAmount float64       // Скидка на чек
	TipAmount      float64       // Чаевые
	AmountPaid     *float64      // Внесено наличными - для расчёта сдачи (опционально)
}

// ItemResponse строка чека в ответе
type ItemResponse struct {
	ItemID      uuid.UUID
	ItemType    string
	ItemName    string
	PriceAtSale float64
	Quantity    int
	LineTotal   float64
}

// Response модель ответа с оформленной продажей
type Response struct {
	ID             uuid.UUID
	ClientID       *uuid.UUID
	ProfessionalID *uuid.UUID
	AppointmentID  *uuid.UUID
	Items          []ItemResponse
	PaymentMethod  *string
	Status         string

	Subtotal       float64
	DiscountAmount float64
	TipAmount      float64
	TotalAmount    float64
	ChangeDue      *float64 // Сдача, если передан AmountPaid

	CommissionAmount *float64 // Начисленная комиссия, если указан профессионал

	CreatedAt time.Time
}
