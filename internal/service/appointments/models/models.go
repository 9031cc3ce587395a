package models

import (
	"errors"
	"time"

	"github.com/clickcy/clickbarber/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID                 string    `json:"id"`
	ClientID           string    `json:"clientId"`
	ProfessionalID     string    `json:"professionalId"`
	ClientName         string    `json:"clientName"`
	Date               string    `json:"date"`      // "2026-03-12"
	StartTime          string    `json:"startTime"` // "10:00"
	EndTime            string    `json:"endTime"`   // "10:45"
	DurationMinutes    int       `json:"durationMinutes"`
	Status             string    `json:"status"`
	ServiceNames       []string  `json:"serviceNames"`
	TotalPrice         float64   `json:"totalPrice"`
	Notes              *string   `json:"notes,omitempty"`
	CancellationReason *string   `json:"cancellationReason,omitempty"`
	CancelledAt        *string   `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:                 a.ID.String(),
		ClientID:           a.ClientID.String(),
		ProfessionalID:     a.ProfessionalID.String(),
		ClientName:         a.ClientName,
		Date:               a.StartTime.Format(domain.DateFormat),
		StartTime:          a.StartTime.Format(domain.TimeFormat),
		EndTime:            a.EndTime.Format(domain.TimeFormat),
		DurationMinutes:    a.DurationMinutes(),
		Status:             string(a.Status),
		ServiceNames:       a.ServiceNames,
		TotalPrice:         a.TotalPrice,
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	if a.CancelledAt != nil {
		cancelledAt := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в response
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := make([]*AppointmentResponse, len(appointments))
	for i, a := range appointments {
		result[i] = FromDomainAppointment(a)
	}

	return &AppointmentListResponse{
		Appointments: result,
		Total:        len(result),
	}
}

// ToDomainAppointmentStatus конвертирует строку в domain статус
func ToDomainAppointmentStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	if !domain.ValidAppointmentStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}
