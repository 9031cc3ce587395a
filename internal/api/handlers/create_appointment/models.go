package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/internal/domain"
	createAppointment "github.com/clickcy/clickbarber/internal/usecase/create_appointment"
	"github.com/clickcy/clickbarber/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientID       string   `json:"clientId"`
	ProfessionalID string   `json:"professionalId"`
	Date           string   `json:"date"`      // "2026-03-12"
	StartTime      string   `json:"startTime"` // "10:00"
	ServiceIDs     []string `json:"serviceIds"`
	Notes          *string  `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string   `json:"id"`
	ClientID        string   `json:"clientId"`
	ProfessionalID  string   `json:"professionalId"`
	Date            string   `json:"date"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	DurationMinutes int      `json:"durationMinutes"`
	Status          string   `json:"status"`
	ClientName      string   `json:"clientName"`
	ServiceNames    []string `json:"serviceNames"`
	TotalPrice      float64  `json:"totalPrice"`
	Notes           *string  `json:"notes,omitempty"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	clientID, err := uuid.Parse(r.ClientID)
	if err != nil {
		return nil, err
	}

	professionalID, err := uuid.Parse(r.ProfessionalID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	serviceIDs := make([]uuid.UUID, len(r.ServiceIDs))
	for i, raw := range r.ServiceIDs {
		serviceIDs[i], err = uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
	}

	return &createAppointment.Request{
		ClientID:       clientID,
		ProfessionalID: professionalID,
		Date:           date,
		StartTime:      startTime,
		ServiceIDs:     serviceIDs,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID.String(),
		ClientID:        resp.ClientID.String(),
		ProfessionalID:  resp.ProfessionalID.String(),
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ClientName:      resp.ClientName,
		ServiceNames:    resp.ServiceNames,
		TotalPrice:      resp.TotalPrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
