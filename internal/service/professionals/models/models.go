package models

import (
	"time"

	"github.com/clickcy/clickbarber/internal/domain"
)

// Request модели

// CreateProfessionalRequest запрос на создание профессионала
type CreateProfessionalRequest struct {
	Name              string   `json:"name"`
	Email             *string  `json:"email,omitempty"`
	Phone             *string  `json:"phone,omitempty"`
	Specialties       []string `json:"specialties,omitempty"`
	CommissionPercent float64  `json:"commissionPercent"`
}

// Response модели

// ProfessionalResponse ответ с данными профессионала
type ProfessionalResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             *string   `json:"email,omitempty"`
	Phone             *string   `json:"phone,omitempty"`
	Specialties       []string  `json:"specialties"`
	CommissionPercent float64   `json:"commissionPercent"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ProfessionalListResponse ответ со списком профессионалов
type ProfessionalListResponse struct {
	Professionals []*ProfessionalResponse `json:"professionals"`
	Total         int                     `json:"total"`
}

// FromDomainProfessional конвертирует domain модель в response
func FromDomainProfessional(p *domain.Professional) *ProfessionalResponse {
	return &ProfessionalResponse{
		ID:                p.ID.String(),
		Name:              p.Name,
		Email:             p.Email,
		Phone:             p.Phone,
		Specialties:       p.Specialties,
		CommissionPercent: p.CommissionPercent,
		IsActive:          p.IsActive,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// FromDomainProfessionalList конвертирует список domain моделей в response
func FromDomainProfessionalList(professionals []*domain.Professional) *ProfessionalListResponse {
	result := make([]*ProfessionalResponse, len(professionals))
	for i, p := range professionals {
		result[i] = FromDomainProfessional(p)
	}

	return &ProfessionalListResponse{
		Professionals: result,
		Total:         len(result),
	}
}
