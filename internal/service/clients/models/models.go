package models

import (
	"time"

	"github.com/clickcy/clickbarber/internal/domain"
)

// Request модели

// CreateClientRequest запрос на создание клиента
type CreateClientRequest struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

// UpdateClientRequest запрос на обновление клиента
type UpdateClientRequest struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

// ListClientsRequest запрос на получение списка клиентов
type ListClientsRequest struct {
	Search *string `json:"search,omitempty"` // Поиск по имени или телефону
	Limit  int     `json:"limit,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListClientsRequest) ToDomainFilter() domain.ClientsFilter {
	return domain.ClientsFilter{
		Search: r.Search,
		Limit:  r.Limit,
	}
}

// Response модели

// ClientResponse ответ с данными клиента
type ClientResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         *string   `json:"phone,omitempty"`
	Email         *string   `json:"email,omitempty"`
	LastVisitDate *string   `json:"lastVisitDate,omitempty"` // "2026-03-12"
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ClientListResponse ответ со списком клиентов
type ClientListResponse struct {
	Clients []*ClientResponse `json:"clients"`
	Total   int               `json:"total"`
}

// FromDomainClient конвертирует domain модель в response
func FromDomainClient(c *domain.Client) *ClientResponse {
	resp := &ClientResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}

	if c.LastVisitDate != nil {
		lastVisit := c.LastVisitDate.Format(domain.DateFormat)
		resp.LastVisitDate = &lastVisit
	}

	return resp
}

// FromDomainClientList конвертирует список domain моделей в response
func FromDomainClientList(clients []*domain.Client) *ClientListResponse {
	result := make([]*ClientResponse, len(clients))
	for i, c := range clients {
		result[i] = FromDomainClient(c)
	}

	return &ClientListResponse{
		Clients: result,
		Total:   len(result),
	}
}
