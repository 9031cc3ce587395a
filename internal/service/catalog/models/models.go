package models

import (
	"time"

	"github.com/clickcy/clickbarber/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// CreateProductRequest запрос на создание товара
type CreateProductRequest struct {
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ProductResponse ответ с данными товара
type ProductResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stockQuantity"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CatalogResponse полный каталог: услуги и товары одним ответом
type CatalogResponse struct {
	Services []*ServiceResponse `json:"services"`
	Products []*ProductResponse `json:"products"`
}

// FromDomainService конвертирует domain модель услуги в response
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID.String(),
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainProduct конвертирует domain модель товара в response
func FromDomainProduct(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// FromDomainCatalog собирает полный каталог из domain моделей
func FromDomainCatalog(services []*domain.Service, products []*domain.Product) *CatalogResponse {
	resp := &CatalogResponse{
		Services: make([]*ServiceResponse, len(services)),
		Products: make([]*ProductResponse, len(products)),
	}

	for i, s := range services {
		resp.Services[i] = FromDomainService(s)
	}
	for i, p := range products {
		resp.Products[i] = FromDomainProduct(p)
	}

	return resp
}
