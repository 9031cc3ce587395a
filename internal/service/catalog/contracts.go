package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога услуг и товаров
type CatalogRepository interface {
	CreateService(ctx context.Context, service *domain.Service) (*domain.Service, error)
	ListServices(ctx context.Context) ([]*domain.Service, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
