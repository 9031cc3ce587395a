package create_sale

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/internal/domain"
)

// SaleRepository интерфейс репозитория продаж
type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	CreateCommission(ctx context.Context, commission *domain.Commission) error
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Service, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	StampLastVisit(ctx context.Context, id uuid.UUID, visitDate time.Time) error
}

// ProfessionalRepository интерфейс репозитория профессионалов
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
