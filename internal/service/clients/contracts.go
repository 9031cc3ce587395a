package clients

import (
	"context"

	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/internal/domain"
)

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, filter domain.ClientsFilter) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
