package professionals

import (
	"context"

	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/internal/domain"
)

// ProfessionalRepository интерфейс репозитория профессионалов
type ProfessionalRepository interface {
	Create(ctx context.Context, prof *domain.Professional) (*domain.Professional, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Professional, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
