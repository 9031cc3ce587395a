package get_available_times

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetDayForProfessional(ctx context.Context, professionalID uuid.UUID, date time.Time) ([]*domain.Appointment, error)
}

// ProfessionalRepository интерфейс репозитория профессионалов
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Service, error)
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
