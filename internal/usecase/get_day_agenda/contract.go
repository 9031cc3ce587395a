package get_day_agenda

import (
	"context"

	"github.com/clickcy/clickbarber/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListDay(ctx context.Context, filter domain.DayAgendaFilter) ([]*domain.Appointment, error)
}

// ProfessionalRepository интерфейс репозитория профессионалов
type ProfessionalRepository interface {
	List(ctx context.Context, onlyActive bool) ([]*domain.Professional, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
