package reports

import (
	"context"
	"time"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	DayStats(ctx context.Context, date time.Time) (appointments int, uniqueClients int, err error)
}

// SaleRepository интерфейс репозитория продаж
type SaleRepository interface {
	DayRevenue(ctx context.Context, date time.Time) (float64, error)
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
