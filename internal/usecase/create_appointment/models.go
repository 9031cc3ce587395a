package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID       uuid.UUID        // ID клиента
	ProfessionalID uuid.UUID        // ID профессионала (колонка сетки)
	Date           time.Time        // Дата записи (без времени)
	StartTime      types.TimeString // Время начала (например, "10:00")
	ServiceIDs     []uuid.UUID      // Выбранные услуги, задают длительность и цену
	Notes          *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              uuid.UUID        // ID созданной записи
	ClientID        uuid.UUID        // ID клиента
	ProfessionalID  uuid.UUID        // ID профессионала
	Date            time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи

	// Денормализованные данные
	ClientName   string   // Имя клиента
	ServiceNames []string // Названия услуг
	TotalPrice   float64  // Суммарная цена услуг
	Notes        *string  // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
