package get_available_times

import (
	"time"

	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/pkg/types"
)

// Request модель запроса доступных времён.
// Длительность задаётся либо услугами, либо напрямую в минутах.
type Request struct {
	ProfessionalID  uuid.UUID   // ID профессионала
	Date            time.Time   // Дата (без времени)
	ServiceIDs      []uuid.UUID // Выбранные услуги - длительность их сумма (опционально)
	DurationMinutes int         // Явная длительность; 0 = одна ячейка сетки
}

// Response модель ответа со свободными временами начала
type Response struct {
	ProfessionalID  uuid.UUID
	Date            time.Time
	DurationMinutes int
	Times           []types.TimeString // Времена начала с шагом в четверть часа
}
