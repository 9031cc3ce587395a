package create_appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/internal/agenda"
	"github.com/clickcy/clickbarber/internal/domain"
	"github.com/clickcy/clickbarber/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID == uuid.Nil {
		return fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}

	if req.ProfessionalID == uuid.Nil {
		return fmt.Errorf("%w: professionalID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	// Время начала должно лежать на сетке четвертей часа
	if req.StartTime.Minute()%domain.QuarterMinutes != 0 {
		return fmt.Errorf("%w: startTime must be aligned to %d minutes", ErrInvalidInput, domain.QuarterMinutes)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	for _, id := range req.ServiceIDs {
		if id == uuid.Nil {
			return fmt.Errorf("%w: serviceID must not be empty", ErrInvalidInput)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата записи не в прошлом
func validateDate(date time.Time, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateWindow проверяет, что интервал записи помещается в рабочее окно
func validateWindow(start, end types.TimeString, window agenda.TimeWindow) error {
	if !window.Contains(start) {
		return fmt.Errorf("%w: start %s is outside %s-%s", ErrOutsideBusinessHours, start, window.DayStart, window.DayEnd)
	}

	// Конец может совпадать с границей окна, но не выходить за неё
	if end.IsAfter(window.DayEnd) {
		return fmt.Errorf("%w: end %s is past %s", ErrOutsideBusinessHours, end, window.DayEnd)
	}

	return nil
}

// findConflict возвращает первую активную запись, пересекающуюся с интервалом [start, end)
// Граничное касание пересечением не считается
func findConflict(appointments []*domain.Appointment, start, end time.Time) *domain.Appointment {
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if appt.Overlaps(start, end) {
			return appt
		}
	}
	return nil
}

// combineDateTime собирает момент времени из даты и времени дня
func combineDateTime(date time.Time, t types.TimeString) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
