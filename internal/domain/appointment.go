package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment represents a scheduled visit of a client to a professional
type Appointment struct {
	ID             uuid.UUID
	ClientID       uuid.UUID
	ProfessionalID uuid.UUID
	StartTime      time.Time
	EndTime        time.Time
	Status         AppointmentStatus
	Notes          *string

	// Denormalized data for the agenda grid and history
	ClientName   string
	ServiceNames []string
	TotalPrice   float64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its time slot
// Cancelled and no-show appointments free the slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// DurationMinutes returns the appointment length in whole minutes
func (a *Appointment) DurationMinutes() int {
	return int(a.EndTime.Sub(a.StartTime) / time.Minute)
}

// Overlaps reports whether the appointment interval intersects [start, end)
// Touching boundaries do not count as an overlap
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && a.EndTime.After(start)
}

// DayAgendaFilter фильтр выборки агенды на день
type DayAgendaFilter struct {
	Date            time.Time  // Обязательный параметр, время игнорируется
	ProfessionalID  *uuid.UUID // Фильтр по профессионалу (опционально)
	IncludeInactive bool       // Включать ли отменённые и no-show записи
}
