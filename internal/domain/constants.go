package domain

// Default agenda window values, used when the config omits the [agenda] section
const (
	DefaultDayStart    = "08:00"
	DefaultDayEnd      = "18:00"
	DefaultSlotMinutes = 60
)

// QuarterMinutes is the granularity clicks and booking times snap to
const QuarterMinutes = 15

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxNotesLength            = 500
	MaxCancellationReasonLen  = 500
	MaxSaleItems              = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов записей, не занимающих слот в сетке
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses список статусов записей, занимающих слот в сетке
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
}

// ValidAppointmentStatus проверяет, что статус входит в закрытый перечень
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}
