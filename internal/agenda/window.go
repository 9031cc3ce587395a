package agenda

import (
	"fmt"

	"github.com/clickcy/clickbarber/pkg/types"
)

// TimeWindow describes the visible working hours of a day grid and the
// height of a single row. The window is half-open: a time t belongs to it
// when DayStart <= t < DayEnd.
type TimeWindow struct {
	DayStart    types.TimeString
	DayEnd      types.TimeString
	SlotMinutes int
}

// DefaultWindow returns the standard salon working hours grid.
func DefaultWindow() TimeWindow {
	return TimeWindow{
		DayStart:    "08:00",
		DayEnd:      "18:00",
		SlotMinutes: 60,
	}
}

// Validate checks that the window is well-formed: both bounds parse,
// the start precedes the end and the row size divides the window evenly.
func (w TimeWindow) Validate() error {
	if err := w.DayStart.Validate(); err != nil {
		return fmt.Errorf("%w: day start: %v", ErrInvalidWindow, err)
	}

	if err := w.DayEnd.Validate(); err != nil {
		return fmt.Errorf("%w: day end: %v", ErrInvalidWindow, err)
	}

	if !w.DayStart.IsBefore(w.DayEnd) {
		return fmt.Errorf("%w: day start %s is not before day end %s", ErrInvalidWindow, w.DayStart, w.DayEnd)
	}

	if w.SlotMinutes <= 0 {
		return fmt.Errorf("%w: slot size must be positive, got %d", ErrInvalidWindow, w.SlotMinutes)
	}

	if w.TotalMinutes()%w.SlotMinutes != 0 {
		return fmt.Errorf("%w: slot size %d does not divide window of %d minutes evenly",
			ErrInvalidWindow, w.SlotMinutes, w.TotalMinutes())
	}

	return nil
}

// TotalMinutes returns the length of the window in minutes.
func (w TimeWindow) TotalMinutes() int {
	return w.DayEnd.TotalMinutes() - w.DayStart.TotalMinutes()
}

// Contains reports whether t falls inside the half-open window.
func (w TimeWindow) Contains(t types.TimeString) bool {
	return !t.IsBefore(w.DayStart) && t.IsBefore(w.DayEnd)
}

// RowStarts returns the start time of every grid row, in order.
// For the 08:00-18:00 window with 60-minute rows that is 08:00 through 17:00.
func (w TimeWindow) RowStarts() []types.TimeString {
	rows := make([]types.TimeString, 0, w.TotalMinutes()/w.SlotMinutes)

	for m := w.DayStart.TotalMinutes(); m < w.DayEnd.TotalMinutes(); m += w.SlotMinutes {
		rows = append(rows, types.FromMinutes(m))
	}

	return rows
}
