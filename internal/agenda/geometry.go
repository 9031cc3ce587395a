package agenda

import (
	"fmt"

	"github.com/clickcy/clickbarber/internal/domain"
	"github.com/clickcy/clickbarber/pkg/types"
)

// BlockGeometry positions an appointment block inside a day column.
// The scale is 1 pixel per minute, so a 60-minute row is 60 pixels tall
// and the values below double as pixel offsets.
type BlockGeometry struct {
	TopOffsetMinutes int
	HeightMinutes    int
}

// ComputeBlockGeometry returns where an appointment block sits relative to
// the top of the day column and how tall it is.
func ComputeBlockGeometry(appt *domain.Appointment, dayStart types.TimeString) BlockGeometry {
	start := minuteOfDay(appt.StartTime)

	return BlockGeometry{
		TopOffsetMinutes: start - dayStart.TotalMinutes(),
		HeightMinutes:    appt.DurationMinutes(),
	}
}

// MinutesSinceWindowStart converts a time of day into a vertical offset
// from the top of the grid.
func MinutesSinceWindowStart(t types.TimeString, dayStart types.TimeString) int {
	return t.TotalMinutes() - dayStart.TotalMinutes()
}

// MinutesToTime is the inverse of MinutesSinceWindowStart: it maps a
// vertical offset back to a time of day.
func MinutesToTime(offsetMinutes int, dayStart types.TimeString) types.TimeString {
	return types.FromMinutes(dayStart.TotalMinutes() + offsetMinutes)
}

// ResolveClickTime converts a click offset inside the grid into a bookable
// time. Minutes within the hour snap to the nearest quarter; a snap to :60
// rolls over to the next hour. Results outside the window are rejected.
func ResolveClickTime(offsetMinutes int, window TimeWindow) (types.TimeString, error) {
	raw := window.DayStart.TotalMinutes() + offsetMinutes

	hour := raw / 60
	minute := roundToQuarter(raw % 60)
	if minute == 60 {
		hour++
		minute = 0
	}

	if hour < window.DayStart.Hour() || hour >= window.DayEnd.Hour() {
		return "", fmt.Errorf("%w: resolved %02d:%02d, window is %s-%s",
			ErrOutsideWindow, hour, minute, window.DayStart, window.DayEnd)
	}

	return types.FromMinutes(hour*60 + minute), nil
}

// roundToQuarter привязывает минуты к ближайшей четверти часа; минута 52 и
// выше уходит вверх, к :60
func roundToQuarter(minute int) int {
	return (minute + domain.QuarterMinutes/2 + 1) / domain.QuarterMinutes * domain.QuarterMinutes
}
