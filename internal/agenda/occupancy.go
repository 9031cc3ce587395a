package agenda

import (
	"time"

	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/internal/domain"
	"github.com/clickcy/clickbarber/pkg/types"
)

// OccupancyKind classifies how much of a grid row an appointment covers.
type OccupancyKind string

const (
	// OccupancyEmpty - в ячейке нет активных записей
	OccupancyEmpty OccupancyKind = "empty"
	// OccupancyFull - запись покрывает ячейку целиком
	OccupancyFull OccupancyKind = "fully_occupied"
	// OccupancyPartial - запись покрывает ячейку частично
	OccupancyPartial OccupancyKind = "partially_occupied"
)

// SlotOccupancy is the classification of a single (row, professional) cell.
// For a partially covered cell OccupiedMinutes and FreeMinutes partition the
// row: their sum always equals the row size.
type SlotOccupancy struct {
	Kind        OccupancyKind
	Appointment *domain.Appointment

	// IsStartRow is true when the covering appointment starts inside this row,
	// i.e. this is the row that should render the appointment block.
	IsStartRow bool

	OccupiedMinutes int
	FreeMinutes     int
}

// ClassifySlot determines how the row starting at rowStart is covered for the
// given professional. Cancelled and no-show appointments never occupy a cell.
// When several appointments touch the same row the earliest-created one in the
// slice wins; overlap prevention at booking time keeps that case out of real data.
func ClassifySlot(rowStart types.TimeString, professionalID uuid.UUID, appointments []*domain.Appointment, slotMinutes int) SlotOccupancy {
	rowStartMin := rowStart.TotalMinutes()
	rowEndMin := rowStartMin + slotMinutes

	for _, appt := range appointments {
		if appt.ProfessionalID != professionalID || !appt.IsActive() {
			continue
		}

		apptStart := minuteOfDay(appt.StartTime)
		apptEnd := minuteOfDay(appt.EndTime)

		// Строгие неравенства: касание границы ячейки не считается пересечением
		if apptStart >= rowEndMin || apptEnd <= rowStartMin {
			continue
		}

		occupied := minInt(apptEnd, rowEndMin) - maxInt(apptStart, rowStartMin)
		if occupied < 0 {
			// Запись нулевой либо отрицательной длительности занятого интервала не даёт
			occupied = 0
		}

		occ := SlotOccupancy{
			Appointment:     appt,
			IsStartRow:      apptStart >= rowStartMin && apptStart < rowEndMin,
			OccupiedMinutes: occupied,
			FreeMinutes:     slotMinutes - occupied,
		}

		if occupied >= slotMinutes {
			occ.Kind = OccupancyFull
		} else {
			occ.Kind = OccupancyPartial
		}

		return occ
	}

	return SlotOccupancy{
		Kind:        OccupancyEmpty,
		FreeMinutes: slotMinutes,
	}
}

// BuildColumn classifies every row of the window for one professional.
// The result is ordered the same way as Window.RowStarts.
func BuildColumn(window TimeWindow, professionalID uuid.UUID, appointments []*domain.Appointment) []SlotOccupancy {
	rows := window.RowStarts()

	column := make([]SlotOccupancy, 0, len(rows))
	for _, rowStart := range rows {
		column = append(column, ClassifySlot(rowStart, professionalID, appointments, window.SlotMinutes))
	}

	return column
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
