package get_day_agenda

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/internal/agenda"
	"github.com/clickcy/clickbarber/internal/domain"
	"github.com/clickcy/clickbarber/pkg/types"
)

// UseCase use case построения дневной сетки агенды
type UseCase struct {
	appointmentRepo  AppointmentRepository
	professionalRepo ProfessionalRepository
	window           agenda.TimeWindow
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	professionalRepo ProfessionalRepository,
	window agenda.TimeWindow,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		professionalRepo: professionalRepo,
		window:           window,
		logger:           logger,
	}
}

// Execute строит сетку агенды: колонка на профессионала, ячейки строкам окна,
// блоки записей с геометрией для отрисовки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayAgenda: date=%s, professional=%v", req.Date.Format(domain.DateFormat), req.ProfessionalID)

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetDayAgenda: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Профессионалы - колонки сетки
	professionals, err := uc.professionalRepo.List(ctx, true)
	if err != nil {
		uc.logger.Error("GetDayAgenda: failed to list professionals: %v", err)
		return nil, fmt.Errorf("%w: failed to list professionals: %v", ErrInternal, err)
	}

	if req.ProfessionalID != nil {
		professionals = filterProfessional(professionals, *req.ProfessionalID)
		if len(professionals) == 0 {
			uc.logger.Warn("GetDayAgenda: professional id=%s not found", *req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
	}

	// 3. Записи на день одним запросом
	appointments, err := uc.appointmentRepo.ListDay(ctx, domain.DayAgendaFilter{
		Date:           req.Date,
		ProfessionalID: req.ProfessionalID,
	})
	if err != nil {
		uc.logger.Error("GetDayAgenda: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 4. Классифицируем ячейки и считаем геометрию блоков
	rowStarts := uc.window.RowStarts()
	columns := make([]Column, 0, len(professionals))
	for _, prof := range professionals {
		columns = append(columns, uc.buildColumn(prof.ID, prof.Name, appointments))
	}

	uc.logger.Info("GetDayAgenda: built grid with %d rows x %d columns, %d appointments",
		len(rowStarts), len(columns), len(appointments))

	return &Response{
		Date:        req.Date,
		DayStart:    uc.window.DayStart,
		DayEnd:      uc.window.DayEnd,
		SlotMinutes: uc.window.SlotMinutes,
		RowStarts:   rowStarts,
		Columns:     columns,
	}, nil
}

func (uc *UseCase) buildColumn(professionalID uuid.UUID, professionalName string, appointments []*domain.Appointment) Column {
	column := Column{
		ProfessionalID:   professionalID,
		ProfessionalName: professionalName,
		Blocks:           make([]Block, 0),
	}

	occupancies := agenda.BuildColumn(uc.window, professionalID, appointments)
	rowStarts := uc.window.RowStarts()

	column.Slots = make([]Slot, len(occupancies))
	for i, occ := range occupancies {
		slot := Slot{
			RowStart:        rowStarts[i],
			Kind:            string(occ.Kind),
			IsStartRow:      occ.IsStartRow,
			OccupiedMinutes: occ.OccupiedMinutes,
			FreeMinutes:     occ.FreeMinutes,
		}
		if occ.Appointment != nil {
			id := occ.Appointment.ID
			slot.AppointmentID = &id
		}
		column.Slots[i] = slot
	}

	// Блок рисуется один раз, в строке начала записи
	for _, appt := range appointments {
		if appt.ProfessionalID != professionalID || !appt.IsActive() {
			continue
		}

		geom := agenda.ComputeBlockGeometry(appt, uc.window.DayStart)
		column.Blocks = append(column.Blocks, Block{
			AppointmentID:    appt.ID,
			ClientName:       appt.ClientName,
			ServiceNames:     appt.ServiceNames,
			StartTime:        types.NewTimeString(appt.StartTime),
			EndTime:          types.NewTimeString(appt.EndTime),
			Status:           string(appt.Status),
			TotalPrice:       appt.TotalPrice,
			TopOffsetMinutes: geom.TopOffsetMinutes,
			HeightMinutes:    geom.HeightMinutes,
		})
	}

	return column
}

func filterProfessional(professionals []*domain.Professional, id uuid.UUID) []*domain.Professional {
	for _, p := range professionals {
		if p.ID == id {
			return []*domain.Professional{p}
		}
	}
	return nil
}
