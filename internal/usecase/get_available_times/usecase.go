package get_available_times

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/internal/agenda"
	"github.com/clickcy/clickbarber/internal/domain"
	professionalRepo "github.com/clickcy/clickbarber/internal/infra/storage/professional"
	"github.com/clickcy/clickbarber/pkg/types"
)

// UseCase use case для получения свободных времён начала записи
type UseCase struct {
	appointmentRepo  AppointmentRepository
	professionalRepo ProfessionalRepository
	catalogRepo      CatalogRepository
	window           agenda.TimeWindow
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	professionalRepo ProfessionalRepository,
	catalogRepo CatalogRepository,
	window agenda.TimeWindow,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		professionalRepo: professionalRepo,
		catalogRepo:      catalogRepo,
		window:           window,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute возвращает времена начала с шагом в четверть часа, на которые
// запись указанной длительности помещается без пересечений.
// Для сегодняшней даты прошедшие времена отбрасываются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTimes: professional=%s, date=%s, duration=%d",
		req.ProfessionalID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if req.ProfessionalID == uuid.Nil {
		return nil, fmt.Errorf("%w: professionalID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.DurationMinutes < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}

	// 2. Определяем длительность: услуги из каталога или явное значение
	duration, err := uc.resolveDuration(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Профессионал должен существовать и работать
	prof, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableTimes: professional id=%s not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableTimes: failed to get professional id=%s: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	if !prof.IsActive {
		uc.logger.Warn("GetAvailableTimes: professional id=%s is not active", req.ProfessionalID)
		return nil, ErrProfessionalInactive
	}

	// 4. Активные записи на день
	appointments, err := uc.appointmentRepo.GetDayForProfessional(ctx, req.ProfessionalID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to get day appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get day appointments: %v", ErrInternal, err)
	}

	// 5. Перебираем кандидатов и отбрасываем занятые
	times := uc.collectFreeTimes(req.Date, duration, appointments)

	uc.logger.Info("GetAvailableTimes: %d free times for professional=%s on %s",
		len(times), req.ProfessionalID, req.Date.Format(domain.DateFormat))

	return &Response{
		ProfessionalID:  req.ProfessionalID,
		Date:            req.Date,
		DurationMinutes: duration,
		Times:           times,
	}, nil
}

// resolveDuration возвращает длительность записи в минутах.
// Приоритет: сумма выбранных услуг, затем явная длительность, затем одна ячейка сетки.
func (uc *UseCase) resolveDuration(ctx context.Context, req *Request) (int, error) {
	if len(req.ServiceIDs) > 0 {
		services, err := uc.catalogRepo.GetServicesByIDs(ctx, req.ServiceIDs)
		if err != nil {
			uc.logger.Error("GetAvailableTimes: failed to get services: %v", err)
			return 0, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
		}
		if len(services) != len(req.ServiceIDs) {
			uc.logger.Warn("GetAvailableTimes: requested %d services, found %d", len(req.ServiceIDs), len(services))
			return 0, ErrServiceNotFound
		}

		var duration int
		for _, svc := range services {
			duration += svc.DurationMinutes
		}
		return duration, nil
	}

	if req.DurationMinutes > 0 {
		return req.DurationMinutes, nil
	}

	return uc.window.SlotMinutes, nil
}

func (uc *UseCase) collectFreeTimes(date time.Time, duration int, appointments []*domain.Appointment) []types.TimeString {
	now := uc.timeProvider.Now()
	today := isSameDay(date, now)
	nowMinutes := now.Hour()*60 + now.Minute()

	free := make([]types.TimeString, 0)

	startMin := uc.window.DayStart.TotalMinutes()
	endMin := uc.window.DayEnd.TotalMinutes()

	for m := startMin; m+duration <= endMin; m += domain.QuarterMinutes {
		// Сегодняшние прошедшие времена не предлагаем
		if today && m < nowMinutes {
			continue
		}

		candidateStart := combineDateTime(date, m)
		candidateEnd := candidateStart.Add(time.Duration(duration) * time.Minute)

		if hasConflict(appointments, candidateStart, candidateEnd) {
			continue
		}

		free = append(free, types.FromMinutes(m))
	}

	return free
}

// hasConflict проверяет пересечение кандидата с активными записями.
// Строгие неравенства: касание границ не конфликт.
func hasConflict(appointments []*domain.Appointment, start, end time.Time) bool {
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if appt.Overlaps(start, end) {
			return true
		}
	}
	return false
}

func combineDateTime(date time.Time, minuteOfDay int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minuteOfDay/60, minuteOfDay%60, 0, 0, date.Location())
}

func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
