package get_available_times

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clickcy/clickbarber/internal/agenda"
	"github.com/clickcy/clickbarber/internal/domain"
	professionalRepo "github.com/clickcy/clickbarber/internal/infra/storage/professional"
	"github.com/clickcy/clickbarber/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) GetDayForProfessional(_ context.Context, _ uuid.UUID, _ time.Time) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type fakeProfessionalRepo struct {
	professional *domain.Professional
}

func (f *fakeProfessionalRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Professional, error) {
	if f.professional == nil || f.professional.ID != id {
		return nil, professionalRepo.ErrProfessionalNotFound
	}
	return f.professional, nil
}

type fakeCatalogRepo struct {
	services map[uuid.UUID]*domain.Service
}

func (f *fakeCatalogRepo) GetServicesByIDs(_ context.Context, ids []uuid.UUID) ([]*domain.Service, error) {
	var out []*domain.Service
	for _, id := range ids {
		if svc, ok := f.services[id]; ok {
			out = append(out, svc)
		}
	}
	return out, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestGetAvailableTimes(t *testing.T) {
	date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	carlos := &domain.Professional{ID: uuid.New(), Name: "Carlos", IsActive: true}
	haircut := &domain.Service{ID: uuid.New(), Name: "Haircut", Price: 50, DurationMinutes: 30}
	coloring := &domain.Service{ID: uuid.New(), Name: "Coloring", Price: 120, DurationMinutes: 90}

	appointmentAt := func(start, end string) *domain.Appointment {
		parse := func(hm string) time.Time {
			parsed, _ := time.Parse("15:04", hm)
			return time.Date(2026, 3, 12, parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
		}
		return &domain.Appointment{
			ID:             uuid.New(),
			ProfessionalID: carlos.ID,
			StartTime:      parse(start),
			EndTime:        parse(end),
			Status:         domain.StatusScheduled,
		}
	}

	newUseCase := func(appointments ...*domain.Appointment) *UseCase {
		uc := NewUseCase(
			&fakeAppointmentRepo{appointments: appointments},
			&fakeProfessionalRepo{professional: carlos},
			&fakeCatalogRepo{services: map[uuid.UUID]*domain.Service{
				haircut.ID:  haircut,
				coloring.ID: coloring,
			}},
			agenda.DefaultWindow(),
			noopLogger{},
		)
		// День до запрошенной даты, фильтр "сегодня" не срабатывает
		uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
		return uc
	}

	t.Run("free day offers every quarter that fits", func(t *testing.T) {
		uc := newUseCase()

		resp, err := uc.Execute(context.Background(), &Request{
			ProfessionalID: carlos.ID,
			Date:           date,
			// Длительность по умолчанию - ячейка сетки, 60 минут
		})

		require.NoError(t, err)
		assert.Equal(t, 60, resp.DurationMinutes)
		// 08:00 .. 17:00 с шагом 15 минут
		require.Len(t, resp.Times, 37)
		assert.Equal(t, types.TimeString("08:00"), resp.Times[0])
		assert.Equal(t, types.TimeString("17:00"), resp.Times[36])
	})

	t.Run("booked interval removes overlapping starts", func(t *testing.T) {
		uc := newUseCase(appointmentAt("10:00", "11:00"))

		resp, err := uc.Execute(context.Background(), &Request{
			ProfessionalID:  carlos.ID,
			Date:            date,
			DurationMinutes: 30,
		})

		require.NoError(t, err)

		times := make(map[types.TimeString]bool, len(resp.Times))
		for _, tm := range resp.Times {
			times[tm] = true
		}

		// Касание границ допустимо
		assert.True(t, times["09:30"])
		assert.True(t, times["11:00"])

		// Любое пересечение с 10:00-11:00 занято
		assert.False(t, times["09:45"])
		assert.False(t, times["10:00"])
		assert.False(t, times["10:30"])
		assert.False(t, times["10:45"])
	})

	t.Run("cancelled appointment frees its interval", func(t *testing.T) {
		cancelled := appointmentAt("10:00", "11:00")
		cancelled.Status = domain.StatusCancelled
		uc := newUseCase(cancelled)

		resp, err := uc.Execute(context.Background(), &Request{
			ProfessionalID:  carlos.ID,
			Date:            date,
			DurationMinutes: 30,
		})

		require.NoError(t, err)
		assert.Contains(t, resp.Times, types.TimeString("10:15"))
	})

	t.Run("past times are dropped for today", func(t *testing.T) {
		uc := newUseCase()
		uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 3, 12, 14, 10, 0, 0, time.UTC)}

		resp, err := uc.Execute(context.Background(), &Request{
			ProfessionalID:  carlos.ID,
			Date:            date,
			DurationMinutes: 30,
		})

		require.NoError(t, err)
		require.NotEmpty(t, resp.Times)
		assert.Equal(t, types.TimeString("14:15"), resp.Times[0])
	})

	t.Run("long duration narrows the tail", func(t *testing.T) {
		uc := newUseCase()

		resp, err := uc.Execute(context.Background(), &Request{
			ProfessionalID:  carlos.ID,
			Date:            date,
			DurationMinutes: 120,
		})

		require.NoError(t, err)
		require.NotEmpty(t, resp.Times)
		// Последний старт, при котором 2 часа помещаются до 18:00
		assert.Equal(t, types.TimeString("16:00"), resp.Times[len(resp.Times)-1])
	})

	t.Run("duration from selected services", func(t *testing.T) {
		uc := newUseCase()

		resp, err := uc.Execute(context.Background(), &Request{
			ProfessionalID: carlos.ID,
			Date:           date,
			ServiceIDs:     []uuid.UUID{haircut.ID, coloring.ID},
		})

		require.NoError(t, err)
		assert.Equal(t, 120, resp.DurationMinutes)
		require.NotEmpty(t, resp.Times)
		assert.Equal(t, types.TimeString("16:00"), resp.Times[len(resp.Times)-1])
	})

	t.Run("unknown service", func(t *testing.T) {
		uc := newUseCase()

		_, err := uc.Execute(context.Background(), &Request{
			ProfessionalID: carlos.ID,
			Date:           date,
			ServiceIDs:     []uuid.UUID{uuid.New()},
		})

		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("unknown professional", func(t *testing.T) {
		uc := newUseCase()

		_, err := uc.Execute(context.Background(), &Request{
			ProfessionalID: uuid.New(),
			Date:           date,
		})

		assert.ErrorIs(t, err, ErrProfessionalNotFound)
	})

	t.Run("inactive professional", func(t *testing.T) {
		inactive := &domain.Professional{ID: uuid.New(), Name: "Retired", IsActive: false}
		uc := newUseCase()
		uc.professionalRepo = &fakeProfessionalRepo{professional: inactive}

		_, err := uc.Execute(context.Background(), &Request{
			ProfessionalID: inactive.ID,
			Date:           date,
		})

		assert.ErrorIs(t, err, ErrProfessionalInactive)
	})
}
