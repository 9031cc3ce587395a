package get_day_agenda

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clickcy/clickbarber/internal/agenda"
	"github.com/clickcy/clickbarber/internal/domain"
	"github.com/clickcy/clickbarber/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) ListDay(_ context.Context, _ domain.DayAgendaFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type fakeProfessionalRepo struct {
	professionals []*domain.Professional
}

func (f *fakeProfessionalRepo) List(_ context.Context, _ bool) ([]*domain.Professional, error) {
	return f.professionals, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func appointmentAt(professionalID uuid.UUID, start, end string) *domain.Appointment {
	parse := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(2026, 3, 12, t.Hour(), t.Minute(), 0, 0, time.UTC)
	}
	return &domain.Appointment{
		ID:             uuid.New(),
		ClientID:       uuid.New(),
		ProfessionalID: professionalID,
		StartTime:      parse(start),
		EndTime:        parse(end),
		Status:         domain.StatusScheduled,
		ClientName:     "Ana Souza",
		ServiceNames:   []string{"Corte"},
		TotalPrice:     50,
	}
}

func TestGetDayAgenda(t *testing.T) {
	date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	carlos := &domain.Professional{ID: uuid.New(), Name: "Carlos", IsActive: true}
	bruno := &domain.Professional{ID: uuid.New(), Name: "Bruno", IsActive: true}

	newUseCase := func(appointments ...*domain.Appointment) *UseCase {
		return NewUseCase(
			&fakeAppointmentRepo{appointments: appointments},
			&fakeProfessionalRepo{professionals: []*domain.Professional{bruno, carlos}},
			agenda.DefaultWindow(),
			noopLogger{},
		)
	}

	t.Run("grid shape", func(t *testing.T) {
		uc := newUseCase()

		resp, err := uc.Execute(context.Background(), &Request{Date: date})
		require.NoError(t, err)

		assert.Equal(t, types.TimeString("08:00"), resp.DayStart)
		assert.Equal(t, types.TimeString("18:00"), resp.DayEnd)
		assert.Equal(t, 60, resp.SlotMinutes)
		require.Len(t, resp.RowStarts, 10)
		require.Len(t, resp.Columns, 2)
		assert.Equal(t, "Bruno", resp.Columns[0].ProfessionalName)
		assert.Equal(t, "Carlos", resp.Columns[1].ProfessionalName)

		for _, col := range resp.Columns {
			require.Len(t, col.Slots, 10)
			for _, slot := range col.Slots {
				assert.Equal(t, string(agenda.OccupancyEmpty), slot.Kind)
			}
			assert.Empty(t, col.Blocks)
		}
	})

	t.Run("partial tail and block geometry", func(t *testing.T) {
		appt := appointmentAt(carlos.ID, "09:00", "09:45")
		uc := newUseCase(appt)

		resp, err := uc.Execute(context.Background(), &Request{Date: date})
		require.NoError(t, err)

		carlosCol := resp.Columns[1]

		nine := carlosCol.Slots[1] // строка 09:00
		assert.Equal(t, string(agenda.OccupancyPartial), nine.Kind)
		assert.True(t, nine.IsStartRow)
		assert.Equal(t, 45, nine.OccupiedMinutes)
		assert.Equal(t, 15, nine.FreeMinutes)
		require.NotNil(t, nine.AppointmentID)
		assert.Equal(t, appt.ID, *nine.AppointmentID)

		ten := carlosCol.Slots[2] // строка 10:00
		assert.Equal(t, string(agenda.OccupancyEmpty), ten.Kind)

		require.Len(t, carlosCol.Blocks, 1)
		block := carlosCol.Blocks[0]
		assert.Equal(t, 60, block.TopOffsetMinutes)
		assert.Equal(t, 45, block.HeightMinutes)
		assert.Equal(t, types.TimeString("09:00"), block.StartTime)
		assert.Equal(t, types.TimeString("09:45"), block.EndTime)
		assert.Equal(t, "Ana Souza", block.ClientName)

		// Соседняя колонка не затронута
		brunoCol := resp.Columns[0]
		assert.Equal(t, string(agenda.OccupancyEmpty), brunoCol.Slots[1].Kind)
		assert.Empty(t, brunoCol.Blocks)
	})

	t.Run("appointment spanning two rows", func(t *testing.T) {
		appt := appointmentAt(carlos.ID, "09:00", "10:30")
		uc := newUseCase(appt)

		resp, err := uc.Execute(context.Background(), &Request{Date: date})
		require.NoError(t, err)

		slots := resp.Columns[1].Slots

		assert.Equal(t, string(agenda.OccupancyFull), slots[1].Kind)
		assert.True(t, slots[1].IsStartRow)

		assert.Equal(t, string(agenda.OccupancyPartial), slots[2].Kind)
		assert.False(t, slots[2].IsStartRow)
		assert.Equal(t, 30, slots[2].OccupiedMinutes)
		assert.Equal(t, 30, slots[2].FreeMinutes)

		// Блок один, в строке начала
		require.Len(t, resp.Columns[1].Blocks, 1)
		assert.Equal(t, 90, resp.Columns[1].Blocks[0].HeightMinutes)
	})

	t.Run("filter by professional", func(t *testing.T) {
		uc := newUseCase()

		resp, err := uc.Execute(context.Background(), &Request{Date: date, ProfessionalID: &carlos.ID})
		require.NoError(t, err)

		require.Len(t, resp.Columns, 1)
		assert.Equal(t, carlos.ID, resp.Columns[0].ProfessionalID)
	})

	t.Run("unknown professional", func(t *testing.T) {
		uc := newUseCase()
		unknown := uuid.New()

		_, err := uc.Execute(context.Background(), &Request{Date: date, ProfessionalID: &unknown})
		assert.ErrorIs(t, err, ErrProfessionalNotFound)
	})

	t.Run("missing date", func(t *testing.T) {
		uc := newUseCase()

		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
