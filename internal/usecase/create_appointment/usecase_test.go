package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clickcy/clickbarber/internal/agenda"
	"github.com/clickcy/clickbarber/internal/domain"
	clientRepo "github.com/clickcy/clickbarber/internal/infra/storage/client"
	professionalRepo "github.com/clickcy/clickbarber/internal/infra/storage/professional"
	"github.com/clickcy/clickbarber/internal/integrations/notify"
	"github.com/clickcy/clickbarber/pkg/ptr"
)

type fakeAppointmentRepo struct {
	dayAppointments []*domain.Appointment
	created         *domain.Appointment
	createdServices []uuid.UUID
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment, serviceIDs []uuid.UUID) (*domain.Appointment, error) {
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	f.created = appt
	f.createdServices = serviceIDs
	return appt, nil
}

func (f *fakeAppointmentRepo) GetDayForProfessional(_ context.Context, _ uuid.UUID, _ time.Time) ([]*domain.Appointment, error) {
	return f.dayAppointments, nil
}

type fakeClientRepo struct {
	client *domain.Client
}

func (f *fakeClientRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Client, error) {
	if f.client == nil || f.client.ID != id {
		return nil, clientRepo.ErrClientNotFound
	}
	return f.client, nil
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
	services []*domain.Service
}

func (f *fakeCatalogRepo) GetServicesByIDs(_ context.Context, ids []uuid.UUID) ([]*domain.Service, error) {
	found := make([]*domain.Service, 0, len(ids))
	for _, id := range ids {
		for _, svc := range f.services {
			if svc.ID == id {
				found = append(found, svc)
			}
		}
	}
	return found, nil
}

type fakeNotifyClient struct {
	events []notify.AppointmentEvent
}

func (f *fakeNotifyClient) AppointmentCreatedWithGracefulDegradation(_ context.Context, event notify.AppointmentEvent) error {
	f.events = append(f.events, event)
	return nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type fixture struct {
	uc              *UseCase
	appointmentRepo *fakeAppointmentRepo
	notifyClient    *fakeNotifyClient
	txManager       *fakeTxManager

	clientID       uuid.UUID
	professionalID uuid.UUID
	haircutID      uuid.UUID
	beardID        uuid.UUID
	date           time.Time
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		appointmentRepo: &fakeAppointmentRepo{},
		notifyClient:    &fakeNotifyClient{},
		txManager:       &fakeTxManager{},
		clientID:        uuid.New(),
		professionalID:  uuid.New(),
		haircutID:       uuid.New(),
		beardID:         uuid.New(),
		date:            time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
	}

	clients := &fakeClientRepo{client: &domain.Client{
		ID:    f.clientID,
		Name:  "Ana Souza",
		Phone: ptr.Ptr("+55 11 99999-0000"),
	}}

	professionals := &fakeProfessionalRepo{professional: &domain.Professional{
		ID:       f.professionalID,
		Name:     "Carlos",
		IsActive: true,
	}}

	catalog := &fakeCatalogRepo{services: []*domain.Service{
		{ID: f.haircutID, Name: "Corte", Price: 50, DurationMinutes: 30},
		{ID: f.beardID, Name: "Barba", Price: 30, DurationMinutes: 15},
	}}

	f.uc = NewUseCase(
		f.appointmentRepo,
		clients,
		professionals,
		catalog,
		f.notifyClient,
		f.txManager,
		agenda.DefaultWindow(),
		noopLogger{},
	)
	f.uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}

	return f
}

func (f *fixture) existingAppointment(start, end string) *domain.Appointment {
	parse := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(2026, 3, 12, t.Hour(), t.Minute(), 0, 0, time.UTC)
	}
	return &domain.Appointment{
		ID:             uuid.New(),
		ClientID:       uuid.New(),
		ProfessionalID: f.professionalID,
		StartTime:      parse(start),
		EndTime:        parse(end),
		Status:         domain.StatusScheduled,
	}
}

func TestCreateAppointment(t *testing.T) {
	t.Run("creates appointment with duration and price from services", func(t *testing.T) {
		f := newFixture(t)

		resp, err := f.uc.Execute(context.Background(), &Request{
			ClientID:       f.clientID,
			ProfessionalID: f.professionalID,
			Date:           f.date,
			StartTime:      "10:00",
			ServiceIDs:     []uuid.UUID{f.haircutID, f.beardID},
		})

		require.NoError(t, err)
		assert.Equal(t, "10:45", string(resp.EndTime))
		assert.Equal(t, 45, resp.DurationMinutes)
		assert.Equal(t, 80.0, resp.TotalPrice)
		assert.Equal(t, string(domain.StatusScheduled), resp.Status)
		assert.Equal(t, "Ana Souza", resp.ClientName)
		assert.Equal(t, []string{"Corte", "Barba"}, resp.ServiceNames)

		require.NotNil(t, f.appointmentRepo.created)
		assert.Equal(t, []uuid.UUID{f.haircutID, f.beardID}, f.appointmentRepo.createdServices)
		assert.Equal(t, 1, f.txManager.calls)

		require.Len(t, f.notifyClient.events, 1)
		assert.Equal(t, "Carlos", f.notifyClient.events[0].Professional)
		assert.Equal(t, "10:00", f.notifyClient.events[0].StartTime)
	})

	t.Run("rejects overlapping appointment", func(t *testing.T) {
		f := newFixture(t)
		f.appointmentRepo.dayAppointments = []*domain.Appointment{
			f.existingAppointment("10:00", "11:00"),
		}

		_, err := f.uc.Execute(context.Background(), &Request{
			ClientID:       f.clientID,
			ProfessionalID: f.professionalID,
			Date:           f.date,
			StartTime:      "10:30",
			ServiceIDs:     []uuid.UUID{f.haircutID},
		})

		assert.ErrorIs(t, err, ErrTimeConflict)
		assert.Nil(t, f.appointmentRepo.created)
	})

	t.Run("boundary touch is not a conflict", func(t *testing.T) {
		f := newFixture(t)
		f.appointmentRepo.dayAppointments = []*domain.Appointment{
			f.existingAppointment("09:30", "10:00"),
			f.existingAppointment("10:30", "11:00"),
		}

		// 30-минутная услуга ровно между двумя записями
		resp, err := f.uc.Execute(context.Background(), &Request{
			ClientID:       f.clientID,
			ProfessionalID: f.professionalID,
			Date:           f.date,
			StartTime:      "10:00",
			ServiceIDs:     []uuid.UUID{f.haircutID},
		})

		require.NoError(t, err)
		assert.Equal(t, "10:30", string(resp.EndTime))
	})

	t.Run("cancelled appointment does not block the slot", func(t *testing.T) {
		f := newFixture(t)
		blocked := f.existingAppointment("10:00", "11:00")
		blocked.Status = domain.StatusCancelled
		f.appointmentRepo.dayAppointments = []*domain.Appointment{blocked}

		_, err := f.uc.Execute(context.Background(), &Request{
			ClientID:       f.clientID,
			ProfessionalID: f.professionalID,
			Date:           f.date,
			StartTime:      "10:00",
			ServiceIDs:     []uuid.UUID{f.haircutID},
		})

		assert.NoError(t, err)
	})

	t.Run("unknown client", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Execute(context.Background(), &Request{
			ClientID:       uuid.New(),
			ProfessionalID: f.professionalID,
			Date:           f.date,
			StartTime:      "10:00",
			ServiceIDs:     []uuid.UUID{f.haircutID},
		})

		assert.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("inactive professional", func(t *testing.T) {
		f := newFixture(t)

		inactive := &domain.Professional{ID: uuid.New(), Name: "Retired", IsActive: false}
		f.uc.professionalRepo = &fakeProfessionalRepo{professional: inactive}

		_, err := f.uc.Execute(context.Background(), &Request{
			ClientID:       f.clientID,
			ProfessionalID: inactive.ID,
			Date:           f.date,
			StartTime:      "10:00",
			ServiceIDs:     []uuid.UUID{f.haircutID},
		})

		assert.ErrorIs(t, err, ErrProfessionalInactive)
	})

	t.Run("unknown service", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Execute(context.Background(), &Request{
			ClientID:       f.clientID,
			ProfessionalID: f.professionalID,
			Date:           f.date,
			StartTime:      "10:00",
			ServiceIDs:     []uuid.UUID{uuid.New()},
		})

		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("appointment past closing time", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Execute(context.Background(), &Request{
			ClientID:       f.clientID,
			ProfessionalID: f.professionalID,
			Date:           f.date,
			StartTime:      "17:45",
			ServiceIDs:     []uuid.UUID{f.haircutID}, // 30 минут, конец 18:15
		})

		assert.ErrorIs(t, err, ErrOutsideBusinessHours)
	})

	t.Run("date in the past", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Execute(context.Background(), &Request{
			ClientID:       f.clientID,
			ProfessionalID: f.professionalID,
			Date:           time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			StartTime:      "10:00",
			ServiceIDs:     []uuid.UUID{f.haircutID},
		})

		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("misaligned start time", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Execute(context.Background(), &Request{
			ClientID:       f.clientID,
			ProfessionalID: f.professionalID,
			Date:           f.date,
			StartTime:      "10:07",
			ServiceIDs:     []uuid.UUID{f.haircutID},
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("no services", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Execute(context.Background(), &Request{
			ClientID:       f.clientID,
			ProfessionalID: f.professionalID,
			Date:           f.date,
			StartTime:      "10:00",
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
