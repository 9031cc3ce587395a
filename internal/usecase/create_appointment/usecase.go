package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/internal/agenda"
	"github.com/clickcy/clickbarber/internal/domain"
	catalogRepo "github.com/clickcy/clickbarber/internal/infra/storage/catalog"
	clientRepo "github.com/clickcy/clickbarber/internal/infra/storage/client"
	professionalRepo "github.com/clickcy/clickbarber/internal/infra/storage/professional"
	"github.com/clickcy/clickbarber/internal/integrations/notify"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	appointmentRepo  AppointmentRepository
	clientRepo       ClientRepository
	professionalRepo ProfessionalRepository
	catalogRepo      CatalogRepository
	notifyClient     NotifyClient
	txManager        TransactionManager
	window           agenda.TimeWindow
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case.
// notifyClient может быть nil - тогда уведомления не отправляются.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	professionalRepo ProfessionalRepository,
	catalogRepo CatalogRepository,
	notifyClient NotifyClient,
	txManager TransactionManager,
	window agenda.TimeWindow,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		clientRepo:       clientRepo,
		professionalRepo: professionalRepo,
		catalogRepo:      catalogRepo,
		notifyClient:     notifyClient,
		txManager:        txManager,
		window:           window,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения двойного бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%s, professional=%s, date=%s, time=%s, services=%d",
		req.ClientID, req.ProfessionalID, req.Date.Format(domain.DateFormat), req.StartTime, len(req.ServiceIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и проверяем дату
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем клиента
	client, err := uc.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("CreateAppointment: client id=%s not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get client id=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 4. Получаем профессионала и проверяем, что он работает
	prof, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateAppointment: professional id=%s not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get professional id=%s: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	if !prof.IsActive {
		uc.logger.Warn("CreateAppointment: professional id=%s is not active", req.ProfessionalID)
		return nil, ErrProfessionalInactive
	}

	// 5. Получаем услуги, считаем длительность и цену
	services, err := uc.catalogRepo.GetServicesByIDs(ctx, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	if len(services) != len(req.ServiceIDs) {
		uc.logger.Warn("CreateAppointment: requested %d services, found %d", len(req.ServiceIDs), len(services))
		return nil, ErrServiceNotFound
	}

	var durationMinutes int
	var totalPrice float64
	serviceNames := make([]string, len(services))
	for i, svc := range services {
		durationMinutes += svc.DurationMinutes
		totalPrice += svc.Price
		serviceNames[i] = svc.Name
	}

	// 6. Вычисляем конец записи и проверяем рабочее окно
	endTime, err := req.StartTime.AddMinutes(durationMinutes)
	if err != nil {
		uc.logger.Warn("CreateAppointment: appointment runs past midnight: %v", err)
		return nil, fmt.Errorf("%w: appointment does not fit the day", ErrOutsideBusinessHours)
	}

	if err := validateWindow(req.StartTime, endTime, uc.window); err != nil {
		uc.logger.Warn("CreateAppointment: window validation failed: %v", err)
		return nil, err
	}

	startAt := combineDateTime(req.Date, req.StartTime)
	endAt := combineDateTime(req.Date, endTime)

	// Переменная для хранения результата
	var result *domain.Appointment

	// 7. Проверка пересечений и вставка - в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Записи профессионала на день, с блокировкой FOR UPDATE
		dayAppointments, err := uc.appointmentRepo.GetDayForProfessional(txCtx, req.ProfessionalID, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get day appointments: %v", err)
			return fmt.Errorf("%w: failed to get day appointments: %v", ErrInternal, err)
		}

		// 7.2. Проверяем пересечение интервалов (строгие неравенства, касание границ не конфликт)
		if conflict := findConflict(dayAppointments, startAt, endAt); conflict != nil {
			uc.logger.Warn("CreateAppointment: time conflict with appointment id=%s (%s-%s)",
				conflict.ID, conflict.StartTime.Format(domain.TimeFormat), conflict.EndTime.Format(domain.TimeFormat))
			return fmt.Errorf("%w: conflicts with appointment %s", ErrTimeConflict, conflict.ID)
		}

		// 7.3. Создаем запись с денормализацией данных
		appt := &domain.Appointment{
			ID:             uuid.New(),
			ClientID:       req.ClientID,
			ProfessionalID: req.ProfessionalID,
			StartTime:      startAt,
			EndTime:        endAt,
			Status:         domain.StatusScheduled,
			Notes:          req.Notes,
			ClientName:     client.Name,
			ServiceNames:   serviceNames,
			TotalPrice:     totalPrice,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt, req.ServiceIDs)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	// 8. Уведомление клиента - best effort, запись уже создана
	uc.sendCreatedNotification(ctx, result, client, prof.Name)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		ProfessionalID:  result.ProfessionalID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         endTime,
		DurationMinutes: durationMinutes,
		Status:          string(result.Status),
		ClientName:      result.ClientName,
		ServiceNames:    result.ServiceNames,
		TotalPrice:      result.TotalPrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

func (uc *UseCase) sendCreatedNotification(ctx context.Context, appt *domain.Appointment, client *domain.Client, professionalName string) {
	if uc.notifyClient == nil {
		return
	}

	event := notify.AppointmentEvent{
		AppointmentID: appt.ID.String(),
		ClientName:    client.Name,
		ClientPhone:   client.Phone,
		Professional:  professionalName,
		Date:          appt.StartTime.Format(domain.DateFormat),
		StartTime:     appt.StartTime.Format(domain.TimeFormat),
		EndTime:       appt.EndTime.Format(domain.TimeFormat),
		ServiceNames:  appt.ServiceNames,
	}

	if err := uc.notifyClient.AppointmentCreatedWithGracefulDegradation(ctx, event); err != nil {
		// Уведомление не критично - запись уже создана
		uc.logger.Warn("CreateAppointment: notification degraded for appointment id=%s: %v", appt.ID, err)
	}
}
