package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/internal/domain"
	appointmentRepo "github.com/clickcy/clickbarber/internal/infra/storage/appointment"
	"github.com/clickcy/clickbarber/internal/integrations/notify"
	"github.com/clickcy/clickbarber/internal/service/appointments/models"
)

// Service сервис для работы с записями клиентов
type Service struct {
	appointmentRepo  AppointmentRepository
	professionalRepo ProfessionalRepository
	notifyClient     NotifyClient
	logger           Logger
}

// NewService создает новый экземпляр сервиса записей.
// notifyClient может быть nil - тогда уведомления не отправляются.
func NewService(
	appointmentRepo AppointmentRepository,
	professionalRepo ProfessionalRepository,
	notifyClient NotifyClient,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo:  appointmentRepo,
		professionalRepo: professionalRepo,
		notifyClient:     notifyClient,
		logger:           logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// Cancel отменяет запись с указанием причины.
// Отменить можно только запись в статусе scheduled или confirmed.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%s", id)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLen {
		s.logger.Warn("Cancel: cancellation reason too long for appointment id=%s", id)
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%s cannot be cancelled, status=%s", id, appt.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, id, req.CancellationReason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: failed to cancel appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%s", id)

	// Уведомление клиента - best effort, отмена уже состоялась
	s.sendCancelledNotification(ctx, appt, req.CancellationReason)

	return nil
}

// UpdateStatus обновляет статус записи (подтверждение, завершение, неявка)
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: appointment id=%s, status=%s", id, req.Status)

	status, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%s", req.Status, id)
		return ErrInvalidStatus
	}

	// Отмена идёт через Cancel - с причиной и уведомлением
	if status == domain.StatusCancelled {
		s.logger.Warn("UpdateStatus: cancellation must go through the cancel endpoint, appointment id=%s", id)
		return fmt.Errorf("%w: use the cancel operation for cancellations", ErrInvalidInput)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%s moved to status=%s", id, status)
	return nil
}

func (s *Service) sendCancelledNotification(ctx context.Context, appt *domain.Appointment, reason string) {
	if s.notifyClient == nil {
		return
	}

	event := notify.AppointmentEvent{
		AppointmentID: appt.ID.String(),
		ClientName:    appt.ClientName,
		Date:          appt.StartTime.Format(domain.DateFormat),
		StartTime:     appt.StartTime.Format(domain.TimeFormat),
		EndTime:       appt.EndTime.Format(domain.TimeFormat),
		ServiceNames:  appt.ServiceNames,
	}
	if reason != "" {
		event.CancelReason = &reason
	}

	if prof, err := s.professionalRepo.GetByID(ctx, appt.ProfessionalID); err == nil {
		event.Professional = prof.Name
	}

	if err := s.notifyClient.AppointmentCancelled(ctx, event); err != nil {
		s.logger.Error("Cancel: failed to send cancellation notification for appointment id=%s: %v", appt.ID, err)
	}
}
