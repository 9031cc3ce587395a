package professionals

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/internal/domain"
	professionalRepo "github.com/clickcy/clickbarber/internal/infra/storage/professional"
	"github.com/clickcy/clickbarber/internal/service/professionals/models"
)

// Service сервис для работы с профессионалами
type Service struct {
	professionalRepo ProfessionalRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса профессионалов
func NewService(professionalRepo ProfessionalRepository, logger Logger) *Service {
	return &Service{
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

// Create создает нового профессионала
func (s *Service) Create(ctx context.Context, req *models.CreateProfessionalRequest) (*models.ProfessionalResponse, error) {
	s.logger.Info("Create: creating professional name=%s", req.Name)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("Create: empty professional name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if req.CommissionPercent < 0 || req.CommissionPercent > 100 {
		s.logger.Warn("Create: invalid commission percent %.2f", req.CommissionPercent)
		return nil, fmt.Errorf("%w: commission percent must be in [0, 100]", ErrInvalidInput)
	}

	prof := &domain.Professional{
		ID:                uuid.New(),
		Name:              strings.TrimSpace(req.Name),
		Email:             req.Email,
		Phone:             req.Phone,
		Specialties:       req.Specialties,
		CommissionPercent: req.CommissionPercent,
		IsActive:          true,
	}

	created, err := s.professionalRepo.Create(ctx, prof)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created professional id=%s", created.ID)
	return models.FromDomainProfessional(created), nil
}

// GetByID получает профессионала по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ProfessionalResponse, error) {
	s.logger.Info("GetByID: fetching professional id=%s", id)

	prof, err := s.professionalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("GetByID: professional id=%s not found", id)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("GetByID: repository error for professional id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfessional(prof), nil
}

// List получает профессионалов; includeInactive добавляет уволенных
func (s *Service) List(ctx context.Context, includeInactive bool) (*models.ProfessionalListResponse, error) {
	s.logger.Info("List: fetching professionals, includeInactive=%t", includeInactive)

	professionals, err := s.professionalRepo.List(ctx, !includeInactive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d professionals", len(professionals))
	return models.FromDomainProfessionalList(professionals), nil
}

// Deactivate помечает профессионала неактивным
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Deactivate: deactivating professional id=%s", id)

	if err := s.professionalRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("Deactivate: professional id=%s not found", id)
			return ErrProfessionalNotFound
		}
		s.logger.Error("Deactivate: repository error for professional id=%s: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: successfully deactivated professional id=%s", id)
	return nil
}
