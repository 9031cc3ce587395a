package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/internal/domain"
	clientRepo "github.com/clickcy/clickbarber/internal/infra/storage/client"
	"github.com/clickcy/clickbarber/internal/service/clients/models"
)

// Service сервис для работы с клиентами
type Service struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Create создает нового клиента
func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("Create: creating client name=%s", req.Name)

	if err := validateClientFields(req.Name, req.Phone, req.Email); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	client := &domain.Client{
		ID:    uuid.New(),
		Name:  strings.TrimSpace(req.Name),
		Phone: req.Phone,
		Email: req.Email,
	}

	created, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		if errors.Is(err, clientRepo.ErrDuplicatePhone) {
			s.logger.Warn("Create: phone already registered for client name=%s", req.Name)
			return nil, ErrDuplicatePhone
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created client id=%s", created.ID)
	return models.FromDomainClient(created), nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ClientResponse, error) {
	s.logger.Info("GetByID: fetching client id=%s", id)

	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetByID: client id=%s not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClient(client), nil
}

// List получает клиентов с опциональным поиском по имени или телефону
func (s *Service) List(ctx context.Context, req *models.ListClientsRequest) (*models.ClientListResponse, error) {
	if req.Search != nil {
		s.logger.Info("List: fetching clients, search=%s", *req.Search)
	} else {
		s.logger.Info("List: fetching all clients")
	}

	clients, err := s.clientRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d clients", len(clients))
	return models.FromDomainClientList(clients), nil
}

// Update обновляет данные клиента
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("Update: updating client id=%s", id)

	if err := validateClientFields(req.Name, req.Phone, req.Email); err != nil {
		s.logger.Warn("Update: validation failed for client id=%s: %v", id, err)
		return nil, err
	}

	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Update: client id=%s not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("Update: repository error for client id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	client.Name = strings.TrimSpace(req.Name)
	client.Phone = req.Phone
	client.Email = req.Email

	if err := s.clientRepo.Update(ctx, client); err != nil {
		if errors.Is(err, clientRepo.ErrDuplicatePhone) {
			s.logger.Warn("Update: phone already registered, client id=%s", id)
			return nil, ErrDuplicatePhone
		}
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		s.logger.Error("Update: repository error for client id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated client id=%s", id)
	return models.FromDomainClient(client), nil
}

// validateClientFields проверяет общие поля создания и обновления клиента
func validateClientFields(name string, phone, email *string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if phone != nil && strings.TrimSpace(*phone) == "" {
		return fmt.Errorf("%w: phone must not be blank", ErrInvalidInput)
	}

	if email != nil && !strings.Contains(*email, "@") {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}

	return nil
}
