package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/internal/domain"
	"github.com/clickcy/clickbarber/internal/service/catalog/models"
)

// Service сервис каталога услуг и товаров
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// GetCatalog получает полный каталог: услуги и товары
func (s *Service) GetCatalog(ctx context.Context) (*models.CatalogResponse, error) {
	s.logger.Info("GetCatalog: fetching services and products")

	services, err := s.catalogRepo.ListServices(ctx)
	if err != nil {
		s.logger.Error("GetCatalog: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: GetCatalog - repository error: %v", ErrInternal, err)
	}

	products, err := s.catalogRepo.ListProducts(ctx)
	if err != nil {
		s.logger.Error("GetCatalog: failed to list products: %v", err)
		return nil, fmt.Errorf("%w: GetCatalog - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCatalog: fetched %d services, %d products", len(services), len(products))
	return models.FromDomainCatalog(services, products), nil
}

// CreateService создает новую услугу
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: creating service name=%s", req.Name)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("CreateService: empty service name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if req.Price < 0 {
		s.logger.Warn("CreateService: negative price %.2f", req.Price)
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.DurationMinutes < domain.MinServiceDurationMinutes || req.DurationMinutes > domain.MaxServiceDurationMinutes {
		s.logger.Warn("CreateService: invalid duration %d", req.DurationMinutes)
		return nil, fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}

	service := &domain.Service{
		ID:              uuid.New(),
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	}

	created, err := s.catalogRepo.CreateService(ctx, service)
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: successfully created service id=%s", created.ID)
	return models.FromDomainService(created), nil
}

// CreateProduct создает новый товар
func (s *Service) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.ProductResponse, error) {
	s.logger.Info("CreateProduct: creating product name=%s", req.Name)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("CreateProduct: empty product name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if req.Price < 0 {
		s.logger.Warn("CreateProduct: negative price %.2f", req.Price)
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.StockQuantity < 0 {
		s.logger.Warn("CreateProduct: negative stock quantity %d", req.StockQuantity)
		return nil, fmt.Errorf("%w: stock quantity must not be negative", ErrInvalidInput)
	}

	product := &domain.Product{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	}

	created, err := s.catalogRepo.CreateProduct(ctx, product)
	if err != nil {
		s.logger.Error("CreateProduct: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateProduct - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateProduct: successfully created product id=%s", created.ID)
	return models.FromDomainProduct(created), nil
}
