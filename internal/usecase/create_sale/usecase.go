package create_sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/internal/domain"
	catalogRepo "github.com/clickcy/clickbarber/internal/infra/storage/catalog"
	clientRepo "github.com/clickcy/clickbarber/internal/infra/storage/client"
	professionalRepo "github.com/clickcy/clickbarber/internal/infra/storage/professional"
)

// UseCase use case для оформления продажи на кассе
type UseCase struct {
	saleRepo         SaleRepository
	catalogRepo      CatalogRepository
	clientRepo       ClientRepository
	professionalRepo ProfessionalRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	saleRepo SaleRepository,
	catalogRepo CatalogRepository,
	clientRepo ClientRepository,
	professionalRepo ProfessionalRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		saleRepo:         saleRepo,
		catalogRepo:      catalogRepo,
		clientRepo:       clientRepo,
		professionalRepo: professionalRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case оформления продажи.
// Списание остатков, чек и комиссия фиксируются в одной транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSale: items=%d, discount=%.2f, tip=%.2f", len(req.Items), req.DiscountAmount, req.TipAmount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSale: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем клиента, если он указан
	if req.ClientID != nil {
		if _, err := uc.clientRepo.GetByID(ctx, *req.ClientID); err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				uc.logger.Warn("CreateSale: client id=%s not found", *req.ClientID)
				return nil, ErrClientNotFound
			}
			uc.logger.Error("CreateSale: failed to get client id=%s: %v", *req.ClientID, err)
			return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}
	}

	// 3. Проверяем профессионала, если он указан - его ставка нужна для комиссии
	var prof *domain.Professional
	if req.ProfessionalID != nil {
		var err error
		prof, err = uc.professionalRepo.GetByID(ctx, *req.ProfessionalID)
		if err != nil {
			if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
				uc.logger.Warn("CreateSale: professional id=%s not found", *req.ProfessionalID)
				return nil, ErrProfessionalNotFound
			}
			uc.logger.Error("CreateSale: failed to get professional id=%s: %v", *req.ProfessionalID, err)
			return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
		}
	}

	// 4. Разрешаем строки чека: цены и названия фиксируются на момент продажи
	items, err := uc.resolveItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	// 5. Считаем итоги чека
	sale := &domain.Sale{
		ID:             uuid.New(),
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		AppointmentID:  req.AppointmentID,
		Items:          items,
		PaymentMethod:  req.PaymentMethod,
		Status:         domain.SaleStatusPaid,
		DiscountAmount: req.DiscountAmount,
		TipAmount:      req.TipAmount,
	}
	sale.Subtotal = sale.ComputeSubtotal()

	if sale.DiscountAmount > sale.Subtotal {
		uc.logger.Warn("CreateSale: discount %.2f exceeds subtotal %.2f", sale.DiscountAmount, sale.Subtotal)
		return nil, ErrInvalidDiscount
	}

	sale.TotalAmount = sale.ComputeTotal()

	if req.AmountPaid != nil && *req.AmountPaid < sale.TotalAmount {
		uc.logger.Warn("CreateSale: amount paid %.2f is less than total %.2f", *req.AmountPaid, sale.TotalAmount)
		return nil, ErrInsufficientPayment
	}

	// Комиссия считается от суммы чека без чаевых
	var commissionAmount *float64
	if prof != nil {
		amount := prof.CommissionFor(sale.Subtotal - sale.DiscountAmount)
		commissionAmount = &amount
	}

	// 6. Фиксируем продажу: чек, остатки, комиссия и визит клиента - атомарно
	var created *domain.Sale
	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = uc.saleRepo.Create(ctx, sale)
		if txErr != nil {
			return fmt.Errorf("failed to create sale: %w", txErr)
		}

		for _, item := range items {
			if item.ItemType != domain.ItemTypeProduct {
				continue
			}
			if txErr = uc.catalogRepo.DecrementStock(ctx, item.ItemID, item.Quantity); txErr != nil {
				return fmt.Errorf("failed to decrement stock for product %s: %w", item.ItemID, txErr)
			}
		}

		if prof != nil {
			commission := &domain.Commission{
				ID:             uuid.New(),
				SaleID:         created.ID,
				ProfessionalID: prof.ID,
				Amount:         *commissionAmount,
			}
			if txErr = uc.saleRepo.CreateCommission(ctx, commission); txErr != nil {
				return fmt.Errorf("failed to create commission: %w", txErr)
			}
		}

		if req.ClientID != nil {
			if txErr = uc.clientRepo.StampLastVisit(ctx, *req.ClientID, uc.timeProvider.Now()); txErr != nil {
				return fmt.Errorf("failed to stamp last visit: %w", txErr)
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, catalogRepo.ErrInsufficientStock) {
			uc.logger.Warn("CreateSale: insufficient stock: %v", err)
			return nil, ErrInsufficientStock
		}
		uc.logger.Error("CreateSale: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateSale: sale id=%s created, total=%.2f", created.ID, created.TotalAmount)

	return buildResponse(created, req.AmountPaid, commissionAmount), nil
}

// resolveItems превращает строки запроса в строки чека с ценами каталога
func (uc *UseCase) resolveItems(ctx context.Context, reqItems []ItemRequest) ([]domain.SaleItem, error) {
	// Услуги выбираем одним запросом
	serviceIDs := serviceIDsOf(reqItems)
	servicesByID := make(map[uuid.UUID]*domain.Service, len(serviceIDs))
	if len(serviceIDs) > 0 {
		services, err := uc.catalogRepo.GetServicesByIDs(ctx, serviceIDs)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("CreateSale: failed to get services: %v", err)
			return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
		}
		for _, svc := range services {
			servicesByID[svc.ID] = svc
		}
	}

	items := make([]domain.SaleItem, 0, len(reqItems))
	for _, reqItem := range reqItems {
		switch domain.ItemType(reqItem.ItemType) {
		case domain.ItemTypeService:
			svc, ok := servicesByID[reqItem.ItemID]
			if !ok {
				uc.logger.Warn("CreateSale: service id=%s not found", reqItem.ItemID)
				return nil, ErrServiceNotFound
			}
			items = append(items, domain.SaleItem{
				ID:          uuid.New(),
				ItemID:      svc.ID,
				ItemType:    domain.ItemTypeService,
				ItemName:    svc.Name,
				PriceAtSale: svc.Price,
				Quantity:    1,
			})

		case domain.ItemTypeProduct:
			product, err := uc.catalogRepo.GetProductByID(ctx, reqItem.ItemID)
			if err != nil {
				if errors.Is(err, catalogRepo.ErrProductNotFound) {
					uc.logger.Warn("CreateSale: product id=%s not found", reqItem.ItemID)
					return nil, ErrProductNotFound
				}
				uc.logger.Error("CreateSale: failed to get product id=%s: %v", reqItem.ItemID, err)
				return nil, fmt.Errorf("%w: failed to get product: %v", ErrInternal, err)
			}

			// Ранняя проверка остатков; окончательная гарантия - условный UPDATE в транзакции
			if !product.InStock(reqItem.Quantity) {
				uc.logger.Warn("CreateSale: product id=%s has %d in stock, requested %d", product.ID, product.StockQuantity, reqItem.Quantity)
				return nil, ErrInsufficientStock
			}

			items = append(items, domain.SaleItem{
				ID:          uuid.New(),
				ItemID:      product.ID,
				ItemType:    domain.ItemTypeProduct,
				ItemName:    product.Name,
				PriceAtSale: product.Price,
				Quantity:    reqItem.Quantity,
			})
		}
	}

	return items, nil
}

// buildResponse собирает модель ответа из сохранённой продажи
func buildResponse(sale *domain.Sale, amountPaid, commissionAmount *float64) *Response {
	items := make([]ItemResponse, len(sale.Items))
	for i, item := range sale.Items {
		items[i] = ItemResponse{
			ItemID:      item.ItemID,
			ItemType:    string(item.ItemType),
			ItemName:    item.ItemName,
			PriceAtSale: item.PriceAtSale,
			Quantity:    item.Quantity,
			LineTotal:   item.LineTotal(),
		}
	}

	resp := &Response{
		ID:               sale.ID,
		ClientID:         sale.ClientID,
		ProfessionalID:   sale.ProfessionalID,
		AppointmentID:    sale.AppointmentID,
		Items:            items,
		PaymentMethod:    sale.PaymentMethod,
		Status:           string(sale.Status),
		Subtotal:         sale.Subtotal,
		DiscountAmount:   sale.DiscountAmount,
		TipAmount:        sale.TipAmount,
		TotalAmount:      sale.TotalAmount,
		CommissionAmount: commissionAmount,
		CreatedAt:        sale.CreatedAt,
	}

	if amountPaid != nil {
		change := sale.ChangeFor(*amountPaid)
		resp.ChangeDue = &change
	}

	return resp
}
