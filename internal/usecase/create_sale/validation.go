package create_sale

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrInvalidInput)
	}

	if len(req.Items) > domain.MaxSaleItems {
		return fmt.Errorf("%w: too many items, maximum is %d", ErrInvalidInput, domain.MaxSaleItems)
	}

	for i, item := range req.Items {
		if item.ItemID == uuid.Nil {
			return fmt.Errorf("%w: item %d: itemID is required", ErrInvalidInput, i)
		}

		itemType := domain.ItemType(item.ItemType)
		if itemType != domain.ItemTypeService && itemType != domain.ItemTypeProduct {
			return fmt.Errorf("%w: item %d: itemType must be %q or %q", ErrInvalidInput, i, domain.ItemTypeService, domain.ItemTypeProduct)
		}

		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d: quantity must be positive", ErrInvalidInput, i)
		}

		// Услуга оказывается один раз за визит
		if itemType == domain.ItemTypeService && item.Quantity != 1 {
			return fmt.Errorf("%w: item %d: service quantity must be 1", ErrInvalidInput, i)
		}
	}

	if req.DiscountAmount < 0 {
		return fmt.Errorf("%w: discountAmount must not be negative", ErrInvalidInput)
	}

	if req.TipAmount < 0 {
		return fmt.Errorf("%w: tipAmount must not be negative", ErrInvalidInput)
	}

	if req.ClientID != nil && *req.ClientID == uuid.Nil {
		return fmt.Errorf("%w: clientID must not be empty", ErrInvalidInput)
	}

	if req.ProfessionalID != nil && *req.ProfessionalID == uuid.Nil {
		return fmt.Errorf("%w: professionalID must not be empty", ErrInvalidInput)
	}

	return nil
}

// serviceIDsOf собирает ID всех строк-услуг запроса
func serviceIDsOf(items []ItemRequest) []uuid.UUID {
	var ids []uuid.UUID
	for _, item := range items {
		if domain.ItemType(item.ItemType) == domain.ItemTypeService {
			ids = append(ids, item.ItemID)
		}
	}
	return ids
}
