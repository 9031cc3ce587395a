package create_product

import (
	"context"

	"github.com/clickcy/clickbarber/internal/service/catalog/models"
)

type CatalogService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.ProductResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
