package create_product

import (
	"errors"
	"net/http"

	"github.com/clickcy/clickbarber/internal/api/handlers"
	"github.com/clickcy/clickbarber/internal/service/catalog"
	"github.com/clickcy/clickbarber/internal/service/catalog/models"
)

const msgInvalidRequestBody = "некорректное тело запроса"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/products
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /products - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /products - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /products - Failed to create product: name=%s, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /products - Product created: id=%s", product.ID)
	handlers.RespondJSON(w, http.StatusCreated, product)
}
