package create_sale

import (
	"errors"
	"net/http"

	"github.com/clickcy/clickbarber/internal/api/handlers"
	createSale "github.com/clickcy/clickbarber/internal/usecase/create_sale"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidRequestData   = "некорректные данные запроса, ожидаются корректные UUID"
	msgClientNotFound       = "клиент не найден"
	msgProfessionalNotFound = "профессионал не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgProductNotFound      = "товар не найден"
	msgInsufficientStock    = "недостаточно товара на складе"
	msgInvalidDiscount      = "скидка превышает сумму чека"
	msgInsufficientPayment  = "внесённая сумма меньше итога"
)

type Handler struct {
	useCase CreateSaleUseCase
	logger  Logger
}

func NewHandler(useCase CreateSaleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sales
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSaleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sales - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /sales - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestData)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createSale.ErrClientNotFound):
			h.logger.Warn("POST /sales - Client not found")
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createSale.ErrProfessionalNotFound):
			h.logger.Warn("POST /sales - Professional not found")
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createSale.ErrServiceNotFound):
			h.logger.Warn("POST /sales - Service not found")
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createSale.ErrProductNotFound):
			h.logger.Warn("POST /sales - Product not found")
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, createSale.ErrInsufficientStock):
			h.logger.Warn("POST /sales - Insufficient stock")
			handlers.RespondError(w, http.StatusConflict, msgInsufficientStock)

		case errors.Is(err, createSale.ErrInvalidDiscount):
			h.logger.Warn("POST /sales - Discount exceeds subtotal")
			handlers.RespondBadRequest(w, msgInvalidDiscount)

		case errors.Is(err, createSale.ErrInsufficientPayment):
			h.logger.Warn("POST /sales - Insufficient payment")
			handlers.RespondBadRequest(w, msgInsufficientPayment)

		case errors.Is(err, createSale.ErrInvalidInput):
			h.logger.Warn("POST /sales - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /sales - Failed to create sale: items=%d, error=%v", len(req.Items), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /sales - Sale created: id=%s, total=%.2f", result.ID, result.TotalAmount)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
