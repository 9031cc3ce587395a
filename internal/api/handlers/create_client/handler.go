package create_client

import (
	"errors"
	"net/http"

	"github.com/clickcy/clickbarber/internal/api/handlers"
	"github.com/clickcy/clickbarber/internal/service/clients"
	"github.com/clickcy/clickbarber/internal/service/clients/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgDuplicatePhone     = "клиент с таким телефоном уже существует"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	client, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrDuplicatePhone):
			h.logger.Warn("POST /clients - Duplicate phone: name=%s", req.Name)
			handlers.RespondError(w, http.StatusConflict, msgDuplicatePhone)

		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("POST /clients - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /clients - Failed to create client: name=%s, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients - Client created: id=%s", client.ID)
	handlers.RespondJSON(w, http.StatusCreated, client)
}
