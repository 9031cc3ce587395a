package update_client

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/clickcy/clickbarber/internal/api/handlers"
	"github.com/clickcy/clickbarber/internal/service/clients"
	"github.com/clickcy/clickbarber/internal/service/clients/models"
)

const (
	msgInvalidClientID    = "некорректный ID клиента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "клиент не найден"
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

// Handle PUT /api/v1/clients/{clientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clientID, err := uuid.Parse(vars["clientId"])
	if err != nil {
		h.logger.Warn("PUT /clients/{id} - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	var req models.UpdateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /clients/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	client, err := h.service.Update(r.Context(), clientID, &req)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Warn("PUT /clients/{id} - Client not found: id=%s", clientID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, clients.ErrDuplicatePhone):
			h.logger.Warn("PUT /clients/{id} - Duplicate phone: id=%s", clientID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicatePhone)

		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("PUT /clients/{id} - Invalid input: id=%s, error=%v", clientID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /clients/{id} - Failed to update client: id=%s, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /clients/{id} - Client updated: id=%s", clientID)
	handlers.RespondJSON(w, http.StatusOK, client)
}
