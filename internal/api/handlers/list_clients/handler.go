package list_clients

import (
	"net/http"
	"strconv"

	"github.com/clickcy/clickbarber/internal/api/handlers"
	"github.com/clickcy/clickbarber/internal/service/clients/models"
)

const msgInvalidLimit = "некорректный limit"

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

// Handle GET /api/v1/clients
// Query params: search (optional), limit (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListClientsRequest{}

	if search := query.Get("search"); search != "" {
		req.Search = &search
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			h.logger.Warn("GET /clients - Invalid limit: %s", limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		req.Limit = limit
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /clients - Failed to list clients: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients - Found %d clients", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
