package list_professionals

import (
	"net/http"

	"github.com/clickcy/clickbarber/internal/api/handlers"
)

type Handler struct {
	service ProfessionalService
	logger  Logger
}

func NewHandler(service ProfessionalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals
// Query params: includeInactive (optional, true/false)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	result, err := h.service.List(r.Context(), includeInactive)
	if err != nil {
		h.logger.Error("GET /professionals - Failed to list professionals: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /professionals - Found %d professionals", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
