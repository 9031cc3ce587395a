package deactivate_professional

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/clickcy/clickbarber/internal/api/handlers"
	"github.com/clickcy/clickbarber/internal/service/professionals"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgNotFound              = "профессионал не найден"
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

// Handle POST /api/v1/professionals/{professionalId}/deactivate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professionalID, err := uuid.Parse(vars["professionalId"])
	if err != nil {
		h.logger.Warn("POST /professionals/{id}/deactivate - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	if err := h.service.Deactivate(r.Context(), professionalID); err != nil {
		switch {
		case errors.Is(err, professionals.ErrProfessionalNotFound):
			h.logger.Warn("POST /professionals/{id}/deactivate - Professional not found: id=%s", professionalID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /professionals/{id}/deactivate - Failed: id=%s, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /professionals/{id}/deactivate - Professional deactivated: id=%s", professionalID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
