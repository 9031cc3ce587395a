package create_professional

import (
	"errors"
	"net/http"

	"github.com/clickcy/clickbarber/internal/api/handlers"
	"github.com/clickcy/clickbarber/internal/service/professionals"
	"github.com/clickcy/clickbarber/internal/service/professionals/models"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// Handle POST /api/v1/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /professionals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	professional, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, professionals.ErrInvalidInput):
			h.logger.Warn("POST /professionals - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /professionals - Failed to create professional: name=%s, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /professionals - Professional created: id=%s", professional.ID)
	handlers.RespondJSON(w, http.StatusCreated, professional)
}
