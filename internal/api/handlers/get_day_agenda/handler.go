package get_day_agenda

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/internal/api/handlers"
	"github.com/clickcy/clickbarber/internal/domain"
	getDayAgenda "github.com/clickcy/clickbarber/internal/usecase/get_day_agenda"
)

const (
	msgMissingDate          = "дата обязательна"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidProfessional  = "некорректный ID профессионала"
	msgProfessionalNotFound = "профессионал не найден"
)

type Handler struct {
	useCase GetDayAgendaUseCase
	logger  Logger
}

func NewHandler(useCase GetDayAgendaUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/agenda
// Query params: date (required, YYYY-MM-DD), professionalId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /agenda - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /agenda - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getDayAgenda.Request{Date: date}

	if profStr := query.Get("professionalId"); profStr != "" {
		profID, err := uuid.Parse(profStr)
		if err != nil {
			h.logger.Warn("GET /agenda - Invalid professional ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProfessional)
			return
		}
		req.ProfessionalID = &profID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getDayAgenda.ErrProfessionalNotFound):
			h.logger.Warn("GET /agenda - Professional not found: professional=%s", query.Get("professionalId"))
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getDayAgenda.ErrInvalidInput):
			h.logger.Warn("GET /agenda - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /agenda - Failed to build agenda: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /agenda - Agenda built: date=%s, columns=%d", dateStr, len(result.Columns))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
