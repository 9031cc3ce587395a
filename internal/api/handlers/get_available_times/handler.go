package get_available_times

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/clickcy/clickbarber/internal/api/handlers"
	"github.com/clickcy/clickbarber/internal/domain"
	getAvailableTimes "github.com/clickcy/clickbarber/internal/usecase/get_available_times"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration       = "некорректная длительность"
	msgInvalidServiceID      = "некорректный ID услуги"
	msgServiceNotFound       = "услуга не найдена"
	msgProfessionalNotFound  = "профессионал не найден"
	msgProfessionalInactive  = "профессионал не работает"
)

type Handler struct {
	useCase GetAvailableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/available-times
// Query params: date (required, YYYY-MM-DD), serviceId (repeatable, optional),
// durationMinutes (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professionalID, err := uuid.Parse(vars["professionalId"])
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/available-times - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /professionals/{id}/available-times - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/available-times - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var serviceIDs []uuid.UUID
	for _, raw := range query["serviceId"] {
		serviceID, err := uuid.Parse(raw)
		if err != nil {
			h.logger.Warn("GET /professionals/{id}/available-times - Invalid service ID: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		serviceIDs = append(serviceIDs, serviceID)
	}

	var durationMinutes int
	if durationStr := query.Get("durationMinutes"); durationStr != "" {
		durationMinutes, err = strconv.Atoi(durationStr)
		if err != nil || durationMinutes < 0 {
			h.logger.Warn("GET /professionals/{id}/available-times - Invalid duration: %s", durationStr)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableTimes.Request{
		ProfessionalID:  professionalID,
		Date:            date,
		ServiceIDs:      serviceIDs,
		DurationMinutes: durationMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTimes.ErrProfessionalNotFound):
			h.logger.Warn("GET /professionals/{id}/available-times - Professional not found: id=%s", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getAvailableTimes.ErrProfessionalInactive):
			h.logger.Warn("GET /professionals/{id}/available-times - Professional inactive: id=%s", professionalID)
			handlers.RespondBadRequest(w, msgProfessionalInactive)

		case errors.Is(err, getAvailableTimes.ErrServiceNotFound):
			h.logger.Warn("GET /professionals/{id}/available-times - Service not found")
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableTimes.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/available-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /professionals/{id}/available-times - Failed: id=%s, date=%s, error=%v",
				professionalID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/available-times - Found %d times: id=%s, date=%s",
		len(result.Times), professionalID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
