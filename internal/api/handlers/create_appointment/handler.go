package create_appointment

import (
	"errors"
	"net/http"

	"github.com/clickcy/clickbarber/internal/api/handlers"
	createAppointment "github.com/clickcy/clickbarber/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidRequestData   = "некорректные данные запроса, ожидаются UUID, дата YYYY-MM-DD и время HH:MM"
	msgClientNotFound       = "клиент не найден"
	msgProfessionalNotFound = "профессионал не найден"
	msgProfessionalInactive = "профессионал не работает"
	msgServiceNotFound      = "услуга не найдена"
	msgInvalidDate          = "некорректная дата записи"
	msgOutsideBusinessHours = "запись выходит за пределы рабочего дня"
	msgTimeConflict         = "время уже занято другой записью"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestData)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrTimeConflict):
			h.logger.Warn("POST /appointments - Time conflict: professional=%s, time=%s", req.ProfessionalID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgTimeConflict)

		case errors.Is(err, createAppointment.ErrClientNotFound):
			h.logger.Warn("POST /appointments - Client not found: client=%s", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createAppointment.ErrProfessionalNotFound):
			h.logger.Warn("POST /appointments - Professional not found: professional=%s", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createAppointment.ErrProfessionalInactive):
			h.logger.Warn("POST /appointments - Professional inactive: professional=%s", req.ProfessionalID)
			handlers.RespondBadRequest(w, msgProfessionalInactive)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: client=%s", req.ClientID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments - Outside business hours: time=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client=%s, professional=%s, error=%v",
				req.ClientID, req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created: id=%s, professional=%s, time=%s %s",
		result.ID, req.ProfessionalID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
