package get_today_stats

import (
	"net/http"

	"github.com/clickcy/clickbarber/internal/api/handlers"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stats/today
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.TodayStats(r.Context())
	if err != nil {
		h.logger.Error("GET /stats/today - Failed to build stats: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /stats/today - Stats built: appointments=%d, revenue=%.2f",
		stats.Appointments, stats.Revenue)
	handlers.RespondJSON(w, http.StatusOK, stats)
}
