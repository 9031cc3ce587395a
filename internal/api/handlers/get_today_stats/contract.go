package get_today_stats

import (
	"context"

	"github.com/clickcy/clickbarber/internal/service/reports/models"
)

type ReportService interface {
	TodayStats(ctx context.Context) (*models.TodayStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
