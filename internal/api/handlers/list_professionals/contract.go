package list_professionals

import (
	"context"

	"github.com/clickcy/clickbarber/internal/service/professionals/models"
)

type ProfessionalService interface {
	List(ctx context.Context, includeInactive bool) (*models.ProfessionalListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
