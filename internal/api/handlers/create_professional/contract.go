package create_professional

import (
	"context"

	"github.com/clickcy/clickbarber/internal/service/professionals/models"
)

type ProfessionalService interface {
	Create(ctx context.Context, req *models.CreateProfessionalRequest) (*models.ProfessionalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
