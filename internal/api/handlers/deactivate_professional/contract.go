package deactivate_professional

import (
	"context"

	"github.com/google/uuid"
)

type ProfessionalService interface {
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
