package get_client

import (
	"context"

	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/internal/service/clients/models"
)

type ClientService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.ClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
