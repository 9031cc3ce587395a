package update_client

import (
	"context"

	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/internal/service/clients/models"
)

type ClientService interface {
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateClientRequest) (*models.ClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
