package list_clients

import (
	"context"

	"github.com/clickcy/clickbarber/internal/service/clients/models"
)

type ClientService interface {
	List(ctx context.Context, req *models.ListClientsRequest) (*models.ClientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
