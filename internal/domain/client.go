package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a salon client record
type Client struct {
	ID            uuid.UUID
	Name          string
	Phone         *string
	Email         *string
	LastVisitDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ClientsFilter фильтр выборки клиентов
type ClientsFilter struct {
	Search *string // Поиск по имени/телефону (опционально)
	Limit  int     // 0 = без ограничения
}
