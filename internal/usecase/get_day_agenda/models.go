package get_day_agenda

import (
	"time"

	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/pkg/types"
)

// Request модель запроса агенды на день
type Request struct {
	Date           time.Time  // Дата (без времени)
	ProfessionalID *uuid.UUID // Фильтр по одному профессионалу (опционально)
}

// Response модель ответа с сеткой агенды
type Response struct {
	Date        time.Time
	DayStart    types.TimeString
	DayEnd      types.TimeString
	SlotMinutes int
	RowStarts   []types.TimeString // Первые минуты каждой ячейки, сверху вниз
	Columns     []Column           // По колонке на профессионала
}

// Column колонка сетки: один профессионал, его ячейки и блоки записей
type Column struct {
	ProfessionalID   uuid.UUID
	ProfessionalName string
	Slots            []Slot
	Blocks           []Block
}

// Slot классификация одной ячейки сетки
type Slot struct {
	RowStart        types.TimeString
	Kind            string // empty | fully_occupied | partially_occupied
	IsStartRow      bool
	OccupiedMinutes int
	FreeMinutes     int
	AppointmentID   *uuid.UUID
}

// Block геометрия и содержимое блока записи внутри колонки.
// Масштаб 1 пиксель = 1 минута.
type Block struct {
	AppointmentID    uuid.UUID
	ClientName       string
	ServiceNames     []string
	StartTime        types.TimeString
	EndTime          types.TimeString
	Status           string
	TotalPrice       float64
	TopOffsetMinutes int
	HeightMinutes    int
}
