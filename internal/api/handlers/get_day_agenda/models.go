package get_day_agenda

import (
	"github.com/google/uuid"

	"github.com/clickcy/clickbarber/internal/domain"
	getDayAgenda "github.com/clickcy/clickbarber/internal/usecase/get_day_agenda"
)

// DayAgendaResponse HTTP response model: сетка дня со всеми колонками
type DayAgendaResponse struct {
	Date        string           `json:"date"`
	DayStart    string           `json:"dayStart"`
	DayEnd      string           `json:"dayEnd"`
	SlotMinutes int              `json:"slotMinutes"`
	RowStarts   []string         `json:"rowStarts"`
	Columns     []ColumnResponse `json:"columns"`
}

// ColumnResponse колонка сетки - один профессионал
type ColumnResponse struct {
	ProfessionalID   string          `json:"professionalId"`
	ProfessionalName string          `json:"professionalName"`
	Slots            []SlotResponse  `json:"slots"`
	Blocks           []BlockResponse `json:"blocks"`
}

// SlotResponse состояние одной ячейки колонки
type SlotResponse struct {
	RowStart        string  `json:"rowStart"`
	Kind            string  `json:"kind"`
	IsStartRow      bool    `json:"isStartRow"`
	OccupiedMinutes int     `json:"occupiedMinutes"`
	FreeMinutes     int     `json:"freeMinutes"`
	AppointmentID   *string `json:"appointmentId,omitempty"`
}

// BlockResponse визуальный блок записи с геометрией для рендера
type BlockResponse struct {
	AppointmentID    string   `json:"appointmentId"`
	ClientName       string   `json:"clientName"`
	ServiceNames     []string `json:"serviceNames"`
	StartTime        string   `json:"startTime"`
	EndTime          string   `json:"endTime"`
	Status           string   `json:"status"`
	TotalPrice       float64  `json:"totalPrice"`
	TopOffsetMinutes int      `json:"topOffsetMinutes"`
	HeightMinutes    int      `json:"heightMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayAgenda.Response) *DayAgendaResponse {
	rowStarts := make([]string, len(resp.RowStarts))
	for i, row := range resp.RowStarts {
		rowStarts[i] = row.String()
	}

	columns := make([]ColumnResponse, len(resp.Columns))
	for i, col := range resp.Columns {
		columns[i] = fromUseCaseColumn(col)
	}

	return &DayAgendaResponse{
		Date:        resp.Date.Format(domain.DateFormat),
		DayStart:    resp.DayStart.String(),
		DayEnd:      resp.DayEnd.String(),
		SlotMinutes: resp.SlotMinutes,
		RowStarts:   rowStarts,
		Columns:     columns,
	}
}

func fromUseCaseColumn(col getDayAgenda.Column) ColumnResponse {
	slots := make([]SlotResponse, len(col.Slots))
	for i, slot := range col.Slots {
		slots[i] = SlotResponse{
			RowStart:        slot.RowStart.String(),
			Kind:            slot.Kind,
			IsStartRow:      slot.IsStartRow,
			OccupiedMinutes: slot.OccupiedMinutes,
			FreeMinutes:     slot.FreeMinutes,
			AppointmentID:   uuidToString(slot.AppointmentID),
		}
	}

	blocks := make([]BlockResponse, len(col.Blocks))
	for i, block := range col.Blocks {
		blocks[i] = BlockResponse{
			AppointmentID:    block.AppointmentID.String(),
			ClientName:       block.ClientName,
			ServiceNames:     block.ServiceNames,
			StartTime:        block.StartTime.String(),
			EndTime:          block.EndTime.String(),
			Status:           block.Status,
			TotalPrice:       block.TotalPrice,
			TopOffsetMinutes: block.TopOffsetMinutes,
			HeightMinutes:    block.HeightMinutes,
		}
	}

	return ColumnResponse{
		ProfessionalID:   col.ProfessionalID.String(),
		ProfessionalName: col.ProfessionalName,
		Slots:            slots,
		Blocks:           blocks,
	}
}

func uuidToString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
