package get_available_times

import (
	"github.com/clickcy/clickbarber/internal/domain"
	getAvailableTimes "github.com/clickcy/clickbarber/internal/usecase/get_available_times"
)

// AvailableTimesResponse HTTP response model
type AvailableTimesResponse struct {
	ProfessionalID  string   `json:"professionalId"`
	Date            string   `json:"date"`
	DurationMinutes int      `json:"durationMinutes"`
	Times           []string `json:"times"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTimes.Response) *AvailableTimesResponse {
	times := make([]string, len(resp.Times))
	for i, t := range resp.Times {
		times[i] = t.String()
	}

	return &AvailableTimesResponse{
		ProfessionalID:  resp.ProfessionalID.String(),
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Times:           times,
	}
}
