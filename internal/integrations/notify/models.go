package notify

// AppointmentEvent уведомление о событии с записью клиента
type AppointmentEvent struct {
	AppointmentID  string   `json:"appointment_id"`
	ClientName     string   `json:"client_name"`
	ClientPhone    *string  `json:"client_phone,omitempty"`
	Professional   string   `json:"professional"`
	Date           string   `json:"date"`       // YYYY-MM-DD
	StartTime      string   `json:"start_time"` // HH:MM
	EndTime        string   `json:"end_time"`   // HH:MM
	ServiceNames   []string `json:"service_names,omitempty"`
	CancelReason   *string  `json:"cancel_reason,omitempty"`
}

// ErrorResponse модель ошибки от сервиса уведомлений
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
