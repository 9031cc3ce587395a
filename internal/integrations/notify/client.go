package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент сервиса уведомлений (SMS/мессенджер напоминания клиентам)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// AppointmentCreated отправляет уведомление о новой записи
func (c *Client) AppointmentCreated(ctx context.Context, event AppointmentEvent) error {
	return c.post(ctx, "/internal/notifications/appointment-created", event)
}

// AppointmentCancelled отправляет уведомление об отмене записи
func (c *Client) AppointmentCancelled(ctx context.Context, event AppointmentEvent) error {
	return c.post(ctx, "/internal/notifications/appointment-cancelled", event)
}

// AppointmentCreatedWithGracefulDegradation отправляет уведомление о новой записи
// с graceful degradation: недоступность сервиса уведомлений не должна ломать
// создание записи, поэтому любая ошибка сворачивается в ErrServiceDegraded
func (c *Client) AppointmentCreatedWithGracefulDegradation(ctx context.Context, event AppointmentEvent) error {
	c.log.Info("Sending appointment-created notification for appointment_id=%s", event.AppointmentID)

	if err := c.AppointmentCreated(ctx, event); err != nil {
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("Notify service unavailable, applying graceful degradation for appointment_id=%s: %v",
			event.AppointmentID, err)
		return fmt.Errorf("%w: appointment_id=%s, error=%v", ErrServiceDegraded, event.AppointmentID, err)
	}

	c.log.Info("Successfully sent appointment-created notification for appointment_id=%s", event.AppointmentID)
	return nil
}

func (c *Client) post(ctx context.Context, path string, event AppointmentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}
