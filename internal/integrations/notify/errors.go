package notify

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notify client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("notify client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Сервис уведомлений недоступен, запись при этом считается созданной.
	ErrServiceDegraded = errors.New("notify service unavailable: graceful degradation applied")
)
