package agenda

import "errors"

var (
	// ErrInvalidWindow возвращается при некорректной конфигурации рабочего окна
	ErrInvalidWindow = errors.New("agenda: invalid time window")

	// ErrOutsideWindow возвращается, когда вычисленное время выходит за рабочие часы
	ErrOutsideWindow = errors.New("agenda: time is outside the business hours window")
)
