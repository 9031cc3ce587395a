package get_day_agenda

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_day_agenda: invalid input data")

	// ErrProfessionalNotFound возвращается, когда запрошенный профессионал не найден
	ErrProfessionalNotFound = errors.New("get_day_agenda: professional not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_agenda: internal error")
)
