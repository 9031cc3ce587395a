package get_available_times

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("get_available_times: professional not found")

	// ErrProfessionalInactive возвращается для неактивного профессионала
	ErrProfessionalInactive = errors.New("get_available_times: professional is not active")

	// ErrServiceNotFound возвращается, когда одна из услуг не найдена
	ErrServiceNotFound = errors.New("get_available_times: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_times: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_times: internal error")
)
