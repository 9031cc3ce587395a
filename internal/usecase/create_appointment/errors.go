package create_appointment

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_appointment: client not found")

	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("create_appointment: professional not found")

	// ErrProfessionalInactive возвращается при попытке записи к неактивному профессионалу
	ErrProfessionalInactive = errors.New("create_appointment: professional is not active")

	// ErrServiceNotFound возвращается, когда одна из услуг не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInvalidDate возвращается при некорректной дате записи
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrOutsideBusinessHours возвращается, когда запись не помещается в рабочие часы
	ErrOutsideBusinessHours = errors.New("create_appointment: appointment is outside business hours")

	// ErrTimeConflict возвращается, когда интервал пересекается с существующей записью
	ErrTimeConflict = errors.New("create_appointment: time conflict with an existing appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
