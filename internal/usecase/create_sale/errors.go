package create_sale

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_sale: client not found")

	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("create_sale: professional not found")

	// ErrServiceNotFound возвращается, когда одна из услуг не найдена
	ErrServiceNotFound = errors.New("create_sale: service not found")

	// ErrProductNotFound возвращается, когда товар не найден
	ErrProductNotFound = errors.New("create_sale: product not found")

	// ErrInsufficientStock возвращается, когда товара не хватает на складе
	ErrInsufficientStock = errors.New("create_sale: insufficient stock")

	// ErrInvalidDiscount возвращается, когда скидка больше суммы чека
	ErrInvalidDiscount = errors.New("create_sale: discount exceeds subtotal")

	// ErrInsufficientPayment возвращается, когда внесённых денег меньше итога
	ErrInsufficientPayment = errors.New("create_sale: amount paid is less than the total")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_sale: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_sale: internal error")
)
