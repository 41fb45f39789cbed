package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrReservationExists возвращается при повторном создании бронирования с тем же ID
	ErrReservationExists = errors.New("reservations: reservation already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reservations: invalid input data")

	// ErrInvalidPeriod возвращается, если начало периода позже конца
	ErrInvalidPeriod = errors.New("reservations: invalid period")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)
