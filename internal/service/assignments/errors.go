package assignments

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("assignments: reservation not found")

	// ErrChambreNotFound возвращается, когда комната не найдена
	ErrChambreNotFound = errors.New("assignments: chambre not found")

	// ErrReservationLinkedElsewhere возвращается, если бронирование уже привязано к другой комнате
	ErrReservationLinkedElsewhere = errors.New("assignments: reservation is linked to another chambre")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("assignments: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("assignments: internal error")
)
