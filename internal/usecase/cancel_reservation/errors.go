package cancel_reservation

import "errors"

var (
	// ErrNoActiveReservation возвращается, когда у студента нет действующего бронирования
	ErrNoActiveReservation = errors.New("cancel_reservation: student has no active reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_reservation: internal error")
)
