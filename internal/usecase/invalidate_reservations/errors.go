package invalidate_reservations

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("invalidate_reservations: internal error")
)
