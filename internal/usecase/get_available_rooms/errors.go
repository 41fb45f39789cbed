package get_available_rooms

import "errors"

var (
	// ErrInvalidRoomType возвращается для типа комнаты вне SIMPLE/DOUBLE/TRIPLE
	ErrInvalidRoomType = errors.New("get_available_rooms: invalid room type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_rooms: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_rooms: internal error")
)
