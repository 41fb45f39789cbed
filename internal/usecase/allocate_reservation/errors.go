package allocate_reservation

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната с указанным номером не найдена
	ErrRoomNotFound = errors.New("allocate_reservation: room not found")

	// ErrStudentNotFound возвращается, когда студент с указанным CIN не найден
	ErrStudentNotFound = errors.New("allocate_reservation: student not found")

	// ErrRoomFull возвращается, когда в комнате нет свободных мест в текущем учебном году
	ErrRoomFull = errors.New("allocate_reservation: room is full")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("allocate_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("allocate_reservation: internal error")
)
