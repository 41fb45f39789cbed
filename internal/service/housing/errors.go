package housing

import "errors"

var (
	// ErrUniversiteNotFound возвращается, когда университет не найден
	ErrUniversiteNotFound = errors.New("housing: universite not found")

	// ErrFoyerNotFound возвращается, когда фойе не найдено
	ErrFoyerNotFound = errors.New("housing: foyer not found")

	// ErrBlocNotFound возвращается, когда блок не найден
	ErrBlocNotFound = errors.New("housing: bloc not found")

	// ErrChambreNotFound возвращается, когда комната с указанным номером не найдена
	ErrChambreNotFound = errors.New("housing: chambre not found")

	// ErrUniversiteHasFoyer возвращается, если у университета уже есть другое фойе
	ErrUniversiteHasFoyer = errors.New("housing: universite already has a foyer")

	// ErrNumeroTaken возвращается, если номер создаваемой комнаты уже занят
	ErrNumeroTaken = errors.New("housing: chambre numero already taken")

	// ErrInvalidRoomType возвращается для неизвестного типа комнаты
	ErrInvalidRoomType = errors.New("housing: invalid room type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("housing: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("housing: internal error")
)
