package chambres

import "errors"

var (
	// ErrChambreNotFound возвращается, когда комната не найдена
	ErrChambreNotFound = errors.New("chambres: chambre not found")

	// ErrNumeroTaken возвращается, если номер комнаты уже занят
	ErrNumeroTaken = errors.New("chambres: chambre numero already taken")

	// ErrUnknownBloc возвращается, если указанный блок не существует
	ErrUnknownBloc = errors.New("chambres: bloc does not exist")

	// ErrInvalidRoomType возвращается для неизвестного типа комнаты
	ErrInvalidRoomType = errors.New("chambres: invalid room type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("chambres: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("chambres: internal error")
)
