package chambre

import "errors"

var (
	// ErrChambreNotFound возвращается, когда комната не найдена
	ErrChambreNotFound = errors.New("chambre.repository: chambre not found")

	// ErrNumeroTaken возвращается, когда номер комнаты уже занят другой комнатой
	ErrNumeroTaken = errors.New("chambre.repository: chambre numero already taken")

	// ErrReservationAlreadyLinked возвращается, если бронирование уже привязано к другой комнате
	ErrReservationAlreadyLinked = errors.New("chambre.repository: reservation already linked to another chambre")

	// ErrUnknownReference возвращается, если блок или бронирование, на которые ссылается комната, не существуют
	ErrUnknownReference = errors.New("chambre.repository: referenced bloc or reservation does not exist")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("chambre.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("chambre.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("chambre.repository: failed to scan row")
)
