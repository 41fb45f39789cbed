package etudiant

import "errors"

var (
	// ErrEtudiantNotFound возвращается, когда студент не найден
	ErrEtudiantNotFound = errors.New("etudiant.repository: etudiant not found")

	// ErrCinTaken возвращается, когда CIN уже принадлежит другому студенту
	ErrCinTaken = errors.New("etudiant.repository: cin already taken")

	// ErrUnknownReservation возвращается при привязке несуществующего бронирования
	ErrUnknownReservation = errors.New("etudiant.repository: referenced reservation does not exist")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("etudiant.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("etudiant.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("etudiant.repository: failed to scan row")
)
