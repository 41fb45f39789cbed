package foyer

import "errors"

var (
	// ErrFoyerNotFound возвращается, когда фойе не найдено
	ErrFoyerNotFound = errors.New("foyer.repository: foyer not found")

	// ErrUniversiteHasFoyer возвращается, если у университета уже есть фойе
	ErrUniversiteHasFoyer = errors.New("foyer.repository: universite already has a foyer")

	// ErrUnknownUniversite возвращается при ссылке на несуществующий университет
	ErrUnknownUniversite = errors.New("foyer.repository: referenced universite does not exist")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("foyer.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("foyer.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("foyer.repository: failed to scan row")
)
