package universite

import "errors"

var (
	// ErrUniversiteNotFound возвращается, когда университет не найден
	ErrUniversiteNotFound = errors.New("universite.repository: universite not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("universite.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("universite.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("universite.repository: failed to scan row")
)
