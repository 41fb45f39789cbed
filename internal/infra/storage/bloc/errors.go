package bloc

import "errors"

var (
	// ErrBlocNotFound возвращается, когда блок не найден
	ErrBlocNotFound = errors.New("bloc.repository: bloc not found")

	// ErrUnknownFoyer возвращается при ссылке на несуществующее фойе
	ErrUnknownFoyer = errors.New("bloc.repository: referenced foyer does not exist")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("bloc.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("bloc.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("bloc.repository: failed to scan row")
)
