package itemrequest

import "errors"

var (
	// ErrRequestNotFound возвращается, когда запрос не найден
	ErrRequestNotFound = errors.New("itemrequest.repository: request not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("itemrequest.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("itemrequest.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("itemrequest.repository: failed to scan row")
)
