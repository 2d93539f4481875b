package tier

import "errors"

var (
	// ErrTierNotFound возвращается, когда ценовой уровень не найден
	ErrTierNotFound = errors.New("tier.repository: tier not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tier.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tier.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tier.repository: failed to scan row")
)
