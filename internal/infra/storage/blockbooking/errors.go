package blockbooking

import "errors"

var (
	// ErrBlockBookingNotFound возвращается, когда групповая бронь не найдена
	ErrBlockBookingNotFound = errors.New("blockbooking.repository: block booking not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("blockbooking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("blockbooking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("blockbooking.repository: failed to scan row")
)
