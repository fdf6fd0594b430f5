package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrRoomNotAvailable возвращается, когда БД отклонила пересекающееся бронирование (exclusion constraint)
	ErrRoomNotAvailable = errors.New("reservation.repository: room is already reserved for these dates")

	// ErrStatusConflict возвращается, когда статус бронирования изменился параллельно
	ErrStatusConflict = errors.New("reservation.repository: reservation status changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
