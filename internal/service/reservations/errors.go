package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("hotel not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("invalid reservation status transition")

	// ErrTooEarly возвращается при заезде или no-show раньше даты заезда
	ErrTooEarly = errors.New("status change is not allowed before the check-in date")

	// ErrStatusConflict возвращается, когда статус бронирования изменился параллельно
	ErrStatusConflict = errors.New("reservation status changed concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
