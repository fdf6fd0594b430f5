package hotels

import "errors"

var (
	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("hotel not found")

	// ErrAccessDenied возвращается, когда пользователь не является менеджером отеля
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
