package rooms

import "errors"

var (
	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("hotel not found")

	// ErrRoomNotFound возвращается, когда номер не найден в отеле
	ErrRoomNotFound = errors.New("room not found")

	// ErrDuplicateRoomNumber возвращается, когда номер с таким обозначением уже есть в отеле
	ErrDuplicateRoomNumber = errors.New("room number already exists in this hotel")

	// ErrAccessDenied возвращается, когда пользователь не является менеджером отеля
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
