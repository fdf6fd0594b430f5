package search_available_rooms

import "errors"

var (
	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("search_available_rooms: hotel not found")

	// ErrDateInPast возвращается, когда дата заезда в прошлом
	ErrDateInPast = errors.New("search_available_rooms: check-in date is in the past")

	// ErrStayTooLong возвращается, когда период превышает максимальную длительность проживания
	ErrStayTooLong = errors.New("search_available_rooms: stay is too long")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("search_available_rooms: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("search_available_rooms: internal error")
)
