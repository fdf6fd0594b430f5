package create_block_booking

import "errors"

var (
	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("create_block_booking: hotel not found")

	// ErrRoomNotFound возвращается, когда хотя бы один номер не найден в отеле
	ErrRoomNotFound = errors.New("create_block_booking: room not found")

	// ErrRoomUnderMaintenance возвращается, когда номер выведен на обслуживание
	ErrRoomUnderMaintenance = errors.New("create_block_booking: room is under maintenance")

	// ErrCapacityExceeded возвращается, когда гостей на номер больше, чем он вмещает
	ErrCapacityExceeded = errors.New("create_block_booking: room capacity exceeded")

	// ErrRoomNotAvailable возвращается, когда хотя бы один номер занят на период
	ErrRoomNotAvailable = errors.New("create_block_booking: rooms are not available for these dates")

	// ErrDateInPast возвращается, когда дата заезда в прошлом
	ErrDateInPast = errors.New("create_block_booking: check-in date is in the past")

	// ErrStayTooLong возвращается, когда период превышает максимальную длительность проживания
	ErrStayTooLong = errors.New("create_block_booking: stay is too long")

	// ErrTooManyRooms возвращается, когда в запросе больше номеров, чем разрешено
	ErrTooManyRooms = errors.New("create_block_booking: too many rooms")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_block_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_block_booking: internal error")
)
