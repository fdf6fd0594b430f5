package create_reservation

import "errors"

var (
	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("create_reservation: hotel not found")

	// ErrRoomNotFound возвращается, когда номер не найден в отеле
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrRoomUnderMaintenance возвращается, когда номер выведен на обслуживание
	ErrRoomUnderMaintenance = errors.New("create_reservation: room is under maintenance")

	// ErrCapacityExceeded возвращается, когда гостей больше, чем вмещает номер
	ErrCapacityExceeded = errors.New("create_reservation: room capacity exceeded")

	// ErrDateInPast возвращается, когда дата заезда в прошлом
	ErrDateInPast = errors.New("create_reservation: check-in date is in the past")

	// ErrStayTooLong возвращается, когда период превышает максимальную длительность проживания
	ErrStayTooLong = errors.New("create_reservation: stay is too long")

	// ErrRoomNotAvailable возвращается, когда номер уже забронирован на пересекающийся период
	ErrRoomNotAvailable = errors.New("create_reservation: room is not available for these dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
