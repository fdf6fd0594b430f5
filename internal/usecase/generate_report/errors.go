package generate_report

import "errors"

var (
	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("generate_report: hotel not found")

	// ErrAccessDenied возвращается, когда пользователь не является менеджером отеля
	ErrAccessDenied = errors.New("generate_report: access denied")

	// ErrUnknownKind возвращается для неподдерживаемого типа отчета
	ErrUnknownKind = errors.New("generate_report: unknown report kind")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("generate_report: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_report: internal error")
)
