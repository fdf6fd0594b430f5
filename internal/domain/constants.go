package domain

// Default block booking configuration values
const (
	DefaultBlockMinimumRooms       = 5
	DefaultBlockDiscountPercentage = 15.0
	DefaultForecastDays            = 30
)

// Business validation constants
const (
	MaxStayNights               = 30
	MaxBlockRooms               = 50
	MaxGuestsPerRoom            = 10
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxReportDays               = 366
	MaxForecastDays             = 365
	MinHotelStars               = 1
	MaxHotelStars               = 5
)

// BlockingStatuses статусы бронирований, которые занимают номер.
// Используется при выборке бронирований для проверки доступности.
var BlockingStatuses = []ReservationStatus{
	StatusReserved,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusNoShow,
}

// AllReservationStatuses полный список статусов бронирования
var AllReservationStatuses = []ReservationStatus{
	StatusReserved,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusCancelled,
	StatusNoShow,
}
