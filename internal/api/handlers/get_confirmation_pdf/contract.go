package get_confirmation_pdf

import "context"

type ReservationService interface {
	GetConfirmationPDF(ctx context.Context, reservationID int64, userID int64) ([]byte, string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
