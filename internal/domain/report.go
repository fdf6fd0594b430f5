package domain

import "github.com/m04kA/SMC-HotelReservations/pkg/types"

// ReportKind identifies one of the supported reports
type ReportKind string

const (
	ReportOccupancy ReportKind = "occupancy"
	ReportFinancial ReportKind = "financial"
	ReportNoShow    ReportKind = "no_show"
	ReportForecast  ReportKind = "forecast"
)

// IsValid returns true if the report kind is supported
func (k ReportKind) IsValid() bool {
	switch k {
	case ReportOccupancy, ReportFinancial, ReportNoShow, ReportForecast:
		return true
	}
	return false
}

// OccupancyDay is one row of the occupancy and forecast reports
type OccupancyDay struct {
	Date          types.Date
	RoomsSold     int
	RoomsTotal    int
	OccupancyRate float64 // 0-100
}

// FinancialDay is one row of the financial report
type FinancialDay struct {
	Date      types.Date
	Revenue   float64 // room revenue before discounts
	Discounts float64
	Net       float64
}

// NoShowEntry is one row of the no-show report
type NoShowEntry struct {
	ReservationID    int64
	ConfirmationCode string
	RoomNumber       string
	GuestUserID      int64
	CheckIn          types.Date
	CheckOut         types.Date
	LostRevenue      float64
}
