package generate_report

import (
	"strconv"

	generateReport "github.com/m04kA/SMC-HotelReservations/internal/usecase/generate_report"
	"github.com/m04kA/SMC-HotelReservations/pkg/types"
)

// ReportResponse HTTP response model
type ReportResponse struct {
	Kind      string          `json:"kind"`
	HotelID   int64           `json:"hotelId"`
	HotelName string          `json:"hotelName"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Occupancy []OccupancyDay  `json:"occupancy,omitempty"`
	Financial []FinancialDay  `json:"financial,omitempty"`
	NoShows   []NoShowEntry   `json:"noShows,omitempty"`
	Summary   SummaryResponse `json:"summary"`
}

// OccupancyDay строка отчета по загрузке
type OccupancyDay struct {
	Date          string  `json:"date"`
	RoomsSold     int     `json:"roomsSold"`
	RoomsTotal    int     `json:"roomsTotal"`
	OccupancyRate float64 `json:"occupancyRate"`
}

// FinancialDay строка финансового отчета
type FinancialDay struct {
	Date      string  `json:"date"`
	Revenue   float64 `json:"revenue"`
	Discounts float64 `json:"discounts"`
	Net       float64 `json:"net"`
}

// NoShowEntry строка отчета по неявкам
type NoShowEntry struct {
	ReservationID    int64   `json:"reservationId"`
	ConfirmationCode string  `json:"confirmationCode"`
	RoomNumber       string  `json:"roomNumber"`
	GuestUserID      int64   `json:"guestUserId"`
	CheckIn          string  `json:"checkIn"`
	CheckOut         string  `json:"checkOut"`
	LostRevenue      float64 `json:"lostRevenue"`
}

// SummaryResponse итоги отчета
type SummaryResponse struct {
	RoomNights       int     `json:"roomNights,omitempty"`
	AvailableNights  int     `json:"availableNights,omitempty"`
	AverageOccupancy float64 `json:"averageOccupancy,omitempty"`
	Revenue          float64 `json:"revenue,omitempty"`
	Discounts        float64 `json:"discounts,omitempty"`
	Net              float64 `json:"net,omitempty"`
	Arrivals         int     `json:"arrivals,omitempty"`
	NoShowCount      int     `json:"noShowCount,omitempty"`
	NoShowRate       float64 `json:"noShowRate,omitempty"`
	LostRevenue      float64 `json:"lostRevenue,omitempty"`
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(userID, hotelID int64, kind, fromStr, toStr, daysStr, format string) (*generateReport.Request, error) {
	req := &generateReport.Request{
		UserID:  userID,
		HotelID: hotelID,
		Kind:    kind,
		Format:  format,
	}

	if fromStr != "" {
		from, err := types.ParseDate(fromStr)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}

	if toStr != "" {
		to, err := types.ParseDate(toStr)
		if err != nil {
			return nil, err
		}
		req.To = &to
	}

	if daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return nil, err
		}
		req.Days = &days
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateReport.Response) *ReportResponse {
	result := &ReportResponse{
		Kind:      string(resp.Kind),
		HotelID:   resp.HotelID,
		HotelName: resp.HotelName,
		From:      resp.From.String(),
		To:        resp.To.String(),
		Summary: SummaryResponse{
			RoomNights:       resp.Summary.RoomNights,
			AvailableNights:  resp.Summary.AvailableNights,
			AverageOccupancy: resp.Summary.AverageOccupancy,
			Revenue:          resp.Summary.Revenue,
			Discounts:        resp.Summary.Discounts,
			Net:              resp.Summary.Net,
			Arrivals:         resp.Summary.Arrivals,
			NoShowCount:      resp.Summary.NoShowCount,
			NoShowRate:       resp.Summary.NoShowRate,
			LostRevenue:      resp.Summary.LostRevenue,
		},
	}

	for _, day := range resp.Occupancy {
		result.Occupancy = append(result.Occupancy, OccupancyDay{
			Date:          day.Date.String(),
			RoomsSold:     day.RoomsSold,
			RoomsTotal:    day.RoomsTotal,
			OccupancyRate: day.OccupancyRate,
		})
	}

	for _, day := range resp.Financial {
		result.Financial = append(result.Financial, FinancialDay{
			Date:      day.Date.String(),
			Revenue:   day.Revenue,
			Discounts: day.Discounts,
			Net:       day.Net,
		})
	}

	for _, entry := range resp.NoShows {
		result.NoShows = append(result.NoShows, NoShowEntry{
			ReservationID:    entry.ReservationID,
			ConfirmationCode: entry.ConfirmationCode,
			RoomNumber:       entry.RoomNumber,
			GuestUserID:      entry.GuestUserID,
			CheckIn:          entry.CheckIn.String(),
			CheckOut:         entry.CheckOut.String(),
			LostRevenue:      entry.LostRevenue,
		})
	}

	return result
}
