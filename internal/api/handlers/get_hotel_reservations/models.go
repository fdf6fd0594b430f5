package get_hotel_reservations

import (
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-HotelReservations/internal/service/reservations/models"
	"github.com/m04kA/SMC-HotelReservations/pkg/types"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	hotelID int64,
	userID int64,
	fromStr string,
	toStr string,
	statusStr string,
	includeCancelledStr string,
) (*models.GetHotelReservationsRequest, error) {
	req := &models.GetHotelReservationsRequest{
		UserID:  userID,
		HotelID: hotelID,
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

	if statusStr != "" {
		req.Status = &statusStr
	}

	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled value: %w", err)
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
