package generate_report

import (
	"fmt"

	"github.com/m04kA/SMC-HotelReservations/internal/availability"
	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/internal/pricing"
)

// isSold номер считается проданным на ночь, если бронирование не отменено
func isSold(status domain.ReservationStatus) bool {
	return status != domain.StatusCancelled
}

// isOnTheBooks будущая загрузка учитывает только бронирования, по которым гость ожидается или живет
func isOnTheBooks(status domain.ReservationStatus) bool {
	switch status {
	case domain.StatusReserved, domain.StatusConfirmed, domain.StatusCheckedIn:
		return true
	}
	return false
}

// earnsRevenue выручку приносят бронирования, по которым гость заехал или ожидается
func earnsRevenue(status domain.ReservationStatus) bool {
	return status != domain.StatusCancelled && status != domain.StatusNoShow
}

// buildOccupancy считает загрузку по каждой ночи периода
// Номер учитывается один раз за ночь, даже если на него пересекаются несколько записей
func buildOccupancy(
	period availability.Interval,
	roomsTotal int,
	reservations []*domain.Reservation,
	counts func(domain.ReservationStatus) bool,
) ([]domain.OccupancyDay, Summary) {
	nights := period.Nights()
	days := make([]domain.OccupancyDay, 0, nights)
	var summary Summary

	for i := 0; i < nights; i++ {
		date := period.CheckIn.AddDays(i)

		sold := make(map[int64]struct{})
		for _, r := range reservations {
			if !counts(r.Status) {
				continue
			}
			if !date.Before(r.CheckIn) && date.Before(r.CheckOut) {
				sold[r.RoomID] = struct{}{}
			}
		}

		days = append(days, domain.OccupancyDay{
			Date:          date,
			RoomsSold:     len(sold),
			RoomsTotal:    roomsTotal,
			OccupancyRate: percent(len(sold), roomsTotal),
		})
		summary.RoomNights += len(sold)
	}

	summary.AvailableNights = roomsTotal * nights
	summary.AverageOccupancy = percent(summary.RoomNights, summary.AvailableNights)

	return days, summary
}

// buildFinancial распределяет выручку и скидки бронирований по ночам периода
// Сумма бронирования делится между ночами поровну, копеечный остаток уходит на последнюю ночь
func buildFinancial(period availability.Interval, reservations []*domain.Reservation) ([]domain.FinancialDay, Summary, error) {
	nights := period.Nights()
	days := make([]domain.FinancialDay, nights)
	for i := range days {
		days[i].Date = period.CheckIn.AddDays(i)
	}

	for _, r := range reservations {
		if !earnsRevenue(r.Status) {
			continue
		}

		stay := r.Nights()
		if stay <= 0 {
			return nil, Summary{}, fmt.Errorf("reservation id=%d has %d nights", r.ID, stay)
		}

		weights := make([]float64, stay)
		for i := range weights {
			weights[i] = 1
		}

		revenue, err := pricing.Apportion(r.TotalAmount, weights)
		if err != nil {
			return nil, Summary{}, fmt.Errorf("reservation id=%d revenue: %w", r.ID, err)
		}
		discounts, err := pricing.Apportion(r.DiscountAmount, weights)
		if err != nil {
			return nil, Summary{}, fmt.Errorf("reservation id=%d discount: %w", r.ID, err)
		}

		for k := 0; k < stay; k++ {
			date := r.CheckIn.AddDays(k)
			if !period.Contains(date) {
				continue
			}
			idx := period.CheckIn.DaysUntil(date)
			days[idx].Revenue += revenue[k]
			days[idx].Discounts += discounts[k]
		}
	}

	var summary Summary
	for i := range days {
		days[i].Revenue = pricing.Round2(days[i].Revenue)
		days[i].Discounts = pricing.Round2(days[i].Discounts)
		days[i].Net = pricing.Round2(days[i].Revenue - days[i].Discounts)

		summary.Revenue += days[i].Revenue
		summary.Discounts += days[i].Discounts
	}
	summary.Revenue = pricing.Round2(summary.Revenue)
	summary.Discounts = pricing.Round2(summary.Discounts)
	summary.Net = pricing.Round2(summary.Revenue - summary.Discounts)

	return days, summary, nil
}

// buildNoShow собирает неявки среди заездов периода
// Заездом считается неотмененное бронирование с датой заезда внутри периода
func buildNoShow(period availability.Interval, reservations []*domain.Reservation) ([]domain.NoShowEntry, Summary) {
	entries := make([]domain.NoShowEntry, 0)
	var summary Summary

	for _, r := range reservations {
		if r.Status == domain.StatusCancelled || !period.Contains(r.CheckIn) {
			continue
		}
		summary.Arrivals++

		if r.Status != domain.StatusNoShow {
			continue
		}

		lost := pricing.Round2(r.FinalAmount())
		entries = append(entries, domain.NoShowEntry{
			ReservationID:    r.ID,
			ConfirmationCode: r.ConfirmationCode,
			RoomNumber:       r.RoomNumber,
			GuestUserID:      r.GuestUserID,
			CheckIn:          r.CheckIn,
			CheckOut:         r.CheckOut,
			LostRevenue:      lost,
		})
		summary.LostRevenue += lost
	}

	summary.NoShowCount = len(entries)
	summary.NoShowRate = percent(summary.NoShowCount, summary.Arrivals)
	summary.LostRevenue = pricing.Round2(summary.LostRevenue)

	return entries, summary
}

// percent возвращает part/total в процентах, округленное до сотых
func percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return pricing.Round2(float64(part) * 100 / float64(total))
}
