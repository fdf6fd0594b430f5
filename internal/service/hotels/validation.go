package hotels

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/internal/pricing"
)

// validateHotel проверяет итоговое состояние отеля перед сохранением
func validateHotel(hotel *domain.Hotel) error {
	if strings.TrimSpace(hotel.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(hotel.City) == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidInput)
	}
	if hotel.Stars < domain.MinHotelStars || hotel.Stars > domain.MaxHotelStars {
		return fmt.Errorf("%w: stars must be between %d and %d", ErrInvalidInput, domain.MinHotelStars, domain.MaxHotelStars)
	}
	if len(hotel.ManagerIDs) == 0 {
		return fmt.Errorf("%w: hotel must have at least one manager", ErrInvalidInput)
	}

	// Переопределение скидки проверяем тем же правилом, что и глобальную конфигурацию
	if hotel.HasBlockPricingOverride() {
		cfg := pricing.DefaultConfig().ForHotel(hotel)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("%w: block pricing: %v", ErrInvalidInput, err)
		}
	}

	return nil
}
