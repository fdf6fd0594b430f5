package models

import (
	"time"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/internal/pricing"
)

// Request модели

// CreateHotelRequest запрос на создание отеля
type CreateHotelRequest struct {
	UserID                  int64    `json:"-"`
	Name                    string   `json:"name"`
	Address                 string   `json:"address"`
	City                    string   `json:"city"`
	Stars                   int      `json:"stars"`
	BlockMinimumRooms       *int     `json:"blockMinimumRooms,omitempty"`
	BlockDiscountPercentage *float64 `json:"blockDiscountPercentage,omitempty"`
	ManagerIDs              []int64  `json:"managerIds,omitempty"`
}

// UpdateHotelRequest запрос на обновление отеля
// Поля со значением nil не изменяются
type UpdateHotelRequest struct {
	UserID                  int64    `json:"-"`
	Name                    *string  `json:"name,omitempty"`
	Address                 *string  `json:"address,omitempty"`
	City                    *string  `json:"city,omitempty"`
	Stars                   *int     `json:"stars,omitempty"`
	BlockMinimumRooms       *int     `json:"blockMinimumRooms,omitempty"`
	BlockDiscountPercentage *float64 `json:"blockDiscountPercentage,omitempty"`
	ResetBlockPricing       bool     `json:"resetBlockPricing,omitempty"` // Вернуть глобальные параметры скидки
	ManagerIDs              []int64  `json:"managerIds,omitempty"`
}

// ToDomainHotel конвертирует request в domain модель
// Создатель отеля всегда попадает в список менеджеров
func (r *CreateHotelRequest) ToDomainHotel() *domain.Hotel {
	managers := []int64{r.UserID}
	for _, id := range r.ManagerIDs {
		if id != r.UserID {
			managers = append(managers, id)
		}
	}

	return &domain.Hotel{
		Name:                    r.Name,
		Address:                 r.Address,
		City:                    r.City,
		Stars:                   r.Stars,
		BlockMinimumRooms:       r.BlockMinimumRooms,
		BlockDiscountPercentage: r.BlockDiscountPercentage,
		ManagerIDs:              managers,
	}
}

// ApplyToHotel применяет изменения к domain модели
func (r *UpdateHotelRequest) ApplyToHotel(hotel *domain.Hotel) {
	if r.Name != nil {
		hotel.Name = *r.Name
	}
	if r.Address != nil {
		hotel.Address = *r.Address
	}
	if r.City != nil {
		hotel.City = *r.City
	}
	if r.Stars != nil {
		hotel.Stars = *r.Stars
	}
	if r.ResetBlockPricing {
		hotel.BlockMinimumRooms = nil
		hotel.BlockDiscountPercentage = nil
	}
	if r.BlockMinimumRooms != nil {
		hotel.BlockMinimumRooms = r.BlockMinimumRooms
	}
	if r.BlockDiscountPercentage != nil {
		hotel.BlockDiscountPercentage = r.BlockDiscountPercentage
	}
	if r.ManagerIDs != nil {
		hotel.ManagerIDs = r.ManagerIDs
	}
}

// Response модели

// BlockPricingResponse действующие параметры групповой скидки
type BlockPricingResponse struct {
	MinimumRooms       int     `json:"minimumRooms"`
	DiscountPercentage float64 `json:"discountPercentage"`
	IsOverridden       bool    `json:"isOverridden"`
}

// HotelResponse ответ с данными отеля
type HotelResponse struct {
	ID           int64                `json:"id"`
	Name         string               `json:"name"`
	Address      string               `json:"address"`
	City         string               `json:"city"`
	Stars        int                  `json:"stars"`
	BlockPricing BlockPricingResponse `json:"blockPricing"`
	ManagerIDs   []int64              `json:"managerIds"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

// HotelListResponse ответ со списком отелей
type HotelListResponse struct {
	Hotels []HotelResponse `json:"hotels"`
}

// Методы конвертации

// FromDomainHotel конвертирует domain модель в DTO
// defaults - глобальные параметры групповой скидки из конфигурации
func FromDomainHotel(h *domain.Hotel, defaults pricing.Config) *HotelResponse {
	if h == nil {
		return nil
	}

	effective := defaults.ForHotel(h)

	managers := h.ManagerIDs
	if managers == nil {
		managers = []int64{}
	}

	return &HotelResponse{
		ID:      h.ID,
		Name:    h.Name,
		Address: h.Address,
		City:    h.City,
		Stars:   h.Stars,
		BlockPricing: BlockPricingResponse{
			MinimumRooms:       effective.MinimumRooms,
			DiscountPercentage: effective.DiscountPercentage,
			IsOverridden:       h.HasBlockPricingOverride(),
		},
		ManagerIDs: managers,
		CreatedAt:  h.CreatedAt,
		UpdatedAt:  h.UpdatedAt,
	}
}

// FromDomainHotelList конвертирует список domain моделей в DTO
func FromDomainHotelList(hotels []*domain.Hotel, defaults pricing.Config) *HotelListResponse {
	resp := &HotelListResponse{
		Hotels: make([]HotelResponse, 0, len(hotels)),
	}

	for _, hotel := range hotels {
		if hotelResp := FromDomainHotel(hotel, defaults); hotelResp != nil {
			resp.Hotels = append(resp.Hotels, *hotelResp)
		}
	}

	return resp
}
