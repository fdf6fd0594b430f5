package domain

import "time"

// Hotel represents a property with rooms and managers
//
// Block booking pricing is hierarchical:
// 1. Hotel override (BlockMinimumRooms / BlockDiscountPercentage not nil)
// 2. Service-wide defaults from configuration
type Hotel struct {
	ID                      int64
	Name                    string
	Address                 string
	City                    string
	Stars                   int
	BlockMinimumRooms       *int     // NULL = use service defaults
	BlockDiscountPercentage *float64 // NULL = use service defaults
	ManagerIDs              []int64
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IsManager returns true if the user manages this hotel
func (h *Hotel) IsManager(userID int64) bool {
	for _, id := range h.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// HasBlockPricingOverride returns true if the hotel overrides any block pricing parameter
func (h *Hotel) HasBlockPricingOverride() bool {
	return h.BlockMinimumRooms != nil || h.BlockDiscountPercentage != nil
}
