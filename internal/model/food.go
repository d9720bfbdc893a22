package model

import "time"

// Food is a menu item belonging to a restaurant. Prices are stored in the
// smallest currency unit to avoid floating point rounding.
type Food struct {
	ID           uint64    `json:"id"`
	RestaurantID uint64    `json:"restaurant_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	PriceCents   uint32    `json:"price_cents"`
	ImageURL     string    `json:"image_url,omitempty"`
	IsPopular    bool      `json:"is_popular"`
	CreatedAt    time.Time `json:"created_at"`
}
