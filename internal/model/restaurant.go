package model

import "time"

// Restaurant is a row in the `restaurants` table. Restaurants are managed
// out of band (seeded or via an operations tool); the API only reads them.
type Restaurant struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	ImageURL    string    `json:"image_url,omitempty"`
	Rating      float64   `json:"rating"` // 0.0-5.0
	CreatedAt   time.Time `json:"created_at"`
}
