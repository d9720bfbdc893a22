package model

import "time"

// Order statuses. An order starts PENDING and moves to CONFIRMED once the
// payment OTP has been verified.
const (
	OrderPending   = "PENDING"
	OrderConfirmed = "CONFIRMED"
	OrderCancelled = "CANCELLED"
)

// Order is a row in the `orders` table.
type Order struct {
	ID               uint64    `json:"id"`
	UserID           uint64    `json:"user_id"`
	RestaurantID     uint64    `json:"restaurant_id"`
	Status           string    `json:"status"`
	TotalAmountCents uint32    `json:"total_amount_cents"`
	CreatedAt        time.Time `json:"created_at"`
}

// OrderItem is a row in the `order_items` table. PriceCents is the unit
// price captured at order time, so later menu edits do not change history.
type OrderItem struct {
	ID         uint64 `json:"id"`
	OrderID    uint64 `json:"order_id"`
	FoodID     uint64 `json:"food_id"`
	Quantity   uint32 `json:"quantity"`
	PriceCents uint32 `json:"price_cents"`
}
