// Package queue defines message payloads exchanged over the message broker
// plus the publisher and background consumer for them.
package queue

// PaymentVerifiedEvent is published when a payment OTP has been confirmed.
// It carries enough information for downstream consumers to log, notify or
// trigger analytics without querying the primary database.
type PaymentVerifiedEvent struct {
	UserID           uint64 `json:"user_id"`
	OrderID          uint64 `json:"order_id,omitempty"`
	RestaurantName   string `json:"restaurant_name,omitempty"`
	TotalAmountCents uint32 `json:"total_amount_cents,omitempty"`
	VerifiedAt       string `json:"verified_at"`
}
