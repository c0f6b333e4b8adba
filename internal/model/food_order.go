package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// FoodOrderStatus enum constants
const (
	OrderPending   = "PENDING"
	OrderPreparing = "PREPARING"
	OrderDelivered = "DELIVERED"
	OrderCancelled = "CANCELLED"
)

// FoodOrder references a Guest by id only; the guest may have been checked out
// or be missing entirely, so lookups against it are defensive. GuestName is a
// denormalized snapshot taken when the order was placed.
//
// ChargePosted guards the delivery side effect: the billing charge for an
// order is posted at most once, no matter how often the status is set to
// DELIVERED.
type FoodOrder struct {
	ID           string          `json:"id"`
	GuestID      string          `json:"guest_id"`
	GuestName    string          `json:"guest_name"`
	Items        string          `json:"items"`
	Status       string          `json:"status"` // PENDING, PREPARING, DELIVERED, CANCELLED
	Amount       decimal.Decimal `json:"amount"`
	ChargePosted bool            `json:"charge_posted"`
	Timestamp    time.Time       `json:"timestamp"`
}
