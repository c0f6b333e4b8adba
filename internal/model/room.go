package model

import "github.com/shopspring/decimal"

// RoomType enum constants
const (
	RoomDeluxe = "DELUXE"
	RoomSuite  = "SUITE"
	RoomFamily = "FAMILY"
	RoomDorm   = "DORM"
)

// RoomStatus enum constants
const (
	RoomAvailable = "AVAILABLE"
	RoomOccupied  = "OCCUPIED"
	RoomCleaning  = "CLEANING"
)

// Room is a bookable unit. CurrentGuestID is a weak reference used for lookup
// only; the guest collection owns the guest record.
type Room struct {
	ID             string          `json:"id"`
	Number         string          `json:"number"`
	Type           string          `json:"type"`   // DELUXE, SUITE, FAMILY, DORM
	Status         string          `json:"status"` // AVAILABLE, OCCUPIED, CLEANING
	CurrentGuestID *string         `json:"current_guest_id,omitempty"`
	Price          decimal.Decimal `json:"price"`
	Amenities      []string        `json:"amenities"`
}
