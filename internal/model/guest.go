package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// GuestStatus enum constants
const (
	GuestActive         = "ACTIVE"
	GuestCheckedOut     = "CHECKED_OUT"
	GuestPendingPayment = "PENDING_PAYMENT"
)

// Guest is a registered visitor together with the append-only ledger of all
// charges and credits raised against them. Transactions is chronological
// (insertion order); entries are never reordered, mutated or removed.
// CheckOutTime is set exactly once, when the guest transitions to CHECKED_OUT.
type Guest struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	PackageType   string          `json:"package_type"`
	WalletBalance decimal.Decimal `json:"wallet_balance"`
	AdvancePaid   decimal.Decimal `json:"advance_paid"`
	Status        string          `json:"status"` // ACTIVE, CHECKED_OUT, PENDING_PAYMENT
	CheckInTime   time.Time       `json:"check_in_time"`
	CheckOutTime  *time.Time      `json:"check_out_time,omitempty"`
	Transactions  []Transaction   `json:"transactions"`
	RoomNumber    *string         `json:"room_number,omitempty"`
}
