// Package idgen generates the identifiers for guests, transactions and food
// orders behind an injectable provider, so tests can swap in a deterministic
// sequence instead of asserting against random ids.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Id prefixes keep the three id spaces distinguishable in logs and exports.
const (
	guestPrefix       = "G"
	transactionPrefix = "TX"
	orderPrefix       = "O"
)

type Provider interface {
	GuestID() string
	TransactionID() string
	OrderID() string
}

// NewUUIDProvider returns the production provider, backed by random UUIDs.
func NewUUIDProvider() Provider {
	return uuidProvider{}
}

type uuidProvider struct{}

func (uuidProvider) GuestID() string       { return guestPrefix + "-" + uuid.NewString() }
func (uuidProvider) TransactionID() string { return transactionPrefix + "-" + uuid.NewString() }
func (uuidProvider) OrderID() string       { return orderPrefix + "-" + uuid.NewString() }

// NewSequenceProvider returns a provider that hands out monotonically
// increasing ids per id space (G-1, TX-1, O-1, ...). Intended for tests.
func NewSequenceProvider() Provider {
	return &sequenceProvider{}
}

type sequenceProvider struct {
	guest       atomic.Int64
	transaction atomic.Int64
	order       atomic.Int64
}

func (p *sequenceProvider) GuestID() string {
	return fmt.Sprintf("%s-%d", guestPrefix, p.guest.Add(1))
}

func (p *sequenceProvider) TransactionID() string {
	return fmt.Sprintf("%s-%d", transactionPrefix, p.transaction.Add(1))
}

func (p *sequenceProvider) OrderID() string {
	return fmt.Sprintf("%s-%d", orderPrefix, p.order.Add(1))
}
