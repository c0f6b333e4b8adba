package repository

import (
	"context"
	"sync"
	"time"

	"backend/internal/model"

	"github.com/shopspring/decimal"
)

// GuestRepository owns every Guest record and its ledger. All reads return
// copies; the only way to change a ledger is AppendTransaction, which keeps
// the append-only invariant at the store boundary.
type GuestRepository interface {
	Create(ctx context.Context, g model.Guest) error
	FindByID(ctx context.Context, id string) (model.Guest, error)
	List(ctx context.Context, status string, offset, limit int) ([]model.Guest, int64, error)
	All(ctx context.Context) []model.Guest
	AppendTransaction(ctx context.Context, guestID string, tx model.Transaction) (model.Guest, error)
	UpdateStatus(ctx context.Context, guestID, status string, checkOutTime *time.Time) (model.Guest, error)
	CreditWallet(ctx context.Context, guestID string, amount decimal.Decimal) (model.Guest, error)
}

type guestRepository struct {
	mu     sync.RWMutex
	guests map[string]*model.Guest
	ids    []string // insertion order, oldest first
}

func NewGuestRepository() GuestRepository {
	return &guestRepository{guests: make(map[string]*model.Guest)}
}

func (r *guestRepository) Create(_ context.Context, g model.Guest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := cloneGuest(&g)
	r.guests[g.ID] = &stored
	r.ids = append(r.ids, g.ID)
	return nil
}

func (r *guestRepository) FindByID(_ context.Context, id string) (model.Guest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.guests[id]
	if !ok {
		return model.Guest{}, ErrGuestNotFound
	}
	return cloneGuest(g), nil
}

// List returns guests newest first, optionally filtered by status.
func (r *guestRepository) List(_ context.Context, status string, offset, limit int) ([]model.Guest, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var filtered []*model.Guest
	for i := len(r.ids) - 1; i >= 0; i-- {
		g := r.guests[r.ids[i]]
		if status == "" || g.Status == status {
			filtered = append(filtered, g)
		}
	}

	total := int64(len(filtered))
	if offset >= len(filtered) {
		return []model.Guest{}, total, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	out := make([]model.Guest, 0, end-offset)
	for _, g := range filtered[offset:end] {
		out = append(out, cloneGuest(g))
	}
	return out, total, nil
}

func (r *guestRepository) All(_ context.Context) []model.Guest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Guest, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, cloneGuest(r.guests[id]))
	}
	return out
}

func (r *guestRepository) AppendTransaction(_ context.Context, guestID string, tx model.Transaction) (model.Guest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.guests[guestID]
	if !ok {
		return model.Guest{}, ErrGuestNotFound
	}
	g.Transactions = append(g.Transactions, tx)
	return cloneGuest(g), nil
}

func (r *guestRepository) UpdateStatus(_ context.Context, guestID, status string, checkOutTime *time.Time) (model.Guest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.guests[guestID]
	if !ok {
		return model.Guest{}, ErrGuestNotFound
	}
	g.Status = status
	if checkOutTime != nil {
		t := *checkOutTime
		g.CheckOutTime = &t
	}
	return cloneGuest(g), nil
}

func (r *guestRepository) CreditWallet(_ context.Context, guestID string, amount decimal.Decimal) (model.Guest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.guests[guestID]
	if !ok {
		return model.Guest{}, ErrGuestNotFound
	}
	g.WalletBalance = g.WalletBalance.Add(amount)
	return cloneGuest(g), nil
}

// cloneGuest deep-copies a guest so callers can never reach the stored ledger.
func cloneGuest(g *model.Guest) model.Guest {
	out := *g
	out.Transactions = make([]model.Transaction, len(g.Transactions))
	copy(out.Transactions, g.Transactions)
	if g.CheckOutTime != nil {
		t := *g.CheckOutTime
		out.CheckOutTime = &t
	}
	if g.RoomNumber != nil {
		n := *g.RoomNumber
		out.RoomNumber = &n
	}
	return out
}
