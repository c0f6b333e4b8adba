package repository

import (
	"context"
	"sync"

	"backend/internal/model"
)

// FoodOrderRepository owns the food order collection. Orders reference guests
// by id only; the guest may be gone by the time an order is delivered.
type FoodOrderRepository interface {
	Create(ctx context.Context, o model.FoodOrder) error
	FindByID(ctx context.Context, id string) (model.FoodOrder, error)
	List(ctx context.Context, status string, offset, limit int) ([]model.FoodOrder, int64, error)
	Update(ctx context.Context, o model.FoodOrder) error
	CountByStatus(ctx context.Context, status string) int64
}

type foodOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]model.FoodOrder
	ids    []string // insertion order, oldest first
}

func NewFoodOrderRepository() FoodOrderRepository {
	return &foodOrderRepository{orders: make(map[string]model.FoodOrder)}
}

func (r *foodOrderRepository) Create(_ context.Context, o model.FoodOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = o
	r.ids = append(r.ids, o.ID)
	return nil
}

func (r *foodOrderRepository) FindByID(_ context.Context, id string) (model.FoodOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return model.FoodOrder{}, ErrOrderNotFound
	}
	return o, nil
}

// List returns orders newest first, optionally filtered by status.
func (r *foodOrderRepository) List(_ context.Context, status string, offset, limit int) ([]model.FoodOrder, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var filtered []model.FoodOrder
	for i := len(r.ids) - 1; i >= 0; i-- {
		o := r.orders[r.ids[i]]
		if status == "" || o.Status == status {
			filtered = append(filtered, o)
		}
	}

	total := int64(len(filtered))
	if offset >= len(filtered) {
		return []model.FoodOrder{}, total, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], total, nil
}

func (r *foodOrderRepository) Update(_ context.Context, o model.FoodOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID]; !ok {
		return ErrOrderNotFound
	}
	r.orders[o.ID] = o
	return nil
}

func (r *foodOrderRepository) CountByStatus(_ context.Context, status string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, o := range r.orders {
		if o.Status == status {
			n++
		}
	}
	return n
}
