package repository

import (
	"context"
	"testing"
	"time"

	"backend/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(id, status string) model.FoodOrder {
	return model.FoodOrder{
		ID:        id,
		GuestID:   "G-1",
		Items:     "Masala Dosa, Filter Coffee",
		Amount:    decimal.NewFromInt(320),
		Status:    status,
		Timestamp: time.Now(),
	}
}

func TestFoodOrderRepositoryCreateAndFind(t *testing.T) {
	repo := NewFoodOrderRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newOrder("O-1", model.OrderPending)))

	got, err := repo.FindByID(ctx, "O-1")
	require.NoError(t, err)
	assert.Equal(t, model.OrderPending, got.Status)

	_, err = repo.FindByID(ctx, "O-404")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestFoodOrderRepositoryListFilterAndOrder(t *testing.T) {
	repo := NewFoodOrderRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newOrder("O-1", model.OrderPending)))
	require.NoError(t, repo.Create(ctx, newOrder("O-2", model.OrderPreparing)))
	require.NoError(t, repo.Create(ctx, newOrder("O-3", model.OrderPending)))

	all, total, err := repo.List(ctx, "", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, all, 3)
	assert.Equal(t, "O-3", all[0].ID, "newest first")

	pending, total, err := repo.List(ctx, model.OrderPending, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, pending, 2)
	for _, o := range pending {
		assert.Equal(t, model.OrderPending, o.Status)
	}
}

func TestFoodOrderRepositoryUpdate(t *testing.T) {
	repo := NewFoodOrderRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newOrder("O-1", model.OrderPending)))

	o, err := repo.FindByID(ctx, "O-1")
	require.NoError(t, err)
	o.Status = model.OrderDelivered
	o.ChargePosted = true
	require.NoError(t, repo.Update(ctx, o))

	got, err := repo.FindByID(ctx, "O-1")
	require.NoError(t, err)
	assert.Equal(t, model.OrderDelivered, got.Status)
	assert.True(t, got.ChargePosted)

	assert.ErrorIs(t, repo.Update(ctx, newOrder("O-404", model.OrderPending)), ErrOrderNotFound)
}

func TestFoodOrderRepositoryCountByStatus(t *testing.T) {
	repo := NewFoodOrderRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newOrder("O-1", model.OrderPending)))
	require.NoError(t, repo.Create(ctx, newOrder("O-2", model.OrderPending)))
	require.NoError(t, repo.Create(ctx, newOrder("O-3", model.OrderPreparing)))

	assert.EqualValues(t, 2, repo.CountByStatus(ctx, model.OrderPending))
	assert.EqualValues(t, 1, repo.CountByStatus(ctx, model.OrderPreparing))
	assert.EqualValues(t, 0, repo.CountByStatus(ctx, model.OrderDelivered))
}
