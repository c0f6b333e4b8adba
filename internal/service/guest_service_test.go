package service

import (
	"context"
	"testing"

	"backend/internal/billing"
	"backend/internal/catalog"
	"backend/internal/idgen"
	"backend/internal/model"
	"backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuestService(t *testing.T) (GuestService, repository.RoomRepository) {
	t.Helper()
	roomRepo := repository.NewRoomRepository()
	roomRepo.Seed(context.Background(), catalog.Rooms())
	return NewGuestService(repository.NewGuestRepository(), roomRepo, idgen.NewSequenceProvider()), roomRepo
}

func TestRegisterSeedsEntryFee(t *testing.T) {
	svc, _ := newGuestService(t)

	got, err := svc.Register(context.Background(), RegisterGuestRequest{
		Name:        "Arun Kumar",
		Phone:       "9876543210",
		PackageType: model.PackageFamily,
		AdvancePaid: "1500",
	})
	require.NoError(t, err)

	assert.Equal(t, "G-1", got.ID)
	assert.Equal(t, model.GuestActive, got.Status)
	assert.Equal(t, "1500.00", got.AdvancePaid)
	require.Len(t, got.Transactions, 1)
	entry := got.Transactions[0]
	assert.Equal(t, "Resort Package Entry", entry.Description)
	assert.Equal(t, model.TxDebit, entry.Type)
	assert.Equal(t, "999.00", entry.Amount)
	assert.Equal(t, "846.61", entry.TaxableAmount)
	assert.Equal(t, "76.19", entry.CGST)
	assert.Equal(t, "76.19", entry.SGST)
}

func TestRegisterDefaults(t *testing.T) {
	tests := []struct {
		name string
		req  RegisterGuestRequest
	}{
		{name: "empty request", req: RegisterGuestRequest{}},
		{name: "unknown package", req: RegisterGuestRequest{PackageType: "VIP"}},
		{name: "malformed advance", req: RegisterGuestRequest{AdvancePaid: "lots"}},
		{name: "negative advance", req: RegisterGuestRequest{AdvancePaid: "-100"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newGuestService(t)
			got, err := svc.Register(context.Background(), tt.req)
			require.NoError(t, err, "registration is never rejected for bad form input")

			if tt.req.Name == "" {
				assert.Equal(t, "Unknown", got.Name)
			}
			assert.Equal(t, "0000000000", got.Phone)
			assert.Equal(t, model.PackageBasic, got.PackageType)
			assert.Equal(t, "0.00", got.AdvancePaid)
		})
	}
}

func TestRegisterAssignsRoom(t *testing.T) {
	ctx := context.Background()
	svc, roomRepo := newGuestService(t)

	got, err := svc.Register(ctx, RegisterGuestRequest{Name: "Priya", RoomNumber: "102"})
	require.NoError(t, err)
	require.NotNil(t, got.RoomNumber)
	assert.Equal(t, "102", *got.RoomNumber)

	room, err := roomRepo.FindByNumber(ctx, "102")
	require.NoError(t, err)
	assert.Equal(t, model.RoomOccupied, room.Status)

	// Second guest wanting the same room registers fine, just roomless.
	again, err := svc.Register(ctx, RegisterGuestRequest{Name: "Selvam", RoomNumber: "102"})
	require.NoError(t, err)
	assert.Nil(t, again.RoomNumber)
}

func TestAddCharge(t *testing.T) {
	ctx := context.Background()
	svc, _ := newGuestService(t)
	g, err := svc.Register(ctx, RegisterGuestRequest{Name: "Arun", PackageType: model.PackageBasic})
	require.NoError(t, err)

	tx, err := svc.AddCharge(ctx, g.ID, AddChargeRequest{Description: "Spa Session", Amount: "800"})
	require.NoError(t, err)
	assert.Equal(t, model.TxCategoryAmenity, tx.Category, "category defaults to AMENITY")
	assert.Equal(t, "800.00", tx.Amount)

	guest, err := svc.GetGuest(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, guest.Transactions, 2)
	assert.Equal(t, "Spa Session", guest.Transactions[1].Description)
}

func TestAddChargeRejectsBadAmounts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newGuestService(t)
	g, err := svc.Register(ctx, RegisterGuestRequest{Name: "Arun"})
	require.NoError(t, err)

	_, err = svc.AddCharge(ctx, g.ID, AddChargeRequest{Description: "X", Amount: "not-a-number"})
	assert.Error(t, err)

	_, err = svc.AddCharge(ctx, g.ID, AddChargeRequest{Description: "X", Amount: "-50"})
	assert.Error(t, err)

	_, err = svc.AddCharge(ctx, "G-404", AddChargeRequest{Description: "X", Amount: "50"})
	assert.ErrorIs(t, err, repository.ErrGuestNotFound)
}

func TestTopUpWallet(t *testing.T) {
	ctx := context.Background()
	svc, _ := newGuestService(t)
	g, err := svc.Register(ctx, RegisterGuestRequest{Name: "Priya", PackageType: model.PackageLuxury})
	require.NoError(t, err)

	got, err := svc.TopUpWallet(ctx, g.ID, TopUpWalletRequest{Amount: "2000"})
	require.NoError(t, err)
	assert.Equal(t, "2000.00", got.WalletBalance)
	require.Len(t, got.Transactions, 2)
	credit := got.Transactions[1]
	assert.Equal(t, model.TxCredit, credit.Type)
	assert.Equal(t, "Wallet Top-up", credit.Description)
	assert.Equal(t, "0.00", credit.CGST, "top-ups carry no tax components")

	_, err = svc.TopUpWallet(ctx, g.ID, TopUpWalletRequest{Amount: "0"})
	assert.Error(t, err)
	_, err = svc.TopUpWallet(ctx, g.ID, TopUpWalletRequest{Amount: "-10"})
	assert.Error(t, err)
}

func TestCheckOutSettlement(t *testing.T) {
	ctx := context.Background()
	svc, roomRepo := newGuestService(t)
	g, err := svc.Register(ctx, RegisterGuestRequest{
		Name:        "Arun",
		PackageType: model.PackageFamily,
		AdvancePaid: "0",
		RoomNumber:  "101",
	})
	require.NoError(t, err)
	_, err = svc.AddCharge(ctx, g.ID, AddChargeRequest{Description: "Pool", Amount: "150"})
	require.NoError(t, err)

	settlement, err := svc.CheckOut(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, model.GuestCheckedOut, settlement.Status)
	assert.Equal(t, "1149.00", settlement.Total)
	assert.Equal(t, billing.LabelCollect, settlement.Label)
	assert.Equal(t, "1149.00", settlement.AmountDue)
	assert.NotEmpty(t, settlement.CheckOutTime)

	// The room goes to cleaning, not straight back to available.
	room, err := roomRepo.FindByNumber(ctx, "101")
	require.NoError(t, err)
	assert.Equal(t, model.RoomCleaning, room.Status)
}

func TestCheckOutRefund(t *testing.T) {
	ctx := context.Background()
	svc, _ := newGuestService(t)
	g, err := svc.Register(ctx, RegisterGuestRequest{
		Name:        "Priya",
		PackageType: model.PackageLuxury,
		AdvancePaid: "5000",
	})
	require.NoError(t, err)

	settlement, err := svc.CheckOut(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, billing.LabelRefund, settlement.Label)
	assert.Equal(t, "2501.00", settlement.AmountDue)
	assert.Equal(t, "-2501.00", settlement.Balance)
}

func TestCheckOutIsOneWay(t *testing.T) {
	ctx := context.Background()
	svc, _ := newGuestService(t)
	g, err := svc.Register(ctx, RegisterGuestRequest{Name: "Arun"})
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx, g.ID)
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx, g.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already checked out")

	_, err = svc.CheckOut(ctx, "G-404")
	assert.ErrorIs(t, err, repository.ErrGuestNotFound)
}

func TestListGuestsPagination(t *testing.T) {
	ctx := context.Background()
	svc, _ := newGuestService(t)
	for i := 0; i < 5; i++ {
		_, err := svc.Register(ctx, RegisterGuestRequest{Name: "Guest"})
		require.NoError(t, err)
	}

	page, total, err := svc.ListGuests(ctx, model.GuestActive, 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, "G-3", page[0].ID, "newest first, second page")
}
