package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/internal/billing"
	"backend/internal/catalog"
	"backend/internal/idgen"
	"backend/internal/ledger"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/logging"

	"github.com/shopspring/decimal"
)

// --- DTOs ---

type RegisterGuestRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	PackageType string `json:"package_type"` // BASIC, FAMILY, PREMIUM, LUXURY, EVENT
	AdvancePaid string `json:"advance_paid"` // decimal string
	RoomNumber  string `json:"room_number"`  // optional
}

type AddChargeRequest struct {
	Description string `json:"description" binding:"required"`
	Amount      string `json:"amount" binding:"required"` // gross, decimal string
	Category    string `json:"category"`                  // defaults to AMENITY
}

type TopUpWalletRequest struct {
	Amount string `json:"amount" binding:"required"` // decimal string
}

type TransactionResponse struct {
	ID            string `json:"id"`
	Timestamp     string `json:"timestamp"`
	Description   string `json:"description"`
	Amount        string `json:"amount"`
	TaxableAmount string `json:"taxable_amount"`
	CGST          string `json:"cgst"`
	SGST          string `json:"sgst"`
	Type          string `json:"type"`
	Category      string `json:"category,omitempty"`
}

type GuestResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Phone         string                `json:"phone"`
	PackageType   string                `json:"package_type"`
	PackageName   string                `json:"package_name"`
	WalletBalance string                `json:"wallet_balance"`
	AdvancePaid   string                `json:"advance_paid"`
	Status        string                `json:"status"`
	CheckInTime   string                `json:"check_in_time"`
	CheckOutTime  *string               `json:"check_out_time,omitempty"`
	RoomNumber    *string               `json:"room_number,omitempty"`
	Transactions  []TransactionResponse `json:"transactions"`
}

type SettlementResponse struct {
	GuestID      string `json:"guest_id"`
	Status       string `json:"status"`
	CheckOutTime string `json:"check_out_time"`
	Subtotal     string `json:"subtotal"`
	CGST         string `json:"cgst"`
	SGST         string `json:"sgst"`
	Total        string `json:"total"`
	AdvancePaid  string `json:"advance_paid"`
	Balance      string `json:"balance"`
	Label        string `json:"label"` // Collect, Refund, Settled
	AmountDue    string `json:"amount_due"`
}

// --- Interface ---

type GuestService interface {
	Register(ctx context.Context, req RegisterGuestRequest) (GuestResponse, error)
	GetGuest(ctx context.Context, id string) (GuestResponse, error)
	ListGuests(ctx context.Context, status string, page, limit int) ([]GuestResponse, int64, error)
	AddCharge(ctx context.Context, guestID string, req AddChargeRequest) (TransactionResponse, error)
	TopUpWallet(ctx context.Context, guestID string, req TopUpWalletRequest) (GuestResponse, error)
	CheckOut(ctx context.Context, guestID string) (SettlementResponse, error)
}

type guestService struct {
	guestRepo repository.GuestRepository
	roomRepo  repository.RoomRepository
	ids       idgen.Provider
}

func NewGuestService(guestRepo repository.GuestRepository, roomRepo repository.RoomRepository, ids idgen.Provider) GuestService {
	return &guestService{
		guestRepo: guestRepo,
		roomRepo:  roomRepo,
		ids:       ids,
	}
}

// --- Implementation ---

// Register creates a guest and seeds the ledger with the package entry fee.
// Malformed input never fails registration: the form layer is expected to
// validate, so missing fields are substituted with defaults instead.
func (s *guestService) Register(ctx context.Context, req RegisterGuestRequest) (GuestResponse, error) {
	name := req.Name
	if name == "" {
		name = "Unknown"
	}
	phone := req.Phone
	if phone == "" {
		phone = "0000000000"
	}

	pkg, err := catalog.PackageFor(req.PackageType)
	if err != nil {
		pkg, _ = catalog.PackageFor(model.PackageBasic)
	}

	advance := decimal.Zero
	if parsed, err := decimal.NewFromString(req.AdvancePaid); err == nil && !parsed.IsNegative() {
		advance = parsed
	}

	now := time.Now()
	guest := model.Guest{
		ID:            s.ids.GuestID(),
		Name:          name,
		Phone:         phone,
		PackageType:   pkg.Type,
		WalletBalance: decimal.Zero,
		AdvancePaid:   advance,
		Status:        model.GuestActive,
		CheckInTime:   now,
		Transactions:  []model.Transaction{ledger.NewEntryFee(s.ids.TransactionID(), now, pkg)},
	}

	if req.RoomNumber != "" {
		if _, err := s.roomRepo.Occupy(ctx, req.RoomNumber, guest.ID); err != nil {
			// Registration stays permissive; the guest just ends up roomless.
			logging.InfoLogger.Warnf("room %s not assigned to guest %s: %v", req.RoomNumber, guest.ID, err)
		} else {
			number := req.RoomNumber
			guest.RoomNumber = &number
		}
	}

	if err := s.guestRepo.Create(ctx, guest); err != nil {
		return GuestResponse{}, fmt.Errorf("failed to create guest: %w", err)
	}
	return toGuestResponse(guest), nil
}

func (s *guestService) GetGuest(ctx context.Context, id string) (GuestResponse, error) {
	guest, err := s.guestRepo.FindByID(ctx, id)
	if err != nil {
		return GuestResponse{}, err
	}
	return toGuestResponse(guest), nil
}

func (s *guestService) ListGuests(ctx context.Context, status string, page, limit int) ([]GuestResponse, int64, error) {
	offset := (page - 1) * limit
	guests, total, err := s.guestRepo.List(ctx, status, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]GuestResponse, 0, len(guests))
	for _, g := range guests {
		out = append(out, toGuestResponse(g))
	}
	return out, total, nil
}

// AddCharge decomposes a gross charge and appends it to the guest's ledger.
func (s *guestService) AddCharge(ctx context.Context, guestID string, req AddChargeRequest) (TransactionResponse, error) {
	gross, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return TransactionResponse{}, fmt.Errorf("invalid amount: %w", err)
	}
	if gross.IsNegative() {
		return TransactionResponse{}, errors.New("amount must not be negative")
	}

	category := req.Category
	if category == "" {
		category = model.TxCategoryAmenity
	}

	tx := ledger.NewCharge(s.ids.TransactionID(), time.Now(), req.Description, gross, category)
	if _, err := s.guestRepo.AppendTransaction(ctx, guestID, tx); err != nil {
		return TransactionResponse{}, err
	}
	return toTransactionResponse(tx), nil
}

// TopUpWallet appends a CREDIT transaction and raises the wallet balance.
// Credits are tracked per-transaction but never folded into the invoice total.
func (s *guestService) TopUpWallet(ctx context.Context, guestID string, req TopUpWalletRequest) (GuestResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return GuestResponse{}, fmt.Errorf("invalid amount: %w", err)
	}
	if !amount.IsPositive() {
		return GuestResponse{}, errors.New("amount must be positive")
	}

	tx := ledger.NewWalletCredit(s.ids.TransactionID(), time.Now(), amount)
	if _, err := s.guestRepo.AppendTransaction(ctx, guestID, tx); err != nil {
		return GuestResponse{}, err
	}
	guest, err := s.guestRepo.CreditWallet(ctx, guestID, amount)
	if err != nil {
		return GuestResponse{}, err
	}
	return toGuestResponse(guest), nil
}

// CheckOut settles the guest's account: one-way transition to CHECKED_OUT,
// check-out time recorded, room released to cleaning, ledger frozen by
// convention (no flow appends to a checked-out guest).
func (s *guestService) CheckOut(ctx context.Context, guestID string) (SettlementResponse, error) {
	guest, err := s.guestRepo.FindByID(ctx, guestID)
	if err != nil {
		return SettlementResponse{}, err
	}
	if guest.Status == model.GuestCheckedOut {
		return SettlementResponse{}, errors.New("guest already checked out")
	}

	now := time.Now()
	guest, err = s.guestRepo.UpdateStatus(ctx, guestID, model.GuestCheckedOut, &now)
	if err != nil {
		return SettlementResponse{}, err
	}

	if guest.RoomNumber != nil {
		if _, err := s.roomRepo.ReleaseByGuest(ctx, guestID); err != nil {
			logging.InfoLogger.Warnf("no room released for guest %s: %v", guestID, err)
		}
	}

	summary := billing.Summarize(guest)
	label, due := billing.SettlementLabel(summary.Balance)
	return SettlementResponse{
		GuestID:      guest.ID,
		Status:       guest.Status,
		CheckOutTime: now.Format(time.RFC3339),
		Subtotal:     summary.Subtotal.StringFixed(2),
		CGST:         summary.CGST.StringFixed(2),
		SGST:         summary.SGST.StringFixed(2),
		Total:        summary.Total.StringFixed(2),
		AdvancePaid:  guest.AdvancePaid.StringFixed(2),
		Balance:      summary.Balance.StringFixed(2),
		Label:        label,
		AmountDue:    due.StringFixed(2),
	}, nil
}

// --- Mapping helpers ---

func toTransactionResponse(t model.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		Timestamp:     t.Timestamp.Format(time.RFC3339),
		Description:   t.Description,
		Amount:        t.Amount.StringFixed(2),
		TaxableAmount: t.TaxableAmount.StringFixed(2),
		CGST:          t.CGST.StringFixed(2),
		SGST:          t.SGST.StringFixed(2),
		Type:          t.Type,
		Category:      t.Category,
	}
}

func toGuestResponse(g model.Guest) GuestResponse {
	pkgName := g.PackageType
	if pkg, err := catalog.PackageFor(g.PackageType); err == nil {
		pkgName = pkg.Name
	}

	resp := GuestResponse{
		ID:            g.ID,
		Name:          g.Name,
		Phone:         g.Phone,
		PackageType:   g.PackageType,
		PackageName:   pkgName,
		WalletBalance: g.WalletBalance.StringFixed(2),
		AdvancePaid:   g.AdvancePaid.StringFixed(2),
		Status:        g.Status,
		CheckInTime:   g.CheckInTime.Format(time.RFC3339),
		RoomNumber:    g.RoomNumber,
		Transactions:  make([]TransactionResponse, 0, len(g.Transactions)),
	}
	if g.CheckOutTime != nil {
		t := g.CheckOutTime.Format(time.RFC3339)
		resp.CheckOutTime = &t
	}
	for _, tx := range g.Transactions {
		resp.Transactions = append(resp.Transactions, toTransactionResponse(tx))
	}
	return resp
}
