package service

import (
	"context"
	"time"

	"backend/internal/billing"
	"backend/internal/repository"
)

// --- DTOs ---

type BillingSummaryResponse struct {
	GuestID     string `json:"guest_id"`
	Subtotal    string `json:"subtotal"`
	CGST        string `json:"cgst"`
	SGST        string `json:"sgst"`
	Total       string `json:"total"`
	AdvancePaid string `json:"advance_paid"`
	Balance     string `json:"balance"`
	Label       string `json:"label"` // Collect, Refund, Settled
	AmountDue   string `json:"amount_due"`
}

type InvoiceLineResponse struct {
	Description string `json:"description"`
	Amount      string `json:"amount"` // whole-rupee display, as printed
	Category    string `json:"category,omitempty"`
	Timestamp   string `json:"timestamp"`
}

// InvoiceResponse mirrors the printed tax invoice: line items and the final
// total in whole rupees, tax lines with paise precision.
type InvoiceResponse struct {
	GuestID     string                `json:"guest_id"`
	GuestName   string                `json:"guest_name"`
	Phone       string                `json:"phone"`
	PackageType string                `json:"package_type"`
	IssuedAt    string                `json:"issued_at"`
	Lines       []InvoiceLineResponse `json:"lines"`
	Subtotal    string                `json:"subtotal"`
	CGST        string                `json:"cgst"`
	SGST        string                `json:"sgst"`
	TotalTax    string                `json:"total_tax"`
	Total       string                `json:"total"`
	AdvancePaid string                `json:"advance_paid"`
	Balance     string                `json:"balance"`
	Label       string                `json:"label"`
	AmountDue   string                `json:"amount_due"` // whole-rupee display
}

// --- Interface ---

type BillingService interface {
	Summary(ctx context.Context, guestID string) (BillingSummaryResponse, error)
	Invoice(ctx context.Context, guestID string) (InvoiceResponse, error)
}

type billingService struct {
	guestRepo repository.GuestRepository
}

func NewBillingService(guestRepo repository.GuestRepository) BillingService {
	return &billingService{guestRepo: guestRepo}
}

// --- Implementation ---

func (s *billingService) Summary(ctx context.Context, guestID string) (BillingSummaryResponse, error) {
	guest, err := s.guestRepo.FindByID(ctx, guestID)
	if err != nil {
		return BillingSummaryResponse{}, err
	}

	summary := billing.Summarize(guest)
	label, due := billing.SettlementLabel(summary.Balance)
	return BillingSummaryResponse{
		GuestID:     guest.ID,
		Subtotal:    summary.Subtotal.StringFixed(2),
		CGST:        summary.CGST.StringFixed(2),
		SGST:        summary.SGST.StringFixed(2),
		Total:       summary.Total.StringFixed(2),
		AdvancePaid: guest.AdvancePaid.StringFixed(2),
		Balance:     summary.Balance.StringFixed(2),
		Label:       label,
		AmountDue:   due.StringFixed(2),
	}, nil
}

func (s *billingService) Invoice(ctx context.Context, guestID string) (InvoiceResponse, error) {
	guest, err := s.guestRepo.FindByID(ctx, guestID)
	if err != nil {
		return InvoiceResponse{}, err
	}

	doc := billing.InvoiceDocument(guest, time.Now())
	lines := make([]InvoiceLineResponse, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		lines = append(lines, InvoiceLineResponse{
			Description: l.Description,
			Amount:      l.Amount.StringFixed(0),
			Category:    l.Category,
			Timestamp:   l.Timestamp.Format(time.RFC3339),
		})
	}

	return InvoiceResponse{
		GuestID:     doc.GuestID,
		GuestName:   doc.GuestName,
		Phone:       doc.Phone,
		PackageType: doc.PackageType,
		IssuedAt:    doc.IssuedAt.Format(time.RFC3339),
		Lines:       lines,
		Subtotal:    doc.Subtotal.StringFixed(2),
		CGST:        doc.CGST.StringFixed(2),
		SGST:        doc.SGST.StringFixed(2),
		TotalTax:    doc.CGST.Add(doc.SGST).StringFixed(2),
		Total:       doc.Total.StringFixed(0),
		AdvancePaid: doc.AdvancePaid.StringFixed(2),
		Balance:     doc.Balance.StringFixed(2),
		Label:       doc.Label,
		AmountDue:   doc.AmountDue.StringFixed(0),
	}, nil
}
