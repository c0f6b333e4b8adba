// Package billing aggregates a guest's ledger into invoice totals and drives
// settlement. It is pure: everything is re-derived from the ledger on each
// call, so there is no cached state to fall out of sync.
package billing

import (
	"time"

	"backend/internal/model"

	"github.com/shopspring/decimal"
)

// Settlement labels
const (
	LabelCollect = "Collect"
	LabelRefund  = "Refund"
	LabelSettled = "Settled"
)

// Summary is the aggregation of a guest's DEBIT ledger entries.
//
// CREDIT transactions (wallet top-ups) are deliberately not netted into Total:
// the wallet is settled separately from the package/amenity invoice. Balance
// is Total minus the advance captured at registration; positive means collect
// from the guest, negative means refund.
type Summary struct {
	Subtotal decimal.Decimal
	CGST     decimal.Decimal
	SGST     decimal.Decimal
	Total    decimal.Decimal
	Balance  decimal.Decimal
}

// Summarize folds the guest's DEBIT transactions into invoice totals.
// Invariant: Total reconciles with the sum of gross amounts over the same
// entries, because each entry's components sum to its gross.
func Summarize(g model.Guest) Summary {
	subtotal, cgst, sgst := decimal.Zero, decimal.Zero, decimal.Zero
	for _, t := range g.Transactions {
		if t.Type != model.TxDebit {
			continue
		}
		subtotal = subtotal.Add(t.TaxableAmount)
		cgst = cgst.Add(t.CGST)
		sgst = sgst.Add(t.SGST)
	}
	total := subtotal.Add(cgst).Add(sgst)
	return Summary{
		Subtotal: subtotal,
		CGST:     cgst,
		SGST:     sgst,
		Total:    total,
		Balance:  total.Sub(g.AdvancePaid),
	}
}

// SettlementLabel maps a balance onto the front-desk action: a positive
// balance is collected from the guest, a negative one refunded, zero is
// settled. The returned amount is always non-negative.
func SettlementLabel(balance decimal.Decimal) (string, decimal.Decimal) {
	switch {
	case balance.IsPositive():
		return LabelCollect, balance
	case balance.IsZero():
		return LabelSettled, decimal.Zero
	default:
		return LabelRefund, balance.Neg()
	}
}

// Line is one invoice line item, taken verbatim from a DEBIT ledger entry.
type Line struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}

// Document is the structured invoice export consumed by the rendering
// collaborator (PDF/print), which owns layout and typography.
type Document struct {
	GuestID     string          `json:"guest_id"`
	GuestName   string          `json:"guest_name"`
	Phone       string          `json:"phone"`
	PackageType string          `json:"package_type"`
	IssuedAt    time.Time       `json:"issued_at"`
	Lines       []Line          `json:"lines"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	CGST        decimal.Decimal `json:"cgst"`
	SGST        decimal.Decimal `json:"sgst"`
	Total       decimal.Decimal `json:"total"`
	AdvancePaid decimal.Decimal `json:"advance_paid"`
	Balance     decimal.Decimal `json:"balance"`
	Label       string          `json:"label"` // Collect, Refund, Settled
	AmountDue   decimal.Decimal `json:"amount_due"`
}

// InvoiceDocument assembles the invoice export for a guest: all DEBIT entries
// as line items plus the tax summary and the settlement line.
func InvoiceDocument(g model.Guest, issuedAt time.Time) Document {
	s := Summarize(g)
	var lines []Line
	for _, t := range g.Transactions {
		if t.Type != model.TxDebit {
			continue
		}
		lines = append(lines, Line{
			Description: t.Description,
			Amount:      t.Amount,
			Category:    t.Category,
			Timestamp:   t.Timestamp,
		})
	}
	label, due := SettlementLabel(s.Balance)
	return Document{
		GuestID:     g.ID,
		GuestName:   g.Name,
		Phone:       g.Phone,
		PackageType: g.PackageType,
		IssuedAt:    issuedAt,
		Lines:       lines,
		Subtotal:    s.Subtotal,
		CGST:        s.CGST,
		SGST:        s.SGST,
		Total:       s.Total,
		AdvancePaid: g.AdvancePaid,
		Balance:     s.Balance,
		Label:       label,
		AmountDue:   due,
	}
}
