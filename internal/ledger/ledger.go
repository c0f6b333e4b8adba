// Package ledger builds the immutable transactions that make up a guest's
// ledger. The central rule is the gross→net decomposition: every guest-facing
// price already includes two co-levied GST components (CGST + SGST), so a
// gross amount G splits into
//
//	taxable = G / (1 + 2*GSTRate)
//	cgst    = sgst = taxable * GSTRate
//
// and recombining taxable + cgst + sgst returns G within rounding tolerance.
package ledger

import (
	"time"

	"backend/internal/model"

	"github.com/shopspring/decimal"
)

// GSTRate is the rate of each of the two co-levied components: 9% CGST + 9%
// SGST = 18% total.
var GSTRate = decimal.NewFromFloat(0.09)

// grossFactor = 1 + 2*GSTRate, the multiplier from taxable base to gross.
var grossFactor = decimal.NewFromInt(1).Add(GSTRate.Mul(decimal.NewFromInt(2)))

// Breakdown is the result of decomposing a gross amount.
type Breakdown struct {
	Taxable decimal.Decimal
	CGST    decimal.Decimal
	SGST    decimal.Decimal
}

// Decompose splits a gross amount into its taxable base and the two tax
// components. A zero gross yields an all-zero breakdown; the divisor is a
// constant > 1 so no special case is needed.
func Decompose(gross decimal.Decimal) Breakdown {
	taxable := gross.Div(grossFactor)
	tax := taxable.Mul(GSTRate)
	return Breakdown{Taxable: taxable, CGST: tax, SGST: tax}
}

// NewEntryFee builds the DEBIT transaction that seeds a guest's ledger at
// registration with the package entry fee.
func NewEntryFee(id string, at time.Time, pkg model.GuestPackage) model.Transaction {
	return NewCharge(id, at, "Resort Package Entry", pkg.Price, model.TxCategoryEntry)
}

// NewCharge builds a DEBIT transaction for an ad-hoc gross charge.
func NewCharge(id string, at time.Time, description string, gross decimal.Decimal, category string) model.Transaction {
	b := Decompose(gross)
	return model.Transaction{
		ID:            id,
		Timestamp:     at,
		Description:   description,
		Amount:        gross,
		TaxableAmount: b.Taxable,
		CGST:          b.CGST,
		SGST:          b.SGST,
		Type:          model.TxDebit,
		Category:      category,
	}
}

// NewWalletCredit builds a CREDIT transaction for a wallet top-up. Credits are
// money movements, not taxed sales, so they carry the gross amount only.
func NewWalletCredit(id string, at time.Time, amount decimal.Decimal) model.Transaction {
	return model.Transaction{
		ID:            id,
		Timestamp:     at,
		Description:   "Wallet Top-up",
		Amount:        amount,
		TaxableAmount: decimal.Zero,
		CGST:          decimal.Zero,
		SGST:          decimal.Zero,
		Type:          model.TxCredit,
		Category:      model.TxCategoryWallet,
	}
}
