package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType enum constants
const (
	TxDebit  = "DEBIT"
	TxCredit = "CREDIT"
)

// Transaction category constants
const (
	TxCategoryEntry   = "ENTRY"
	TxCategoryAmenity = "AMENITY"
	TxCategoryFood    = "FOOD"
	TxCategoryWallet  = "WALLET"
)

// Transaction is a single immutable ledger entry. Amount is the gross,
// guest-facing value inclusive of both tax components; the decomposition
// invariant is TaxableAmount + CGST + SGST == Amount.
type Transaction struct {
	ID            string          `json:"id"`
	Timestamp     time.Time       `json:"timestamp"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	CGST          decimal.Decimal `json:"cgst"`
	SGST          decimal.Decimal `json:"sgst"`
	Type          string          `json:"type"` // DEBIT, CREDIT
	Category      string          `json:"category,omitempty"`
}
