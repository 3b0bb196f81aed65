package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a posting on the ledger.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	}
	return false
}

// ContactType distinguishes customers from vendors.
type ContactType string

const (
	ContactTypeCustomer ContactType = "customer"
	ContactTypeVendor   ContactType = "vendor"
)

// IsValid reports whether t is a known contact type.
func (t ContactType) IsValid() bool {
	return t == ContactTypeCustomer || t == ContactTypeVendor
}

// Transaction represents a single double-entry posting: Amount is debited to
// DebitAccount and credited to CreditAccount. Amount is never negative; the
// direction of the movement is carried entirely by the two account sides.
//
// Contact and ContactType are set when the posting relates to a customer or
// vendor and drive the derived receivable/payable balances.
type Transaction struct {
	ID            string
	Date          time.Time
	Description   string
	Amount        decimal.Decimal
	Type          TransactionType
	DebitAccount  string
	CreditAccount string
	Category      string
	Contact       string
	ContactType   ContactType
	CreatedAt     time.Time
}
