package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies an account on the chart of accounts.
type AccountType string

const (
	// AccountTypeAsset increases on the debit side and holds resources the business owns.
	AccountTypeAsset AccountType = "asset"
	// AccountTypeLiability increases on the credit side and tracks obligations.
	AccountTypeLiability AccountType = "liability"
	// AccountTypeEquity captures the owner's residual interest in the business.
	AccountTypeEquity AccountType = "equity"
	// AccountTypeRevenue represents inflows that increase equity.
	AccountTypeRevenue AccountType = "revenue"
	// AccountTypeExpense represents outflows that decrease equity.
	AccountTypeExpense AccountType = "expense"
)

// IsValid reports whether t is one of the five account types.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// IsDebitNatural reports whether accounts of this type carry a natural debit
// balance (asset, expense). The remaining types carry a natural credit balance.
func (t AccountType) IsDebitNatural() bool {
	return t == AccountTypeAsset || t == AccountTypeExpense
}

// Account represents an account on the chart of accounts.
//
// Balance is a cached value maintained by the persistence layer for display.
// It is advisory only: the transaction ledger is the source of truth and every
// balance reported by the engine is recomputed from it.
type Account struct {
	ID        string
	Name      string
	Type      AccountType
	Code      string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
