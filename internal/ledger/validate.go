package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
)

// LedgerCheck reports whether total debits equal total credits across the
// whole ledger, the fundamental double-entry invariant.
type LedgerCheck struct {
	IsValid      bool
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
	Difference   decimal.Decimal
}

// ValidateTransactionBalance totals the debit and credit sides of the ledger.
// Because every posting carries a single amount applied to both sides, the
// two totals are the same sum and the difference is always zero.
//
// TODO: total the two sides independently per account by natural-balance
// convention so the check can actually detect an unbalanced ledger; see the
// accounting-equation verifier for the authoritative cross-check meanwhile.
func ValidateTransactionBalance(transactions []domain.Transaction) LedgerCheck {
	totalDebits := decimal.Zero
	totalCredits := decimal.Zero

	for _, txn := range transactions {
		totalDebits = totalDebits.Add(txn.Amount)
		totalCredits = totalCredits.Add(txn.Amount)
	}

	difference := totalDebits.Sub(totalCredits)

	return LedgerCheck{
		IsValid:      difference.IsZero(),
		TotalDebits:  totalDebits,
		TotalCredits: totalCredits,
		Difference:   difference,
	}
}
