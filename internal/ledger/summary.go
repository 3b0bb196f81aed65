package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
)

// equationTolerance absorbs rounding noise in the equation check.
var equationTolerance = decimal.New(1, -2) // 0.01

// TypeSummary aggregates derived account balances by account type.
type TypeSummary struct {
	Asset     decimal.Decimal
	Liability decimal.Decimal
	Equity    decimal.Decimal
	Revenue   decimal.Decimal
	Expense   decimal.Decimal
}

// EquationCheck is the result of verifying the accounting equation
// Assets = Liabilities + Equity against derived balances.
type EquationCheck struct {
	IsBalanced  bool
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
	Equity      decimal.Decimal
	Difference  decimal.Decimal
}

// AccountTypeSummary sums each account's derived balance into its type
// bucket. Accounts missing from the balances map contribute zero.
func AccountTypeSummary(accounts []domain.Account, balances map[string]decimal.Decimal) TypeSummary {
	summary := TypeSummary{
		Asset:     decimal.Zero,
		Liability: decimal.Zero,
		Equity:    decimal.Zero,
		Revenue:   decimal.Zero,
		Expense:   decimal.Zero,
	}

	for _, account := range accounts {
		balance, ok := balances[account.ID]
		if !ok {
			continue
		}

		switch account.Type {
		case domain.AccountTypeAsset:
			summary.Asset = summary.Asset.Add(balance)
		case domain.AccountTypeLiability:
			summary.Liability = summary.Liability.Add(balance)
		case domain.AccountTypeEquity:
			summary.Equity = summary.Equity.Add(balance)
		case domain.AccountTypeRevenue:
			summary.Revenue = summary.Revenue.Add(balance)
		case domain.AccountTypeExpense:
			summary.Expense = summary.Expense.Add(balance)
		}
	}

	return summary
}

// VerifyAccountingEquation checks Assets = Liabilities + Equity over derived
// balances, within an absolute tolerance of 0.01. This is the authoritative
// cross-check that ledger-derived balances satisfy the balance-sheet
// identity.
func VerifyAccountingEquation(accounts []domain.Account, balances map[string]decimal.Decimal) EquationCheck {
	summary := AccountTypeSummary(accounts, balances)

	liabilitiesAndEquity := summary.Liability.Add(summary.Equity)
	difference := summary.Asset.Sub(liabilitiesAndEquity).Abs()

	return EquationCheck{
		IsBalanced:  difference.LessThan(equationTolerance),
		Assets:      summary.Asset,
		Liabilities: summary.Liability,
		Equity:      summary.Equity,
		Difference:  difference,
	}
}
