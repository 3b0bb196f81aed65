package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
)

// FormatCurrency renders an amount as a dollar string with thousands
// separators and two decimal places. The sign is dropped: display code shows
// direction through color and context, not through a leading minus.
func FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteByte('$')

	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	b.WriteByte('.')
	b.WriteString(fracPart)

	return b.String()
}

// BalanceColorClass maps a balance to a CSS text color class. A growing
// balance is good news for most account types; for expense and liability
// accounts the mapping inverts.
func BalanceColorClass(balance decimal.Decimal, accountType domain.AccountType) string {
	if balance.IsZero() {
		return "text-gray-600"
	}

	positive := balance.IsPositive()
	if accountType == domain.AccountTypeExpense || accountType == domain.AccountTypeLiability {
		positive = !positive
	}

	if positive {
		return "text-green-600"
	}

	return "text-red-600"
}
