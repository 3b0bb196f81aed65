package ledger_test

import (
	"testing"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/ledger"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"5", "$5.00"},
		{"1234.5", "$1,234.50"},
		{"-1234.5", "$1,234.50"}, // sign is dropped in display
		{"1000000", "$1,000,000.00"},
		{"999.999", "$1,000.00"},
		{"0.004", "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ledger.FormatCurrency(amt(tt.in))
			if got != tt.want {
				t.Errorf("FormatCurrency(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBalanceColorClass(t *testing.T) {
	tests := []struct {
		name        string
		balance     string
		accountType domain.AccountType
		want        string
	}{
		{"positive asset", "100", domain.AccountTypeAsset, "text-green-600"},
		{"negative asset", "-100", domain.AccountTypeAsset, "text-red-600"},
		{"zero balance", "0", domain.AccountTypeAsset, "text-gray-600"},
		{"positive revenue", "50", domain.AccountTypeRevenue, "text-green-600"},
		{"positive expense", "50", domain.AccountTypeExpense, "text-red-600"},
		{"negative expense", "-50", domain.AccountTypeExpense, "text-green-600"},
		{"positive liability", "50", domain.AccountTypeLiability, "text-red-600"},
		{"no account type", "25", "", "text-green-600"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.BalanceColorClass(amt(tt.balance), tt.accountType)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
