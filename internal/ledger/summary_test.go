package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/ledger"
)

func TestAccountTypeSummary(t *testing.T) {
	accounts := []domain.Account{
		{ID: "cash", Type: domain.AccountTypeAsset},
		{ID: "bank", Type: domain.AccountTypeAsset},
		{ID: "loan", Type: domain.AccountTypeLiability},
		{ID: "capital", Type: domain.AccountTypeEquity},
		{ID: "sales", Type: domain.AccountTypeRevenue},
		{ID: "rent", Type: domain.AccountTypeExpense},
		{ID: "orphan", Type: domain.AccountTypeAsset},
	}
	balances := map[string]decimal.Decimal{
		"cash":    amt("400"),
		"bank":    amt("600"),
		"loan":    amt("300"),
		"capital": amt("700"),
		"sales":   amt("900"),
		"rent":    amt("150"),
		// orphan deliberately missing
	}

	summary := ledger.AccountTypeSummary(accounts, balances)

	if !summary.Asset.Equal(amt("1000")) {
		t.Errorf("asset: expected 1000, got %s", summary.Asset)
	}
	if !summary.Liability.Equal(amt("300")) {
		t.Errorf("liability: expected 300, got %s", summary.Liability)
	}
	if !summary.Equity.Equal(amt("700")) {
		t.Errorf("equity: expected 700, got %s", summary.Equity)
	}
	if !summary.Revenue.Equal(amt("900")) {
		t.Errorf("revenue: expected 900, got %s", summary.Revenue)
	}
	if !summary.Expense.Equal(amt("150")) {
		t.Errorf("expense: expected 150, got %s", summary.Expense)
	}
}

func TestVerifyAccountingEquation(t *testing.T) {
	accounts := []domain.Account{
		{ID: "cash", Type: domain.AccountTypeAsset},
		{ID: "loan", Type: domain.AccountTypeLiability},
		{ID: "capital", Type: domain.AccountTypeEquity},
	}

	tests := []struct {
		name           string
		balances       map[string]decimal.Decimal
		wantBalanced   bool
		wantDifference string
	}{
		{
			name: "balanced books",
			balances: map[string]decimal.Decimal{
				"cash":    amt("1000"),
				"loan":    amt("400"),
				"capital": amt("600"),
			},
			wantBalanced:   true,
			wantDifference: "0",
		},
		{
			name: "out of balance by 100",
			balances: map[string]decimal.Decimal{
				"cash":    amt("1000"),
				"loan":    amt("400"),
				"capital": amt("500"),
			},
			wantBalanced:   false,
			wantDifference: "100",
		},
		{
			name: "rounding noise within tolerance",
			balances: map[string]decimal.Decimal{
				"cash":    amt("1000.004"),
				"loan":    amt("400"),
				"capital": amt("600"),
			},
			wantBalanced:   true,
			wantDifference: "0.004",
		},
		{
			name: "difference of exactly the tolerance is unbalanced",
			balances: map[string]decimal.Decimal{
				"cash":    amt("1000.01"),
				"loan":    amt("400"),
				"capital": amt("600"),
			},
			wantBalanced:   false,
			wantDifference: "0.01",
		},
		{
			name:           "empty balances trivially balance",
			balances:       map[string]decimal.Decimal{},
			wantBalanced:   true,
			wantDifference: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := ledger.VerifyAccountingEquation(accounts, tt.balances)

			if check.IsBalanced != tt.wantBalanced {
				t.Errorf("expected balanced=%v, got %v", tt.wantBalanced, check.IsBalanced)
			}

			if !check.Difference.Equal(amt(tt.wantDifference)) {
				t.Errorf("expected difference %s, got %s", tt.wantDifference, check.Difference)
			}
		})
	}
}

func TestVerifyAccountingEquation_FromLedger(t *testing.T) {
	// A tiny but complete ledger: owner funds the business, buys on credit,
	// and the balance sheet identity must hold on derived balances.
	accounts := []domain.Account{
		{ID: "cash", Type: domain.AccountTypeAsset},
		{ID: "inventory", Type: domain.AccountTypeAsset},
		{ID: "payable", Type: domain.AccountTypeLiability},
		{ID: "capital", Type: domain.AccountTypeEquity},
	}
	transactions := []domain.Transaction{
		{ID: "t1", Amount: amt("5000"), DebitAccount: "cash", CreditAccount: "capital"},
		{ID: "t2", Amount: amt("1200"), DebitAccount: "inventory", CreditAccount: "payable"},
	}

	balances := ledger.AllAccountBalances(accounts, transactions)
	check := ledger.VerifyAccountingEquation(accounts, balances)

	if !check.IsBalanced {
		t.Fatalf("expected balanced books, difference %s", check.Difference)
	}
	if !check.Assets.Equal(amt("6200")) {
		t.Errorf("assets: expected 6200, got %s", check.Assets)
	}
	if !check.Liabilities.Equal(amt("1200")) {
		t.Errorf("liabilities: expected 1200, got %s", check.Liabilities)
	}
	if !check.Equity.Equal(amt("5000")) {
		t.Errorf("equity: expected 5000, got %s", check.Equity)
	}
}
