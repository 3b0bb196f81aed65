package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/ledger"
)

func amt(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAccountBalance_SignConventions(t *testing.T) {
	transactions := []domain.Transaction{
		{ID: "t1", Amount: amt("500"), Type: domain.TransactionTypeIncome, DebitAccount: "cash", CreditAccount: "sales"},
	}

	tests := []struct {
		name        string
		accountID   string
		accountType domain.AccountType
		want        string
	}{
		{name: "debit increases asset", accountID: "cash", accountType: domain.AccountTypeAsset, want: "500"},
		{name: "credit increases revenue", accountID: "sales", accountType: domain.AccountTypeRevenue, want: "500"},
		{name: "debit decreases liability", accountID: "cash", accountType: domain.AccountTypeLiability, want: "-500"},
		{name: "debit decreases equity", accountID: "cash", accountType: domain.AccountTypeEquity, want: "-500"},
		{name: "credit decreases expense", accountID: "sales", accountType: domain.AccountTypeExpense, want: "-500"},
		{name: "unreferenced account", accountID: "inventory", accountType: domain.AccountTypeAsset, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.AccountBalance(tt.accountID, tt.accountType, transactions)
			if !got.Equal(amt(tt.want)) {
				t.Errorf("expected balance %s, got %s", tt.want, got)
			}
		})
	}
}

func TestAccountBalance_DebitAndCreditAccumulate(t *testing.T) {
	transactions := []domain.Transaction{
		{ID: "t1", Amount: amt("500"), DebitAccount: "cash", CreditAccount: "sales"},
		{ID: "t2", Amount: amt("120.50"), DebitAccount: "rent", CreditAccount: "cash"},
		{ID: "t3", Amount: amt("30"), DebitAccount: "cash", CreditAccount: "sales"},
	}

	got := ledger.AccountBalance("cash", domain.AccountTypeAsset, transactions)
	if !got.Equal(amt("409.50")) {
		t.Errorf("expected 409.50, got %s", got)
	}
}

func TestAccountBalance_SameAccountBothSidesNetsZero(t *testing.T) {
	transactions := []domain.Transaction{
		{ID: "t1", Amount: amt("250"), DebitAccount: "cash", CreditAccount: "cash"},
	}

	for _, accountType := range []domain.AccountType{
		domain.AccountTypeAsset,
		domain.AccountTypeLiability,
		domain.AccountTypeEquity,
		domain.AccountTypeRevenue,
		domain.AccountTypeExpense,
	} {
		t.Run(string(accountType), func(t *testing.T) {
			got := ledger.AccountBalance("cash", accountType, transactions)
			if !got.IsZero() {
				t.Errorf("expected zero balance for %s, got %s", accountType, got)
			}
		})
	}
}

func TestAccountBalance_EmptyLedger(t *testing.T) {
	got := ledger.AccountBalance("cash", domain.AccountTypeAsset, nil)
	if !got.IsZero() {
		t.Errorf("expected zero, got %s", got)
	}
}

func TestAllAccountBalances(t *testing.T) {
	accounts := []domain.Account{
		{ID: "cash", Type: domain.AccountTypeAsset},
		{ID: "loan", Type: domain.AccountTypeLiability},
		{ID: "sales", Type: domain.AccountTypeRevenue},
	}
	transactions := []domain.Transaction{
		{ID: "t1", Amount: amt("1000"), DebitAccount: "cash", CreditAccount: "loan"},
		{ID: "t2", Amount: amt("500"), DebitAccount: "cash", CreditAccount: "sales"},
	}

	balances := ledger.AllAccountBalances(accounts, transactions)

	if len(balances) != 3 {
		t.Fatalf("expected 3 balances, got %d", len(balances))
	}

	want := map[string]string{"cash": "1500", "loan": "1000", "sales": "500"}
	for id, w := range want {
		if !balances[id].Equal(amt(w)) {
			t.Errorf("account %s: expected %s, got %s", id, w, balances[id])
		}
	}
}

func TestAllAccountBalances_IsPure(t *testing.T) {
	accounts := []domain.Account{
		{ID: "cash", Type: domain.AccountTypeAsset},
		{ID: "sales", Type: domain.AccountTypeRevenue},
	}
	transactions := []domain.Transaction{
		{ID: "t1", Amount: amt("42.42"), DebitAccount: "cash", CreditAccount: "sales"},
	}

	first := ledger.AllAccountBalances(accounts, transactions)
	second := ledger.AllAccountBalances(accounts, transactions)

	if len(first) != len(second) {
		t.Fatalf("expected identical maps, got sizes %d and %d", len(first), len(second))
	}

	for id, balance := range first {
		if !balance.Equal(second[id]) {
			t.Errorf("account %s: first call %s, second call %s", id, balance, second[id])
		}
	}
}
