package domain_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "Office Rent", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("a", 256), true},
		{"max length", strings.Repeat("a", 255), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{"zero is allowed", "0", false},
		{"positive", "100.50", false},
		{"negative", "-0.01", true},
		{"too large", "1000000000001", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			if err != nil {
				t.Fatalf("bad test amount: %v", err)
			}

			err = domain.ValidateAmount(amount)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAmount(%s) error = %v, wantErr %v", tt.amount, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"defaults applied", 0, 0, domain.DefaultPageLimit, 0},
		{"clamped to max", 5000, 10, domain.MaxPageLimit, 10},
		{"negative offset reset", 20, -5, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset, err := domain.ValidatePagination(tt.limit, tt.offset)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Errorf("got (%d, %d), want (%d, %d)", limit, offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestAccountTypeIsDebitNatural(t *testing.T) {
	debitNatural := []domain.AccountType{domain.AccountTypeAsset, domain.AccountTypeExpense}
	creditNatural := []domain.AccountType{domain.AccountTypeLiability, domain.AccountTypeEquity, domain.AccountTypeRevenue}

	for _, at := range debitNatural {
		if !at.IsDebitNatural() {
			t.Errorf("expected %s to be debit-natural", at)
		}
	}

	for _, at := range creditNatural {
		if at.IsDebitNatural() {
			t.Errorf("expected %s to be credit-natural", at)
		}
	}
}
