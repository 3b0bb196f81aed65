package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/adapter/http/dto"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/ledger"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/usecase"
)

type reportServiceStub struct {
	summaryFn  func(ctx context.Context) (*usecase.BalanceSummary, error)
	equationFn func(ctx context.Context) (ledger.EquationCheck, error)
	ledgerFn   func(ctx context.Context) (ledger.LedgerCheck, error)
}

func (s *reportServiceStub) Summary(ctx context.Context) (*usecase.BalanceSummary, error) {
	return s.summaryFn(ctx)
}

func (s *reportServiceStub) VerifyEquation(ctx context.Context) (ledger.EquationCheck, error) {
	return s.equationFn(ctx)
}

func (s *reportServiceStub) CheckLedger(ctx context.Context) (ledger.LedgerCheck, error) {
	return s.ledgerFn(ctx)
}

func TestReportHandler_Summary(t *testing.T) {
	handler := NewReportHandler(&reportServiceStub{
		summaryFn: func(ctx context.Context) (*usecase.BalanceSummary, error) {
			return &usecase.BalanceSummary{
				Accounts: map[string]decimal.Decimal{
					"cash": decimal.NewFromInt(1000),
				},
				Contacts: map[string]decimal.Decimal{},
				Types: ledger.TypeSummary{
					Asset: decimal.NewFromInt(1000),
				},
				Equation: ledger.EquationCheck{
					IsBalanced: true,
					Assets:     decimal.NewFromInt(1000),
				},
				GeneratedAt: time.Now().UTC(),
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/reports/summary", nil)
	rec := httptest.NewRecorder()

	handler.Summary(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.SummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !resp.Accounts["cash"].Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected cash balance 1000, got %s", resp.Accounts["cash"])
	}
	if !resp.Equation.IsBalanced {
		t.Error("expected balanced equation")
	}
}

func TestReportHandler_Summary_Error(t *testing.T) {
	handler := NewReportHandler(&reportServiceStub{
		summaryFn: func(ctx context.Context) (*usecase.BalanceSummary, error) {
			return nil, errors.New("db error")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/reports/summary", nil)
	rec := httptest.NewRecorder()

	handler.Summary(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestReportHandler_Equation_Unbalanced(t *testing.T) {
	handler := NewReportHandler(&reportServiceStub{
		equationFn: func(ctx context.Context) (ledger.EquationCheck, error) {
			return ledger.EquationCheck{
				IsBalanced:  false,
				Assets:      decimal.NewFromInt(1000),
				Liabilities: decimal.NewFromInt(400),
				Equity:      decimal.NewFromInt(500),
				Difference:  decimal.NewFromInt(100),
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/reports/equation", nil)
	rec := httptest.NewRecorder()

	handler.Equation(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.EquationCheckResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.IsBalanced {
		t.Error("expected unbalanced equation")
	}
	if !resp.Difference.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected difference 100, got %s", resp.Difference)
	}
}

func TestReportHandler_LedgerCheck(t *testing.T) {
	handler := NewReportHandler(&reportServiceStub{
		ledgerFn: func(ctx context.Context) (ledger.LedgerCheck, error) {
			return ledger.LedgerCheck{
				IsValid:      true,
				TotalDebits:  decimal.NewFromInt(500),
				TotalCredits: decimal.NewFromInt(500),
				Difference:   decimal.Zero,
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/reports/ledger-check", nil)
	rec := httptest.NewRecorder()

	handler.LedgerCheck(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.LedgerCheckResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.IsValid {
		t.Error("expected valid ledger check")
	}
}
