package handler

import (
	"context"
	"net/http"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/adapter/http/dto"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/ledger"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/usecase"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	Summary(ctx context.Context) (*usecase.BalanceSummary, error)
	VerifyEquation(ctx context.Context) (ledger.EquationCheck, error)
	CheckLedger(ctx context.Context) (ledger.LedgerCheck, error)
}

// ReportHandler handles report HTTP requests.
type ReportHandler struct {
	reportUC ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// Summary returns the full balance summary report.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportUC.Summary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build summary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SummaryFromUseCase(summary))
}

// Equation verifies Assets = Liabilities + Equity.
func (h *ReportHandler) Equation(w http.ResponseWriter, r *http.Request) {
	check, err := h.reportUC.VerifyEquation(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to verify equation", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EquationCheckFromEngine(check))
}

// LedgerCheck totals the debit and credit sides of the ledger.
func (h *ReportHandler) LedgerCheck(w http.ResponseWriter, r *http.Request) {
	check, err := h.reportUC.CheckLedger(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to check ledger", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LedgerCheckFromEngine(check))
}
