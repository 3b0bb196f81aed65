package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/ledger"
)

// EngineMetrics records balance engine observations.
type EngineMetrics interface {
	ObserveSummaryDuration(seconds float64)
	IncEquationCheck(balanced bool)
	IncLedgerCheck(valid bool)
}

// ReportUseCase derives balance reports from ledger snapshots.
//
// Every report is recomputed in full from the transaction ledger; the Redis
// cache only shortcuts repeated summary requests within a short TTL and is
// never consulted for the equation or ledger checks.
type ReportUseCase struct {
	accountRepo     AccountRepository
	contactRepo     ContactRepository
	invoiceRepo     InvoiceRepository
	transactionRepo TransactionRepository
	cache           ReportCache
	metrics         EngineMetrics
	logger          *slog.Logger
}

// NewReportUseCase creates a new ReportUseCase. cache and metrics may be nil.
func NewReportUseCase(
	accountRepo AccountRepository,
	contactRepo ContactRepository,
	invoiceRepo InvoiceRepository,
	transactionRepo TransactionRepository,
	cache ReportCache,
	metrics EngineMetrics,
	logger *slog.Logger,
) *ReportUseCase {
	if logger == nil {
		logger = slog.Default()
	}

	return &ReportUseCase{
		accountRepo:     accountRepo,
		contactRepo:     contactRepo,
		invoiceRepo:     invoiceRepo,
		transactionRepo: transactionRepo,
		cache:           cache,
		metrics:         metrics,
		logger:          logger,
	}
}

// BalanceSummary is the full derived-balance report.
type BalanceSummary struct {
	Accounts    map[string]decimal.Decimal `json:"accounts"`
	Contacts    map[string]decimal.Decimal `json:"contacts"`
	Types       ledger.TypeSummary         `json:"types"`
	Equation    ledger.EquationCheck       `json:"equation"`
	GeneratedAt time.Time                  `json:"generated_at"`
}

// Summary computes account balances, contact balances, per-type totals and
// the accounting-equation check over the current ledger snapshot.
func (uc *ReportUseCase) Summary(ctx context.Context) (*BalanceSummary, error) {
	if cached := uc.cachedSummary(ctx); cached != nil {
		return cached, nil
	}

	start := time.Now()

	accounts, err := uc.accountRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	contacts, err := uc.contactRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	invoices, err := uc.invoiceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	balances := ledger.AllAccountBalances(accounts, transactions)

	summary := &BalanceSummary{
		Accounts:    balances,
		Contacts:    ledger.AllContactBalances(contacts, invoices, transactions),
		Types:       ledger.AccountTypeSummary(accounts, balances),
		Equation:    ledger.VerifyAccountingEquation(accounts, balances),
		GeneratedAt: time.Now().UTC(),
	}

	if uc.metrics != nil {
		uc.metrics.ObserveSummaryDuration(time.Since(start).Seconds())
	}

	uc.storeSummary(ctx, summary)

	return summary, nil
}

// VerifyEquation checks Assets = Liabilities + Equity over freshly derived
// balances.
func (uc *ReportUseCase) VerifyEquation(ctx context.Context) (ledger.EquationCheck, error) {
	accounts, err := uc.accountRepo.ListAll(ctx)
	if err != nil {
		return ledger.EquationCheck{}, err
	}

	transactions, err := uc.transactionRepo.ListAll(ctx)
	if err != nil {
		return ledger.EquationCheck{}, err
	}

	check := ledger.VerifyAccountingEquation(accounts, ledger.AllAccountBalances(accounts, transactions))

	if uc.metrics != nil {
		uc.metrics.IncEquationCheck(check.IsBalanced)
	}

	if !check.IsBalanced {
		uc.logger.WarnContext(ctx, "accounting equation out of balance",
			"assets", check.Assets.String(),
			"liabilities", check.Liabilities.String(),
			"equity", check.Equity.String(),
			"difference", check.Difference.String(),
		)
	}

	return check, nil
}

// CheckLedger totals the debit and credit sides of the whole ledger.
func (uc *ReportUseCase) CheckLedger(ctx context.Context) (ledger.LedgerCheck, error) {
	transactions, err := uc.transactionRepo.ListAll(ctx)
	if err != nil {
		return ledger.LedgerCheck{}, err
	}

	check := ledger.ValidateTransactionBalance(transactions)

	if uc.metrics != nil {
		uc.metrics.IncLedgerCheck(check.IsValid)
	}

	return check, nil
}

// cachedSummary returns a cached summary, or nil on miss or any cache error.
func (uc *ReportUseCase) cachedSummary(ctx context.Context) *BalanceSummary {
	if uc.cache == nil {
		return nil
	}

	raw, err := uc.cache.Get(ctx, summaryCacheKey)
	if err != nil || raw == "" {
		return nil
	}

	var summary BalanceSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		uc.logger.DebugContext(ctx, "discarding unreadable cached summary", "error", err)
		return nil
	}

	return &summary
}

// storeSummary caches a summary; failures are logged and ignored.
func (uc *ReportUseCase) storeSummary(ctx context.Context, summary *BalanceSummary) {
	if uc.cache == nil {
		return
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		uc.logger.DebugContext(ctx, "failed to encode summary for cache", "error", err)
		return
	}

	if err := uc.cache.Set(ctx, summaryCacheKey, string(raw), summaryCacheTTL); err != nil {
		uc.logger.DebugContext(ctx, "failed to cache summary", "error", err)
	}
}
