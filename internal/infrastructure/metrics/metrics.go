package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the balance engine.
type Metrics struct {
	SummaryDuration prometheus.Histogram
	EquationChecks  *prometheus.CounterVec
	LedgerChecks    *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		SummaryDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "books_summary_duration_seconds",
			Help:    "Duration of full balance summary derivation",
			Buckets: prometheus.DefBuckets,
		}),
		EquationChecks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "books_equation_checks_total",
				Help: "Accounting equation verifications by result",
			},
			[]string{"result"},
		),
		LedgerChecks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "books_ledger_checks_total",
				Help: "Ledger debit/credit checks by result",
			},
			[]string{"result"},
		),
	}
}

// ObserveSummaryDuration implements usecase.EngineMetrics.
func (m *Metrics) ObserveSummaryDuration(seconds float64) {
	m.SummaryDuration.Observe(seconds)
}

// IncEquationCheck implements usecase.EngineMetrics.
func (m *Metrics) IncEquationCheck(balanced bool) {
	m.EquationChecks.WithLabelValues(checkResult(balanced)).Inc()
}

// IncLedgerCheck implements usecase.EngineMetrics.
func (m *Metrics) IncLedgerCheck(valid bool) {
	m.LedgerChecks.WithLabelValues(checkResult(valid)).Inc()
}

func checkResult(ok bool) string {
	if ok {
		return "ok"
	}
	return "failed"
}
