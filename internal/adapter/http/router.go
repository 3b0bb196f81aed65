package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/adapter/http/handler"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/adapter/http/middleware"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler     *handler.AccountHandler
	ContactHandler     *handler.ContactHandler
	TransactionHandler *handler.TransactionHandler
	InvoiceHandler     *handler.InvoiceHandler
	RecurringHandler   *handler.RecurringHandler
	ReportHandler      *handler.ReportHandler
	HealthHandler      *handler.HealthHandler
	IdempotencyStore   usecase.IdempotencyStore
	Logger             zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Get("/{id}/balance", cfg.AccountHandler.GetBalance)
		})

		// Contacts
		r.Route("/contacts", func(r chi.Router) {
			r.Post("/", cfg.ContactHandler.Create)
			r.Get("/", cfg.ContactHandler.List)
			r.Get("/{id}", cfg.ContactHandler.Get)
			r.Get("/{id}/balance", cfg.ContactHandler.GetBalance)
		})

		// Transactions
		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", cfg.TransactionHandler.Create)
			r.Get("/", cfg.TransactionHandler.List)
			r.Get("/{id}", cfg.TransactionHandler.Get)
		})

		// Invoices
		r.Route("/invoices", func(r chi.Router) {
			r.Post("/", cfg.InvoiceHandler.Create)
			r.Get("/", cfg.InvoiceHandler.List)
			r.Get("/{id}", cfg.InvoiceHandler.Get)
			r.Put("/{id}/status", cfg.InvoiceHandler.UpdateStatus)
		})

		// Recurring schedules
		r.Route("/recurring", func(r chi.Router) {
			r.Post("/", cfg.RecurringHandler.Create)
			r.Get("/", cfg.RecurringHandler.List)
			r.Post("/run", cfg.RecurringHandler.Run)
		})

		// Reports
		r.Route("/reports", func(r chi.Router) {
			r.Get("/summary", cfg.ReportHandler.Summary)
			r.Get("/equation", cfg.ReportHandler.Equation)
			r.Get("/ledger-check", cfg.ReportHandler.LedgerCheck)
		})
	})

	return r
}
