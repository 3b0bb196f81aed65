package usecase

import (
	"context"
	"time"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	ListAll(ctx context.Context) ([]domain.Account, error)
}

// TransactionRepository defines data access for ledger transactions.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error)
	ListAll(ctx context.Context) ([]domain.Transaction, error)
}

// ContactRepository defines data access for contacts.
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
	GetByID(ctx context.Context, id string) (*domain.Contact, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Contact, error)
	ListAll(ctx context.Context) ([]domain.Contact, error)
}

// InvoiceRepository defines data access for invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Invoice, error)
	ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*domain.Invoice, error)
	ListAll(ctx context.Context) ([]domain.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status domain.InvoiceStatus, updatedAt time.Time) error
}

// RecurringRepository defines data access for recurring transaction schedules.
type RecurringRepository interface {
	Create(ctx context.Context, recurring *domain.RecurringTransaction) error
	GetByID(ctx context.Context, id string) (*domain.RecurringTransaction, error)
	List(ctx context.Context, limit, offset int) ([]*domain.RecurringTransaction, error)
	ListDue(ctx context.Context, asOf time.Time) ([]*domain.RecurringTransaction, error)
	UpdateNextRun(ctx context.Context, id string, nextRunAt, updatedAt time.Time) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier retries an operation on transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// ReportCache caches rendered reports with a TTL.
type ReportCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore stores idempotent responses.
type IdempotencyStore interface {
	CheckAndSet(ctx context.Context, key string, value []byte, ttl time.Duration) (exists bool, existing []byte, err error)
	Update(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
