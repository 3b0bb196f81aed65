package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
)

// InvoiceRepository implements usecase.InvoiceRepository.
type InvoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

const invoiceColumns = `id, customer_id, amount, status, date, due_date, created_at, updated_at`

// Create inserts a new invoice.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	query := `
		INSERT INTO invoices (id, customer_id, amount, status, date, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		invoice.ID,
		invoice.CustomerID,
		decimalToNumeric(invoice.Amount),
		string(invoice.Status),
		timeToPgTimestamptz(invoice.Date),
		timeToPgTimestamptz(invoice.DueDate),
		timeToPgTimestamptz(invoice.CreatedAt),
		timeToPgTimestamptz(invoice.UpdatedAt),
	)

	return err
}

// GetByID retrieves an invoice by ID.
func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`

	invoice, err := scanInvoice(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}

		return nil, err
	}

	return invoice, nil
}

// List retrieves invoices with pagination, newest first.
func (r *InvoiceRepository) List(ctx context.Context, limit, offset int) ([]*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY date DESC, id DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectInvoices(rows)
}

// ListByCustomer retrieves a customer's invoices with pagination.
func (r *InvoiceRepository) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE customer_id = $1 ORDER BY date DESC, id DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, customerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectInvoices(rows)
}

// ListAll retrieves every invoice as a value slice for balance derivation.
func (r *InvoiceRepository) ListAll(ctx context.Context) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY date, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}

		invoices = append(invoices, *invoice)
	}

	return invoices, rows.Err()
}

// UpdateStatus moves an invoice to a new status.
func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id string, status domain.InvoiceStatus, updatedAt time.Time) error {
	query := `UPDATE invoices SET status = $2, updated_at = $3 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, string(status), timeToPgTimestamptz(updatedAt))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrInvoiceNotFound
	}

	return nil
}

func collectInvoices(rows pgx.Rows) ([]*domain.Invoice, error) {
	var invoices []*domain.Invoice
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}

		invoices = append(invoices, invoice)
	}

	return invoices, rows.Err()
}

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var (
		invoice   domain.Invoice
		status    string
		amount    pgtype.Numeric
		date      pgtype.Timestamptz
		dueDate   pgtype.Timestamptz
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&invoice.ID,
		&invoice.CustomerID,
		&amount,
		&status,
		&date,
		&dueDate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	invoice.Status = domain.InvoiceStatus(status)
	invoice.Amount = numericToDecimal(amount)
	invoice.Date = date.Time
	invoice.DueDate = dueDate.Time
	invoice.CreatedAt = createdAt.Time
	invoice.UpdatedAt = updatedAt.Time

	return &invoice, nil
}
