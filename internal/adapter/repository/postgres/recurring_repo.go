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

// RecurringRepository implements usecase.RecurringRepository.
type RecurringRepository struct {
	pool *pgxpool.Pool
}

// NewRecurringRepository creates a new RecurringRepository.
func NewRecurringRepository(pool *pgxpool.Pool) *RecurringRepository {
	return &RecurringRepository{pool: pool}
}

const recurringColumns = `id, description, amount, type, debit_account, credit_account, category, contact, contact_type, frequency, next_run_at, active, created_at, updated_at`

// Create inserts a new recurring schedule.
func (r *RecurringRepository) Create(ctx context.Context, recurring *domain.RecurringTransaction) error {
	query := `
		INSERT INTO recurring_transactions (
			id, description, amount, type, debit_account, credit_account,
			category, contact, contact_type, frequency, next_run_at, active,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.pool.Exec(ctx, query,
		recurring.ID,
		recurring.Description,
		decimalToNumeric(recurring.Amount),
		string(recurring.Type),
		recurring.DebitAccount,
		recurring.CreditAccount,
		recurring.Category,
		recurring.Contact,
		string(recurring.ContactType),
		string(recurring.Frequency),
		timeToPgTimestamptz(recurring.NextRunAt),
		recurring.Active,
		timeToPgTimestamptz(recurring.CreatedAt),
		timeToPgTimestamptz(recurring.UpdatedAt),
	)

	return err
}

// GetByID retrieves a schedule by ID.
func (r *RecurringRepository) GetByID(ctx context.Context, id string) (*domain.RecurringTransaction, error) {
	query := `SELECT ` + recurringColumns + ` FROM recurring_transactions WHERE id = $1`

	recurring, err := scanRecurring(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecurringNotFound
		}

		return nil, err
	}

	return recurring, nil
}

// List retrieves schedules with pagination.
func (r *RecurringRepository) List(ctx context.Context, limit, offset int) ([]*domain.RecurringTransaction, error) {
	query := `SELECT ` + recurringColumns + ` FROM recurring_transactions ORDER BY next_run_at, id LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*domain.RecurringTransaction
	for rows.Next() {
		recurring, err := scanRecurring(rows)
		if err != nil {
			return nil, err
		}

		schedules = append(schedules, recurring)
	}

	return schedules, rows.Err()
}

// ListDue retrieves active schedules whose next run is at or before asOf.
func (r *RecurringRepository) ListDue(ctx context.Context, asOf time.Time) ([]*domain.RecurringTransaction, error) {
	query := `SELECT ` + recurringColumns + ` FROM recurring_transactions WHERE active AND next_run_at <= $1 ORDER BY next_run_at, id`

	rows, err := r.pool.Query(ctx, query, timeToPgTimestamptz(asOf))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*domain.RecurringTransaction
	for rows.Next() {
		recurring, err := scanRecurring(rows)
		if err != nil {
			return nil, err
		}

		schedules = append(schedules, recurring)
	}

	return schedules, rows.Err()
}

// UpdateNextRun advances a schedule to its next run time.
func (r *RecurringRepository) UpdateNextRun(ctx context.Context, id string, nextRunAt, updatedAt time.Time) error {
	query := `UPDATE recurring_transactions SET next_run_at = $2, updated_at = $3 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, timeToPgTimestamptz(nextRunAt), timeToPgTimestamptz(updatedAt))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecurringNotFound
	}

	return nil
}

func scanRecurring(row pgx.Row) (*domain.RecurringTransaction, error) {
	var (
		recurring   domain.RecurringTransaction
		txnType     string
		contactType string
		frequency   string
		amount      pgtype.Numeric
		nextRunAt   pgtype.Timestamptz
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)

	err := row.Scan(
		&recurring.ID,
		&recurring.Description,
		&amount,
		&txnType,
		&recurring.DebitAccount,
		&recurring.CreditAccount,
		&recurring.Category,
		&recurring.Contact,
		&contactType,
		&frequency,
		&nextRunAt,
		&recurring.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	recurring.Type = domain.TransactionType(txnType)
	recurring.ContactType = domain.ContactType(contactType)
	recurring.Frequency = domain.Frequency(frequency)
	recurring.Amount = numericToDecimal(amount)
	recurring.NextRunAt = nextRunAt.Time
	recurring.CreatedAt = createdAt.Time
	recurring.UpdatedAt = updatedAt.Time

	return &recurring, nil
}
