package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const transactionColumns = `id, date, description, amount, type, debit_account, credit_account, category, contact, contact_type, created_at`

// Create inserts a new transaction.
func (r *TransactionRepository) Create(ctx context.Context, transaction *domain.Transaction) error {
	query := `
		INSERT INTO transactions (
			id, date, description, amount, type,
			debit_account, credit_account, category, contact, contact_type, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		transaction.ID,
		timeToPgTimestamptz(transaction.Date),
		transaction.Description,
		decimalToNumeric(transaction.Amount),
		string(transaction.Type),
		transaction.DebitAccount,
		transaction.CreditAccount,
		transaction.Category,
		transaction.Contact,
		string(transaction.ContactType),
		timeToPgTimestamptz(transaction.CreatedAt),
	)

	return err
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	transaction, err := scanTransaction(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return transaction, nil
}

// List retrieves transactions with pagination, newest first.
func (r *TransactionRepository) List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date DESC, id DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}

		transactions = append(transactions, transaction)
	}

	return transactions, rows.Err()
}

// ListAll retrieves the whole ledger as a value slice for balance derivation.
func (r *TransactionRepository) ListAll(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}

		transactions = append(transactions, *transaction)
	}

	return transactions, rows.Err()
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		transaction domain.Transaction
		txnType     string
		contactType string
		date        pgtype.Timestamptz
		amount      pgtype.Numeric
		createdAt   pgtype.Timestamptz
	)

	err := row.Scan(
		&transaction.ID,
		&date,
		&transaction.Description,
		&amount,
		&txnType,
		&transaction.DebitAccount,
		&transaction.CreditAccount,
		&transaction.Category,
		&transaction.Contact,
		&contactType,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	transaction.Type = domain.TransactionType(txnType)
	transaction.ContactType = domain.ContactType(contactType)
	transaction.Date = date.Time
	transaction.Amount = numericToDecimal(amount)
	transaction.CreatedAt = createdAt.Time

	return &transaction, nil
}
