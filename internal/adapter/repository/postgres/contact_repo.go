package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
)

// ContactRepository implements usecase.ContactRepository.
type ContactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository creates a new ContactRepository.
func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

const contactColumns = `id, name, type, email, balance, created_at, updated_at`

// Create inserts a new contact.
func (r *ContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	query := `
		INSERT INTO contacts (id, name, type, email, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		contact.ID,
		contact.Name,
		string(contact.Type),
		contact.Email,
		decimalToNumeric(contact.Balance),
		timeToPgTimestamptz(contact.CreatedAt),
		timeToPgTimestamptz(contact.UpdatedAt),
	)

	return err
}

// GetByID retrieves a contact by ID.
func (r *ContactRepository) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`

	contact, err := scanContact(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContactNotFound
		}

		return nil, err
	}

	return contact, nil
}

// List retrieves contacts with pagination, ordered by name.
func (r *ContactRepository) List(ctx context.Context, limit, offset int) ([]*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts ORDER BY name, id LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*domain.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}

		contacts = append(contacts, contact)
	}

	return contacts, rows.Err()
}

// ListAll retrieves every contact as a value slice for ledger snapshots.
func (r *ContactRepository) ListAll(ctx context.Context) ([]domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts ORDER BY name, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}

		contacts = append(contacts, *contact)
	}

	return contacts, rows.Err()
}

func scanContact(row pgx.Row) (*domain.Contact, error) {
	var (
		contact     domain.Contact
		contactType string
		balance     pgtype.Numeric
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)

	err := row.Scan(
		&contact.ID,
		&contact.Name,
		&contactType,
		&contact.Email,
		&balance,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	contact.Type = domain.ContactType(contactType)
	contact.Balance = numericToDecimal(balance)
	contact.CreatedAt = createdAt.Time
	contact.UpdatedAt = updatedAt.Time

	return &contact, nil
}
