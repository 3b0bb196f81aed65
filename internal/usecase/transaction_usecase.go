package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
)

// TransactionUseCase handles ledger posting business logic.
type TransactionUseCase struct {
	transactionRepo TransactionRepository
	idGen           IDGenerator
	retrier         Retrier
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(transactionRepo TransactionRepository, idGen IDGenerator, retrier Retrier) *TransactionUseCase {
	return &TransactionUseCase{
		transactionRepo: transactionRepo,
		idGen:           idGen,
		retrier:         retrier,
	}
}

// RecordTransactionInput represents input for posting a transaction.
type RecordTransactionInput struct {
	Date          time.Time
	Description   string
	Amount        decimal.Decimal
	Type          domain.TransactionType
	DebitAccount  string
	CreditAccount string
	Category      string
	Contact       string
	ContactType   domain.ContactType
}

// RecordTransaction validates and posts a transaction to the ledger.
func (uc *TransactionUseCase) RecordTransaction(ctx context.Context, input RecordTransactionInput) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	if !input.Type.IsValid() {
		return nil, domain.ErrInvalidTransactionType
	}

	if input.ContactType != "" && !input.ContactType.IsValid() {
		return nil, domain.ErrInvalidContactType
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	transaction := &domain.Transaction{
		ID:            uc.idGen.Generate(),
		Date:          date,
		Description:   input.Description,
		Amount:        input.Amount,
		Type:          input.Type,
		DebitAccount:  input.DebitAccount,
		CreditAccount: input.CreditAccount,
		Category:      input.Category,
		Contact:       input.Contact,
		ContactType:   input.ContactType,
		CreatedAt:     time.Now().UTC(),
	}

	err := uc.retrier.Retry(ctx, func() error {
		return uc.transactionRepo.Create(ctx, transaction)
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

// GetTransaction retrieves a transaction by ID.
func (uc *TransactionUseCase) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return uc.transactionRepo.GetByID(ctx, id)
}

// ListTransactionsInput represents input for listing transactions.
type ListTransactionsInput struct {
	Limit  int
	Offset int
}

// ListTransactions lists transactions with pagination.
func (uc *TransactionUseCase) ListTransactions(ctx context.Context, input ListTransactionsInput) ([]*domain.Transaction, error) {
	limit, offset, _ := domain.ValidatePagination(clampLimit(input.Limit), input.Offset)
	return uc.transactionRepo.List(ctx, limit, offset)
}
