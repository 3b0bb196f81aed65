package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/ledger"
)

// AccountUseCase handles chart-of-accounts business logic.
type AccountUseCase struct {
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	idGen           IDGenerator
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, transactionRepo TransactionRepository, idGen IDGenerator) *AccountUseCase {
	return &AccountUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		idGen:           idGen,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Name string
	Type domain.AccountType
	Code string
}

// CreateAccount creates a new account.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	if !input.Type.IsValid() {
		return nil, domain.ErrInvalidAccountType
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:        uc.idGen.Generate(),
		Name:      input.Name,
		Type:      input.Type,
		Code:      input.Code,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	limit, offset, _ := domain.ValidatePagination(clampLimit(input.Limit), input.Offset)
	return uc.accountRepo.List(ctx, limit, offset)
}

// GetBalance recomputes an account's balance from the full transaction
// ledger. The cached Balance column on the account row is never trusted.
func (uc *AccountUseCase) GetBalance(ctx context.Context, id string) (decimal.Decimal, error) {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}

	transactions, err := uc.transactionRepo.ListAll(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	return ledger.AccountBalance(account.ID, account.Type, transactions), nil
}
