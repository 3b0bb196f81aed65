package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
)

// RecurringUseCase handles recurring transaction schedules.
type RecurringUseCase struct {
	recurringRepo   RecurringRepository
	transactionRepo TransactionRepository
	idGen           IDGenerator
}

// NewRecurringUseCase creates a new RecurringUseCase.
func NewRecurringUseCase(recurringRepo RecurringRepository, transactionRepo TransactionRepository, idGen IDGenerator) *RecurringUseCase {
	return &RecurringUseCase{
		recurringRepo:   recurringRepo,
		transactionRepo: transactionRepo,
		idGen:           idGen,
	}
}

// CreateRecurringInput represents input for creating a schedule.
type CreateRecurringInput struct {
	Description   string
	Amount        decimal.Decimal
	Type          domain.TransactionType
	DebitAccount  string
	CreditAccount string
	Category      string
	Contact       string
	ContactType   domain.ContactType
	Frequency     domain.Frequency
	FirstRunAt    time.Time
}

// CreateRecurring creates a new recurring transaction schedule.
func (uc *RecurringUseCase) CreateRecurring(ctx context.Context, input CreateRecurringInput) (*domain.RecurringTransaction, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	if !input.Type.IsValid() {
		return nil, domain.ErrInvalidTransactionType
	}

	if !input.Frequency.IsValid() {
		return nil, domain.ErrInvalidFrequency
	}

	now := time.Now().UTC()

	firstRun := input.FirstRunAt
	if firstRun.IsZero() {
		firstRun = now
	}

	recurring := &domain.RecurringTransaction{
		ID:            uc.idGen.Generate(),
		Description:   input.Description,
		Amount:        input.Amount,
		Type:          input.Type,
		DebitAccount:  input.DebitAccount,
		CreditAccount: input.CreditAccount,
		Category:      input.Category,
		Contact:       input.Contact,
		ContactType:   input.ContactType,
		Frequency:     input.Frequency,
		NextRunAt:     firstRun,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.recurringRepo.Create(ctx, recurring); err != nil {
		return nil, err
	}

	return recurring, nil
}

// ListRecurringInput represents input for listing schedules.
type ListRecurringInput struct {
	Limit  int
	Offset int
}

// ListRecurring lists schedules with pagination.
func (uc *RecurringUseCase) ListRecurring(ctx context.Context, input ListRecurringInput) ([]*domain.RecurringTransaction, error) {
	limit, offset, _ := domain.ValidatePagination(clampLimit(input.Limit), input.Offset)
	return uc.recurringRepo.List(ctx, limit, offset)
}

// MaterializeDue posts every active schedule whose NextRunAt has passed as an
// ordinary transaction and advances the schedule by its frequency. A schedule
// that is several periods behind is posted once per call; repeated calls
// catch it up. Returns the number of transactions posted.
func (uc *RecurringUseCase) MaterializeDue(ctx context.Context, now time.Time) (int, error) {
	due, err := uc.recurringRepo.ListDue(ctx, now)
	if err != nil {
		return 0, err
	}

	posted := 0

	for _, schedule := range due {
		transaction := &domain.Transaction{
			ID:            uc.idGen.Generate(),
			Date:          schedule.NextRunAt,
			Description:   schedule.Description,
			Amount:        schedule.Amount,
			Type:          schedule.Type,
			DebitAccount:  schedule.DebitAccount,
			CreditAccount: schedule.CreditAccount,
			Category:      schedule.Category,
			Contact:       schedule.Contact,
			ContactType:   schedule.ContactType,
			CreatedAt:     now,
		}

		if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
			return posted, fmt.Errorf("failed to post schedule %s: %w", schedule.ID, err)
		}

		nextRun := schedule.Frequency.Next(schedule.NextRunAt)
		if err := uc.recurringRepo.UpdateNextRun(ctx, schedule.ID, nextRun, now); err != nil {
			return posted, fmt.Errorf("failed to advance schedule %s: %w", schedule.ID, err)
		}

		posted++
	}

	return posted, nil
}
