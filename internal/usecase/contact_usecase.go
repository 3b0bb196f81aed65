package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/ledger"
)

// ContactUseCase handles customer and vendor business logic.
type ContactUseCase struct {
	contactRepo     ContactRepository
	invoiceRepo     InvoiceRepository
	transactionRepo TransactionRepository
	idGen           IDGenerator
}

// NewContactUseCase creates a new ContactUseCase.
func NewContactUseCase(
	contactRepo ContactRepository,
	invoiceRepo InvoiceRepository,
	transactionRepo TransactionRepository,
	idGen IDGenerator,
) *ContactUseCase {
	return &ContactUseCase{
		contactRepo:     contactRepo,
		invoiceRepo:     invoiceRepo,
		transactionRepo: transactionRepo,
		idGen:           idGen,
	}
}

// CreateContactInput represents input for creating a contact.
type CreateContactInput struct {
	Name  string
	Type  domain.ContactType
	Email string
}

// CreateContact creates a new contact.
func (uc *ContactUseCase) CreateContact(ctx context.Context, input CreateContactInput) (*domain.Contact, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	if !input.Type.IsValid() {
		return nil, domain.ErrInvalidContactType
	}

	now := time.Now().UTC()
	contact := &domain.Contact{
		ID:        uc.idGen.Generate(),
		Name:      input.Name,
		Type:      input.Type,
		Email:     input.Email,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

// GetContact retrieves a contact by ID.
func (uc *ContactUseCase) GetContact(ctx context.Context, id string) (*domain.Contact, error) {
	return uc.contactRepo.GetByID(ctx, id)
}

// ListContactsInput represents input for listing contacts.
type ListContactsInput struct {
	Limit  int
	Offset int
}

// ListContacts lists contacts with pagination.
func (uc *ContactUseCase) ListContacts(ctx context.Context, input ListContactsInput) ([]*domain.Contact, error) {
	limit, offset, _ := domain.ValidatePagination(clampLimit(input.Limit), input.Offset)
	return uc.contactRepo.List(ctx, limit, offset)
}

// GetBalance recomputes a contact's derived balance: accounts receivable for
// customers, accounts payable for vendors.
func (uc *ContactUseCase) GetBalance(ctx context.Context, id string) (decimal.Decimal, error) {
	contact, err := uc.contactRepo.GetByID(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}

	transactions, err := uc.transactionRepo.ListAll(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	switch contact.Type {
	case domain.ContactTypeCustomer:
		invoices, err := uc.invoiceRepo.ListAll(ctx)
		if err != nil {
			return decimal.Zero, err
		}

		return ledger.CustomerBalance(contact.ID, invoices, transactions), nil
	case domain.ContactTypeVendor:
		return ledger.VendorBalance(contact.ID, transactions), nil
	}

	return decimal.Zero, nil
}
