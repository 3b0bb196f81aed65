package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
)

// InvoiceUseCase handles invoice business logic.
type InvoiceUseCase struct {
	invoiceRepo InvoiceRepository
	contactRepo ContactRepository
	idGen       IDGenerator
}

// NewInvoiceUseCase creates a new InvoiceUseCase.
func NewInvoiceUseCase(invoiceRepo InvoiceRepository, contactRepo ContactRepository, idGen IDGenerator) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo: invoiceRepo,
		contactRepo: contactRepo,
		idGen:       idGen,
	}
}

// CreateInvoiceInput represents input for creating an invoice.
type CreateInvoiceInput struct {
	CustomerID string
	Amount     decimal.Decimal
	Date       time.Time
	DueDate    time.Time
}

// CreateInvoice creates a new draft invoice for a customer.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	contact, err := uc.contactRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	if contact.Type != domain.ContactTypeCustomer {
		return nil, domain.ErrInvalidContactType
	}

	now := time.Now().UTC()

	date := input.Date
	if date.IsZero() {
		date = now
	}

	invoice := &domain.Invoice{
		ID:         uc.idGen.Generate(),
		CustomerID: input.CustomerID,
		Amount:     input.Amount,
		Status:     domain.InvoiceStatusDraft,
		Date:       date,
		DueDate:    input.DueDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}

// GetInvoice retrieves an invoice by ID.
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, id string) (*domain.Invoice, error) {
	return uc.invoiceRepo.GetByID(ctx, id)
}

// ListInvoicesInput represents input for listing invoices.
type ListInvoicesInput struct {
	CustomerID string
	Limit      int
	Offset     int
}

// ListInvoices lists invoices, optionally filtered by customer.
func (uc *InvoiceUseCase) ListInvoices(ctx context.Context, input ListInvoicesInput) ([]*domain.Invoice, error) {
	limit, offset, _ := domain.ValidatePagination(clampLimit(input.Limit), input.Offset)

	if input.CustomerID != "" {
		return uc.invoiceRepo.ListByCustomer(ctx, input.CustomerID, limit, offset)
	}

	return uc.invoiceRepo.List(ctx, limit, offset)
}

// UpdateStatus moves an invoice to a new lifecycle status.
func (uc *InvoiceUseCase) UpdateStatus(ctx context.Context, id string, status domain.InvoiceStatus) (*domain.Invoice, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidInvoiceStatus
	}

	invoice, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := uc.invoiceRepo.UpdateStatus(ctx, id, status, now); err != nil {
		return nil, err
	}

	invoice.Status = status
	invoice.UpdatedAt = now

	return invoice, nil
}
