package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Code string `json:"code"`
}

// ToUseCaseInput converts the request to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name: r.Name,
		Type: domain.AccountType(r.Type),
		Code: r.Code,
	}
}

// CreateContactRequest represents a request to create a contact.
type CreateContactRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Email string `json:"email"`
}

// ToUseCaseInput converts the request to use case input.
func (r *CreateContactRequest) ToUseCaseInput() usecase.CreateContactInput {
	return usecase.CreateContactInput{
		Name:  r.Name,
		Type:  domain.ContactType(r.Type),
		Email: r.Email,
	}
}

// RecordTransactionRequest represents a request to post a transaction.
type RecordTransactionRequest struct {
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	DebitAccount  string          `json:"debit_account"`
	CreditAccount string          `json:"credit_account"`
	Category      string          `json:"category,omitempty"`
	Contact       string          `json:"contact,omitempty"`
	ContactType   string          `json:"contact_type,omitempty"`
}

// ToUseCaseInput converts the request to use case input.
func (r *RecordTransactionRequest) ToUseCaseInput() usecase.RecordTransactionInput {
	return usecase.RecordTransactionInput{
		Date:          r.Date,
		Description:   r.Description,
		Amount:        r.Amount,
		Type:          domain.TransactionType(r.Type),
		DebitAccount:  r.DebitAccount,
		CreditAccount: r.CreditAccount,
		Category:      r.Category,
		Contact:       r.Contact,
		ContactType:   domain.ContactType(r.ContactType),
	}
}

// CreateInvoiceRequest represents a request to create an invoice.
type CreateInvoiceRequest struct {
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	DueDate    time.Time       `json:"due_date"`
}

// ToUseCaseInput converts the request to use case input.
func (r *CreateInvoiceRequest) ToUseCaseInput() usecase.CreateInvoiceInput {
	return usecase.CreateInvoiceInput{
		CustomerID: r.CustomerID,
		Amount:     r.Amount,
		Date:       r.Date,
		DueDate:    r.DueDate,
	}
}

// UpdateInvoiceStatusRequest represents a request to move an invoice status.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status"`
}

// CreateRecurringRequest represents a request to create a schedule.
type CreateRecurringRequest struct {
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	DebitAccount  string          `json:"debit_account"`
	CreditAccount string          `json:"credit_account"`
	Category      string          `json:"category,omitempty"`
	Contact       string          `json:"contact,omitempty"`
	ContactType   string          `json:"contact_type,omitempty"`
	Frequency     string          `json:"frequency"`
	FirstRunAt    time.Time       `json:"first_run_at"`
}

// ToUseCaseInput converts the request to use case input.
func (r *CreateRecurringRequest) ToUseCaseInput() usecase.CreateRecurringInput {
	return usecase.CreateRecurringInput{
		Description:   r.Description,
		Amount:        r.Amount,
		Type:          domain.TransactionType(r.Type),
		DebitAccount:  r.DebitAccount,
		CreditAccount: r.CreditAccount,
		Category:      r.Category,
		Contact:       r.Contact,
		ContactType:   domain.ContactType(r.ContactType),
		Frequency:     domain.Frequency(r.Frequency),
		FirstRunAt:    r.FirstRunAt,
	}
}
