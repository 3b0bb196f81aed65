package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidAccountType = errors.New("invalid account type")

	// Contact errors
	ErrContactNotFound    = errors.New("contact not found")
	ErrInvalidContactType = errors.New("invalid contact type")

	// Transaction errors
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrNegativeAmount         = errors.New("amount must not be negative")

	// Invoice errors
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvalidInvoiceStatus = errors.New("invalid invoice status")

	// Recurring transaction errors
	ErrRecurringNotFound = errors.New("recurring transaction not found")
	ErrInvalidFrequency  = errors.New("invalid frequency")
)
