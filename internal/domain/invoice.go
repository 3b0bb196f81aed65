package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus tracks an invoice through its lifecycle.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// IsValid reports whether s is a known invoice status.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// Invoice represents an amount billed to a customer. Every status except paid
// counts toward the customer's receivable balance.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     decimal.Decimal
	Status     InvoiceStatus
	Date       time.Time
	DueDate    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
