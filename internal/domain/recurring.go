package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is the cadence of a recurring transaction.
type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// IsValid reports whether f is a known frequency.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// Next returns the run time following from, one cadence step later.
func (f Frequency) Next(from time.Time) time.Time {
	switch f {
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case FrequencyMonthly:
		return from.AddDate(0, 1, 0)
	case FrequencyYearly:
		return from.AddDate(1, 0, 0)
	}
	return from
}

// RecurringTransaction is a template posted to the ledger on a schedule.
// Materializing a due schedule creates an ordinary Transaction and advances
// NextRunAt by the frequency.
type RecurringTransaction struct {
	ID            string
	Description   string
	Amount        decimal.Decimal
	Type          TransactionType
	DebitAccount  string
	CreditAccount string
	Category      string
	Contact       string
	ContactType   ContactType
	Frequency     Frequency
	NextRunAt     time.Time
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
