package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contact represents a customer or vendor.
//
// Balance is a cached receivable (customer) or payable (vendor) figure kept
// by the persistence layer; like Account.Balance it is advisory only.
type Contact struct {
	ID        string
	Name      string
	Type      ContactType
	Email     string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
