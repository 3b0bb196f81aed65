package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidName    = errors.New("invalid name")
	ErrAmountTooLarge = errors.New("amount exceeds maximum allowed")
)

// Validation constants
const (
	MaxNameLength = 255
	MinNameLength = 1

	MaxAmount = "1000000000000" // 1 trillion

	DefaultPageLimit = 20
	MaxPageLimit     = 1000
)

// ValidateName validates an account or contact name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, MaxNameLength)
	}

	return nil
}

// ValidateAmount validates a posting amount. Amounts are non-negative by
// definition; direction lives on the debit/credit sides.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}

	max, _ := decimal.NewFromString(MaxAmount)
	if amount.GreaterThan(max) {
		return ErrAmountTooLarge
	}

	return nil
}

// ValidatePagination clamps limit and offset to sane bounds.
func ValidatePagination(limit, offset int) (int, int, error) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}

	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset, nil
}
