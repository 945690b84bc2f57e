package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount limits. All monetary values are fixed-point with scale 2.
const (
	MinDepositAmount = "1.00"
	MaxDepositAmount = "10000.00"
	MoneyScale       = 2
)

var (
	minDeposit = decimal.RequireFromString(MinDepositAmount)
	maxDeposit = decimal.RequireFromString(MaxDepositAmount)
)

// ValidateDepositAmount checks that value is a scale-2 decimal within
// the accepted deposit range.
func ValidateDepositAmount(value decimal.Decimal) error {
	if !validScale(value) {
		return fmt.Errorf("%w: at most %d decimal places allowed", ErrInvalidAmount, MoneyScale)
	}

	if value.LessThan(minDeposit) {
		return fmt.Errorf("%w: minimum deposit is %s", ErrInvalidAmount, MinDepositAmount)
	}

	if value.GreaterThan(maxDeposit) {
		return fmt.Errorf("%w: maximum deposit is %s", ErrInvalidAmount, MaxDepositAmount)
	}

	return nil
}

// ValidateTransferAmount checks that value is a positive scale-2 decimal.
func ValidateTransferAmount(value decimal.Decimal) error {
	if !validScale(value) {
		return fmt.Errorf("%w: at most %d decimal places allowed", ErrInvalidAmount, MoneyScale)
	}

	if value.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: transfer value must be positive", ErrInvalidAmount)
	}

	return nil
}

// ValidatePagination clamps pagination parameters to sane bounds.
func ValidatePagination(limit, offset int) (int, int) {
	const maxPageSize = 100
	const defaultPageSize = 20

	if limit <= 0 {
		limit = defaultPageSize
	}

	if limit > maxPageSize {
		limit = maxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}

func validScale(value decimal.Decimal) bool {
	return value.Equal(value.Truncate(MoneyScale))
}
