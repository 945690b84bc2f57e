package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus is the closed set of lifecycle states an account can be in.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
	AccountStatusBlocked  AccountStatus = "blocked"
)

// Valid reports whether s is a known account status.
func (s AccountStatus) Valid() bool {
	switch s {
	case AccountStatusActive, AccountStatusInactive, AccountStatusBlocked:
		return true
	}

	return false
}

// Account holds the authoritative balance for a single owner.
type Account struct {
	ID        int64
	UserID    int64
	Balance   decimal.Decimal
	Status    AccountStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanTransact reports whether the account may participate in a transfer.
// Only active accounts qualify.
func (a *Account) CanTransact() bool {
	return a.Status == AccountStatusActive
}

// ValidateDebit checks that the account holds at least amount.
// Must be called on a locked snapshot, never on a pre-lock read.
func (a *Account) ValidateDebit(amount decimal.Decimal) error {
	if a.Balance.LessThan(amount) {
		return ErrInsufficientBalance
	}

	return nil
}

// ApplyDebit returns the balance after subtracting amount.
func (a *Account) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}

// ApplyCredit returns the balance after adding amount.
func (a *Account) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}
