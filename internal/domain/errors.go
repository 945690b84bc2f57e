package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")

	// Deposit and transfer errors
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidTransfer     = errors.New("invalid transfer")
	ErrInsufficientBalance = errors.New("insufficient balance")

	// Reversal errors
	ErrEntryNotFound                  = errors.New("ledger entry not found")
	ErrInvalidReversal                = errors.New("entry is not a reversible send")
	ErrAlreadyReversed                = errors.New("transfer already reversed")
	ErrInsufficientBalanceForReversal = errors.New("insufficient balance for reversal")

	// Contention errors
	ErrLockTimeout = errors.New("timed out waiting for account lock")
)
