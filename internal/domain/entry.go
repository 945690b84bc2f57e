package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies the balance effect a ledger entry records.
type EntryType string

const (
	EntryTypeDeposit  EntryType = "deposit"
	EntryTypeSend     EntryType = "send"
	EntryTypeReceive  EntryType = "receive"
	EntryTypeReversal EntryType = "reversal"
)

// Entry is an immutable record of a single balance effect on one account.
// Entries are only ever appended, never updated or deleted.
type Entry struct {
	ID                   int64
	AccountID            int64
	OriginAccountID      *int64
	DestinationAccountID *int64
	Value                decimal.Decimal
	BalanceAfter         decimal.Decimal
	Type                 EntryType
	Description          string
	RelatedEntryID       *int64
	CreatedAt            time.Time
}

// SignedValue returns the entry's effect on its account balance:
// positive for deposit, receive and the credited side of a reversal,
// negative for send and the debited side of a reversal.
func (e *Entry) SignedValue() decimal.Decimal {
	switch e.Type {
	case EntryTypeDeposit, EntryTypeReceive:
		return e.Value
	case EntryTypeSend:
		return e.Value.Neg()
	case EntryTypeReversal:
		if e.DestinationAccountID != nil && *e.DestinationAccountID == e.AccountID {
			return e.Value
		}

		return e.Value.Neg()
	}

	return decimal.Zero
}

// Reversible reports whether a reversal may target this entry.
// Only send entries qualify, which structurally rules out
// reversing a reversal.
func (e *Entry) Reversible() bool {
	return e.Type == EntryTypeSend && e.DestinationAccountID != nil
}

// BalanceMismatch describes an account whose stored balance disagrees
// with the sum of its signed entry values.
type BalanceMismatch struct {
	AccountID int64
	Balance   decimal.Decimal
	EntrySum  decimal.Decimal
}
