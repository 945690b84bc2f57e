package usecase

import (
	"context"
	"errors"

	"github.com/dmarins/bankledger/internal/domain"
)

// ErrInconsistentLedger is returned when some account balance does
// not equal the sum of that account's signed entry values.
var ErrInconsistentLedger = errors.New("ledger is inconsistent: balances do not match entry history")

// LedgerUseCase handles ledger-wide operations.
type LedgerUseCase struct {
	ledgerRepo LedgerRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(ledgerRepo LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{ledgerRepo: ledgerRepo}
}

// CheckConsistency verifies that every account's balance equals the
// sum of its signed entries (deposit +, send -, receive +, reversal
// credit +, reversal debit -). Returns the mismatching accounts, if
// any, alongside ErrInconsistentLedger.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context) ([]*domain.BalanceMismatch, error) {
	mismatches, err := uc.ledgerRepo.FindInconsistentAccounts(ctx)
	if err != nil {
		return nil, err
	}

	if len(mismatches) > 0 {
		return mismatches, ErrInconsistentLedger
	}

	return nil, nil
}
