package usecase

import (
	"context"

	"github.com/dmarins/bankledger/internal/domain"
)

// EntryUseCase serves statement queries over the append-only entries.
type EntryUseCase struct {
	entryRepo EntryRepository
}

// NewEntryUseCase creates a new EntryUseCase.
func NewEntryUseCase(entryRepo EntryRepository) *EntryUseCase {
	return &EntryUseCase{entryRepo: entryRepo}
}

// GetStatementInput represents input for a statement query.
type GetStatementInput struct {
	AccountID int64
	Limit     int
	Offset    int
}

// GetStatement lists an account's entries in reverse chronological order.
func (uc *EntryUseCase) GetStatement(ctx context.Context, input GetStatementInput) ([]*domain.Entry, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.entryRepo.GetByAccount(ctx, input.AccountID, limit, offset)
}

// GetEntry retrieves a single entry by ID.
func (uc *EntryUseCase) GetEntry(ctx context.Context, id int64) (*domain.Entry, error) {
	return uc.entryRepo.GetByID(ctx, id)
}

// GetReversals lists the reversal entries referencing an entry.
func (uc *EntryUseCase) GetReversals(ctx context.Context, entryID int64) ([]*domain.Entry, error) {
	return uc.entryRepo.GetReversals(ctx, entryID)
}
