package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmarins/bankledger/internal/domain"
	"github.com/dmarins/bankledger/internal/infrastructure/postgres/generated"
	"github.com/dmarins/bankledger/internal/usecase"
)

const (
	pgErrUniqueViolation = "23505"

	// Partial unique index allowing at most one reversal per
	// (original entry, account) pair.
	reversalUniqueConstraint = "uq_entries_one_reversal"
)

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create appends an entry within a transaction and returns it with
// the assigned id.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) (*domain.Entry, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.CreateEntry(ctx, generated.CreateEntryParams{
		AccountID:            entry.AccountID,
		OriginAccountID:      int64PtrToPgInt8(entry.OriginAccountID),
		DestinationAccountID: int64PtrToPgInt8(entry.DestinationAccountID),
		RelatedEntryID:       int64PtrToPgInt8(entry.RelatedEntryID),
		Value:                decimalToNumeric(entry.Value),
		BalanceAfter:         decimalToNumeric(entry.BalanceAfter),
		Type:                 string(entry.Type),
		Description:          entry.Description,
		CreatedAt:            timeToPgTimestamptz(entry.CreatedAt),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation && pgErr.ConstraintName == reversalUniqueConstraint {
			return nil, domain.ErrAlreadyReversed
		}

		return nil, err
	}

	return rowToEntry(row), nil
}

// GetByID retrieves an entry by ID.
func (r *EntryRepository) GetByID(ctx context.Context, id int64) (*domain.Entry, error) {
	row, err := r.queries.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	return rowToEntry(row), nil
}

// GetByAccount lists an account's entries, newest first.
func (r *EntryRepository) GetByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Entry, error) {
	rows, err := r.queries.GetEntriesByAccount(ctx, generated.GetEntriesByAccountParams{
		AccountID: accountID,
		Limit:     int32(limit),
		Offset:    int32(offset),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToEntry(row))
	}

	return entries, nil
}

// GetReversals lists the reversal entries referencing an entry.
func (r *EntryRepository) GetReversals(ctx context.Context, entryID int64) ([]*domain.Entry, error) {
	rows, err := r.queries.GetReversalsByEntry(ctx, int64PtrToPgInt8(&entryID))
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToEntry(row))
	}

	return entries, nil
}

// HasReversal reports whether a reversal referencing entryID exists,
// reading through the caller's transaction.
func (r *EntryRepository) HasReversal(ctx context.Context, tx usecase.Transaction, entryID int64) (bool, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	count, err := queries.CountReversalsByEntry(ctx, int64PtrToPgInt8(&entryID))
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func rowToEntry(row generated.Entry) *domain.Entry {
	return &domain.Entry{
		ID:                   row.ID,
		AccountID:            row.AccountID,
		OriginAccountID:      pgInt8ToInt64Ptr(row.OriginAccountID),
		DestinationAccountID: pgInt8ToInt64Ptr(row.DestinationAccountID),
		RelatedEntryID:       pgInt8ToInt64Ptr(row.RelatedEntryID),
		Value:                numericToDecimal(row.Value),
		BalanceAfter:         numericToDecimal(row.BalanceAfter),
		Type:                 domain.EntryType(row.Type),
		Description:          row.Description,
		CreatedAt:            row.CreatedAt.Time,
	}
}
