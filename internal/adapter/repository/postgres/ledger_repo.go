package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmarins/bankledger/internal/domain"
	"github.com/dmarins/bankledger/internal/infrastructure/postgres/generated"
)

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// FindInconsistentAccounts returns accounts whose stored balance
// differs from the signed sum of their entries.
func (r *LedgerRepository) FindInconsistentAccounts(ctx context.Context) ([]*domain.BalanceMismatch, error) {
	rows, err := r.queries.FindInconsistentAccounts(ctx)
	if err != nil {
		return nil, err
	}

	mismatches := make([]*domain.BalanceMismatch, 0, len(rows))
	for _, row := range rows {
		mismatches = append(mismatches, &domain.BalanceMismatch{
			AccountID: row.ID,
			Balance:   numericToDecimal(row.Balance),
			EntrySum:  numericToDecimal(row.EntrySum),
		})
	}

	return mismatches, nil
}
