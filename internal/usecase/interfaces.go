package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmarins/bankledger/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id int64) (*domain.Account, error)
	// GetByIDsForUpdate acquires row locks on the given accounts in
	// ascending id order, regardless of the order of ids.
	GetByIDsForUpdate(ctx context.Context, tx Transaction, ids []int64) ([]*domain.Account, error)
	UpdateBalance(ctx context.Context, tx Transaction, id int64, balance decimal.Decimal, updatedAt time.Time) error
	UpdateStatus(ctx context.Context, id int64, status domain.AccountStatus, updatedAt time.Time) error
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

// EntryRepository defines data access for the append-only ledger entries.
type EntryRepository interface {
	// Create appends an entry and returns it with its assigned id.
	Create(ctx context.Context, tx Transaction, entry *domain.Entry) (*domain.Entry, error)
	GetByID(ctx context.Context, id int64) (*domain.Entry, error)
	GetByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Entry, error)
	GetReversals(ctx context.Context, entryID int64) ([]*domain.Entry, error)
	// HasReversal reports whether a reversal entry referencing entryID
	// already exists. It reads through tx so the answer is consistent
	// with the caller's unit of work.
	HasReversal(ctx context.Context, tx Transaction, entryID int64) (bool, error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
}

// LedgerRepository defines ledger-wide queries.
type LedgerRepository interface {
	// FindInconsistentAccounts returns every account whose stored
	// balance differs from the sum of its signed entry values.
	FindInconsistentAccounts(ctx context.Context) ([]*domain.BalanceMismatch, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique string IDs (outbox events).
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs an operation on transient database failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
