package usecase

import (
	"context"
	"fmt"
	"time"
)

const (
	// AccountCacheTTL is how long cached account snapshots live.
	AccountCacheTTL = 30 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour
)

// accountCacheKey builds the cache key for an account snapshot.
func accountCacheKey(id int64) string {
	return fmt.Sprintf("account:%d", id)
}

// invalidateAccounts drops cached snapshots for the given accounts.
// Called after commit; a stale-delete failure is not worth failing
// the already-committed operation, so errors are discarded.
func invalidateAccounts(ctx context.Context, cache Cache, ids ...int64) {
	if cache == nil {
		return
	}

	for _, id := range ids {
		_ = cache.Delete(ctx, accountCacheKey(id))
	}
}

// runWithRetry executes op through the retrier when one is configured.
func runWithRetry(ctx context.Context, retrier Retrier, op func() error) error {
	if retrier == nil {
		return op()
	}

	return retrier.Retry(ctx, op)
}
