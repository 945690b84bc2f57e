package integration

import (
	"context"
	"net/http"
	"testing"

	adaptershttp "github.com/dmarins/bankledger/internal/adapter/http"
	"github.com/dmarins/bankledger/internal/adapter/http/handler"
	"github.com/dmarins/bankledger/internal/adapter/repository/postgres"
	"github.com/dmarins/bankledger/internal/infrastructure/logger"
	"github.com/dmarins/bankledger/internal/usecase"
	"github.com/dmarins/bankledger/tests/testutil"
)

// testEnv wires the full stack against a real database. Redis-backed
// pieces (cache, idempotency) are left out; they have their own
// miniredis-backed tests.
type testEnv struct {
	db         *testutil.TestDB
	router     http.Handler
	depositUC  *usecase.DepositUseCase
	transferUC *usecase.TransferUseCase
	ledgerUC   *usecase.LedgerUseCase
	entryUC    *usecase.EntryUseCase
	accountUC  *usecase.AccountUseCase
	outboxRepo *postgres.OutboxRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := testutil.NewTestDB(t)
	t.Cleanup(testDB.Cleanup)

	pool := testDB.Pool
	txManager := postgres.NewTxManager(pool, postgres.DefaultLockTimeout)
	accountRepo := postgres.NewAccountRepository(pool)
	entryRepo := postgres.NewEntryRepository(pool)
	outboxRepo := postgres.NewOutboxRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	idGen := postgres.NewULIDGenerator()
	retrier := postgres.NewRetrier()

	accountUC := usecase.NewAccountUseCase(accountRepo)
	depositUC := usecase.NewDepositUseCase(txManager, accountRepo, entryRepo, outboxRepo, idGen).
		WithRetrier(retrier)
	transferUC := usecase.NewTransferUseCase(txManager, accountRepo, entryRepo, outboxRepo, idGen).
		WithRetrier(retrier)
	entryUC := usecase.NewEntryUseCase(entryRepo)
	ledgerUC := usecase.NewLedgerUseCase(ledgerRepo)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		AccountHandler:  handler.NewAccountHandler(accountUC),
		DepositHandler:  handler.NewDepositHandler(depositUC),
		TransferHandler: handler.NewTransferHandler(transferUC),
		EntryHandler:    handler.NewEntryHandler(entryUC),
		LedgerHandler:   handler.NewLedgerHandler(ledgerUC),
		HealthHandler: handler.NewHealthHandler(map[string]handler.HealthChecker{
			"postgres": pool.Ping,
		}),
		Logger: logger.New(logger.Config{Level: "error", Format: "json"}),
	})

	return &testEnv{
		db:         testDB,
		router:     router,
		depositUC:  depositUC,
		transferUC: transferUC,
		ledgerUC:   ledgerUC,
		entryUC:    entryUC,
		accountUC:  accountUC,
		outboxRepo: outboxRepo,
	}
}

func (env *testEnv) reset(ctx context.Context, t *testing.T) {
	t.Helper()
	env.db.TruncateAll(ctx)
}
