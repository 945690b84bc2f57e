package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmarins/bankledger/internal/domain"
)

// DepositUseCase credits a single account and records the entry.
type DepositUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	entryRepo   EntryRepository
	outboxRepo  OutboxRepository
	idGen       IDGenerator
	retrier     Retrier
	cache       Cache
}

// NewDepositUseCase creates a new DepositUseCase.
func NewDepositUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	entryRepo EntryRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
) *DepositUseCase {
	return &DepositUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		outboxRepo:  outboxRepo,
		idGen:       idGen,
	}
}

// WithRetrier enables retries on transient database failures.
func (uc *DepositUseCase) WithRetrier(r Retrier) *DepositUseCase {
	uc.retrier = r
	return uc
}

// WithCache enables account snapshot invalidation after deposits.
func (uc *DepositUseCase) WithCache(c Cache) *DepositUseCase {
	uc.cache = c
	return uc
}

// DepositInput represents input for a deposit.
type DepositInput struct {
	AccountID   int64
	Value       decimal.Decimal
	Description string
}

// Deposit credits the account by input.Value and appends one deposit
// entry, atomically. The single-row lock, the balance update and the
// entry write share one transaction so a crash can never leave a
// balance change without its entry or vice versa.
func (uc *DepositUseCase) Deposit(ctx context.Context, input DepositInput) (*domain.Entry, error) {
	if err := domain.ValidateDepositAmount(input.Value); err != nil {
		return nil, err
	}

	var entry *domain.Entry

	err := runWithRetry(ctx, uc.retrier, func() error {
		var opErr error

		entry, opErr = uc.deposit(ctx, input)

		return opErr
	})
	if err != nil {
		return nil, err
	}

	invalidateAccounts(ctx, uc.cache, input.AccountID)

	return entry, nil
}

func (uc *DepositUseCase) deposit(ctx context.Context, input DepositInput) (*domain.Entry, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, input.AccountID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	newBalance := account.ApplyCredit(input.Value)

	if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, newBalance, now); err != nil {
		return nil, err
	}

	entry, err := uc.entryRepo.Create(ctx, tx, &domain.Entry{
		AccountID:    account.ID,
		Value:        input.Value,
		BalanceAfter: newBalance,
		Type:         domain.EntryTypeDeposit,
		Description:  input.Description,
		CreatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	err = uc.outboxRepo.Create(ctx, tx, &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   strconv.FormatInt(account.ID, 10),
		AggregateType: domain.AggregateTypeAccount,
		EventType:     domain.EventTypeDepositCreated,
		Payload: map[string]any{
			"entry_id":      entry.ID,
			"account_id":    account.ID,
			"value":         input.Value.StringFixed(domain.MoneyScale),
			"balance_after": newBalance.StringFixed(domain.MoneyScale),
		},
		CreatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}
