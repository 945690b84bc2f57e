package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmarins/bankledger/internal/domain"
)

// Reversal entry descriptions, one per side.
const (
	reversalReceivedDescription = "reversal received"
	reversalSentDescription     = "reversal sent"
)

// TransferUseCase moves money between two accounts and undoes prior
// transfers. Both operations lock the affected account pair in
// ascending id order inside a single transaction.
type TransferUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	entryRepo   EntryRepository
	outboxRepo  OutboxRepository
	idGen       IDGenerator
	retrier     Retrier
	cache       Cache
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	entryRepo EntryRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
) *TransferUseCase {
	return &TransferUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		outboxRepo:  outboxRepo,
		idGen:       idGen,
	}
}

// WithRetrier enables retries on transient database failures.
func (uc *TransferUseCase) WithRetrier(r Retrier) *TransferUseCase {
	uc.retrier = r
	return uc
}

// WithCache enables account snapshot invalidation after transfers.
func (uc *TransferUseCase) WithCache(c Cache) *TransferUseCase {
	uc.cache = c
	return uc
}

// CreateTransferInput represents input for creating a transfer.
type CreateTransferInput struct {
	OriginAccountID      int64
	DestinationAccountID int64
	Value                decimal.Decimal
	Description          string
}

// TransferResult carries the two entries produced by one transfer:
// the send entry on the origin account and the receive entry on the
// destination account.
type TransferResult struct {
	Sent     *domain.Entry
	Received *domain.Entry
}

// ReversalResult carries the two entries produced by one reversal:
// the credit back to the original sender and the debit on the
// original receiver.
type ReversalResult struct {
	SenderEntry   *domain.Entry
	ReceiverEntry *domain.Entry
}

// CreateTransfer debits the origin and credits the destination
// atomically, appending a linked send/receive entry pair.
func (uc *TransferUseCase) CreateTransfer(ctx context.Context, input CreateTransferInput) (*TransferResult, error) {
	if err := domain.ValidateTransferAmount(input.Value); err != nil {
		return nil, err
	}

	if input.OriginAccountID == input.DestinationAccountID {
		return nil, fmt.Errorf("%w: origin and destination are the same account", domain.ErrInvalidTransfer)
	}

	var result *TransferResult

	err := runWithRetry(ctx, uc.retrier, func() error {
		var opErr error

		result, opErr = uc.transfer(ctx, input)

		return opErr
	})
	if err != nil {
		return nil, err
	}

	invalidateAccounts(ctx, uc.cache, input.OriginAccountID, input.DestinationAccountID)

	return result, nil
}

func (uc *TransferUseCase) transfer(ctx context.Context, input CreateTransferInput) (*TransferResult, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	origin, destination, err := uc.lockPair(ctx, tx, input.OriginAccountID, input.DestinationAccountID)
	if err != nil {
		return nil, err
	}

	if !origin.CanTransact() {
		return nil, fmt.Errorf("%w: origin account %d is %s", domain.ErrInvalidTransfer, origin.ID, origin.Status)
	}

	if !destination.CanTransact() {
		return nil, fmt.Errorf("%w: destination account %d is %s", domain.ErrInvalidTransfer, destination.ID, destination.Status)
	}

	// Sufficient funds are judged on the locked balance only; any
	// balance the caller saw before this point is advisory.
	if err := origin.ValidateDebit(input.Value); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	originBalance := origin.ApplyDebit(input.Value)
	if err := uc.accountRepo.UpdateBalance(ctx, tx, origin.ID, originBalance, now); err != nil {
		return nil, err
	}

	sent, err := uc.entryRepo.Create(ctx, tx, &domain.Entry{
		AccountID:            origin.ID,
		OriginAccountID:      &origin.ID,
		DestinationAccountID: &destination.ID,
		Value:                input.Value,
		BalanceAfter:         originBalance,
		Type:                 domain.EntryTypeSend,
		Description:          input.Description,
		CreatedAt:            now,
	})
	if err != nil {
		return nil, err
	}

	destinationBalance := destination.ApplyCredit(input.Value)
	if err := uc.accountRepo.UpdateBalance(ctx, tx, destination.ID, destinationBalance, now); err != nil {
		return nil, err
	}

	received, err := uc.entryRepo.Create(ctx, tx, &domain.Entry{
		AccountID:            destination.ID,
		OriginAccountID:      &origin.ID,
		DestinationAccountID: &destination.ID,
		Value:                input.Value,
		BalanceAfter:         destinationBalance,
		Type:                 domain.EntryTypeReceive,
		Description:          input.Description,
		CreatedAt:            now,
	})
	if err != nil {
		return nil, err
	}

	err = uc.outboxRepo.Create(ctx, tx, &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   strconv.FormatInt(sent.ID, 10),
		AggregateType: domain.AggregateTypeEntry,
		EventType:     domain.EventTypeTransferCreated,
		Payload: map[string]any{
			"sent_entry_id":          sent.ID,
			"received_entry_id":      received.ID,
			"origin_account_id":      origin.ID,
			"destination_account_id": destination.ID,
			"value":                  input.Value.StringFixed(domain.MoneyScale),
		},
		CreatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &TransferResult{Sent: sent, Received: received}, nil
}

// ReverseTransfer replays a prior transfer in the opposite direction.
// Only send entries are reversible and each at most once; the second
// guard is both re-checked inside the transaction and enforced by a
// uniqueness constraint on the entry store.
func (uc *TransferUseCase) ReverseTransfer(ctx context.Context, originalEntryID int64) (*ReversalResult, error) {
	original, err := uc.entryRepo.GetByID(ctx, originalEntryID)
	if err != nil {
		return nil, err
	}

	if !original.Reversible() {
		return nil, fmt.Errorf("%w: entry %d has type %s", domain.ErrInvalidReversal, original.ID, original.Type)
	}

	var result *ReversalResult

	err = runWithRetry(ctx, uc.retrier, func() error {
		var opErr error

		result, opErr = uc.reverse(ctx, original)

		return opErr
	})
	if err != nil {
		return nil, err
	}

	invalidateAccounts(ctx, uc.cache, original.AccountID, *original.DestinationAccountID)

	return result, nil
}

func (uc *TransferUseCase) reverse(ctx context.Context, original *domain.Entry) (*ReversalResult, error) {
	senderID := original.AccountID
	receiverID := *original.DestinationAccountID
	value := original.Value

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	sender, receiver, err := uc.lockPair(ctx, tx, senderID, receiverID)
	if err != nil {
		return nil, err
	}

	// Checked after the locks so a loser in a concurrent reversal race
	// observes the winner's committed entry and reports the reversal as
	// already done, not as a balance problem.
	reversed, err := uc.entryRepo.HasReversal(ctx, tx, original.ID)
	if err != nil {
		return nil, err
	}

	if reversed {
		return nil, domain.ErrAlreadyReversed
	}

	// The receiver may have spent the money since the original
	// transfer; the reversal never drives a balance negative.
	if receiver.Balance.LessThan(value) {
		return nil, domain.ErrInsufficientBalanceForReversal
	}

	now := time.Now().UTC()

	receiverBalance := receiver.ApplyDebit(value)
	if err := uc.accountRepo.UpdateBalance(ctx, tx, receiver.ID, receiverBalance, now); err != nil {
		return nil, err
	}

	senderBalance := sender.ApplyCredit(value)
	if err := uc.accountRepo.UpdateBalance(ctx, tx, sender.ID, senderBalance, now); err != nil {
		return nil, err
	}

	// Reversal entries record the direction money actually moved:
	// receiver back to sender.
	senderEntry, err := uc.entryRepo.Create(ctx, tx, &domain.Entry{
		AccountID:            sender.ID,
		OriginAccountID:      &receiver.ID,
		DestinationAccountID: &sender.ID,
		Value:                value,
		BalanceAfter:         senderBalance,
		Type:                 domain.EntryTypeReversal,
		Description:          reversalReceivedDescription,
		RelatedEntryID:       &original.ID,
		CreatedAt:            now,
	})
	if err != nil {
		return nil, err
	}

	receiverEntry, err := uc.entryRepo.Create(ctx, tx, &domain.Entry{
		AccountID:            receiver.ID,
		OriginAccountID:      &receiver.ID,
		DestinationAccountID: &sender.ID,
		Value:                value,
		BalanceAfter:         receiverBalance,
		Type:                 domain.EntryTypeReversal,
		Description:          reversalSentDescription,
		RelatedEntryID:       &original.ID,
		CreatedAt:            now,
	})
	if err != nil {
		return nil, err
	}

	err = uc.outboxRepo.Create(ctx, tx, &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   strconv.FormatInt(original.ID, 10),
		AggregateType: domain.AggregateTypeEntry,
		EventType:     domain.EventTypeTransferReversed,
		Payload: map[string]any{
			"original_entry_id": original.ID,
			"sender_entry_id":   senderEntry.ID,
			"receiver_entry_id": receiverEntry.ID,
			"value":             value.StringFixed(domain.MoneyScale),
		},
		CreatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &ReversalResult{SenderEntry: senderEntry, ReceiverEntry: receiverEntry}, nil
}

// lockPair locks two accounts in ascending id order and returns them
// keyed by the caller's (first, second) argument order. Sorting before
// acquisition gives every operation the same total order over the lock
// space, which is what keeps opposing transfers deadlock-free.
func (uc *TransferUseCase) lockPair(ctx context.Context, tx Transaction, firstID, secondID int64) (*domain.Account, *domain.Account, error) {
	ids := []int64{firstID, secondID}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	accounts, err := uc.accountRepo.GetByIDsForUpdate(ctx, tx, ids)
	if err != nil {
		return nil, nil, err
	}

	if len(accounts) != len(ids) {
		return nil, nil, domain.ErrAccountNotFound
	}

	byID := make(map[int64]*domain.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}

	first, second := byID[firstID], byID[secondID]
	if first == nil || second == nil {
		return nil, nil, domain.ErrAccountNotFound
	}

	return first, second, nil
}
