package integration

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmarins/bankledger/internal/domain"
	"github.com/dmarins/bankledger/internal/usecase"
)

func TestOutbox(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("ledger operations leave unpublished events", func(t *testing.T) {
		env.reset(ctx, t)

		a := env.db.CreateTestAccount(ctx, 1, decimal.Zero)
		b := env.db.CreateTestAccount(ctx, 2, decimal.Zero)

		if _, err := env.depositUC.Deposit(ctx, usecase.DepositInput{
			AccountID: a.ID,
			Value:     decimal.RequireFromString("300.00"),
		}); err != nil {
			t.Fatalf("deposit failed: %v", err)
		}

		transfer, err := env.transferUC.CreateTransfer(ctx, usecase.CreateTransferInput{
			OriginAccountID:      a.ID,
			DestinationAccountID: b.ID,
			Value:                decimal.RequireFromString("100.00"),
		})
		if err != nil {
			t.Fatalf("transfer failed: %v", err)
		}

		if _, err := env.transferUC.ReverseTransfer(ctx, transfer.Sent.ID); err != nil {
			t.Fatalf("reversal failed: %v", err)
		}

		events, err := env.outboxRepo.GetUnpublished(ctx, 10)
		if err != nil {
			t.Fatalf("failed to load outbox: %v", err)
		}
		if len(events) != 3 {
			t.Fatalf("expected 3 events, got %d", len(events))
		}

		types := map[string]int{}
		for _, e := range events {
			types[e.EventType]++
		}
		for _, want := range []string{
			domain.EventTypeDepositCreated,
			domain.EventTypeTransferCreated,
			domain.EventTypeTransferReversed,
		} {
			if types[want] != 1 {
				t.Fatalf("expected one %s event, got %d", want, types[want])
			}
		}
	})

	t.Run("failed operations write no events", func(t *testing.T) {
		env.reset(ctx, t)

		a := env.db.CreateTestAccount(ctx, 1, decimal.RequireFromString("50.00"))
		b := env.db.CreateTestAccount(ctx, 2, decimal.Zero)

		if _, err := env.transferUC.CreateTransfer(ctx, usecase.CreateTransferInput{
			OriginAccountID:      a.ID,
			DestinationAccountID: b.ID,
			Value:                decimal.RequireFromString("60.00"),
		}); err == nil {
			t.Fatal("expected transfer to fail")
		}

		events, err := env.outboxRepo.GetUnpublished(ctx, 10)
		if err != nil {
			t.Fatalf("failed to load outbox: %v", err)
		}
		if len(events) != 0 {
			t.Fatalf("expected no events, got %d", len(events))
		}
	})

	t.Run("marked events are not fetched again", func(t *testing.T) {
		env.reset(ctx, t)

		a := env.db.CreateTestAccount(ctx, 1, decimal.Zero)

		if _, err := env.depositUC.Deposit(ctx, usecase.DepositInput{
			AccountID: a.ID,
			Value:     decimal.RequireFromString("100.00"),
		}); err != nil {
			t.Fatalf("deposit failed: %v", err)
		}

		events, err := env.outboxRepo.GetUnpublished(ctx, 10)
		if err != nil || len(events) != 1 {
			t.Fatalf("expected one event, got %d (err %v)", len(events), err)
		}

		if err := env.outboxRepo.MarkPublished(ctx, events[0].ID, time.Now().UTC()); err != nil {
			t.Fatalf("failed to mark published: %v", err)
		}

		remaining, err := env.outboxRepo.GetUnpublished(ctx, 10)
		if err != nil {
			t.Fatalf("failed to load outbox: %v", err)
		}
		if len(remaining) != 0 {
			t.Fatalf("expected no unpublished events, got %d", len(remaining))
		}
	})
}
