package integration

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dmarins/bankledger/internal/usecase"
)

func TestConsistencyCheck(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("ledger built from operations is consistent", func(t *testing.T) {
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
			Value:                decimal.RequireFromString("120.00"),
		})
		if err != nil {
			t.Fatalf("transfer failed: %v", err)
		}

		if _, err := env.transferUC.ReverseTransfer(ctx, transfer.Sent.ID); err != nil {
			t.Fatalf("reversal failed: %v", err)
		}

		mismatches, err := env.ledgerUC.CheckConsistency(ctx)
		if err != nil {
			t.Fatalf("expected consistent ledger, got %v", err)
		}
		if len(mismatches) != 0 {
			t.Fatalf("expected no mismatches, got %d", len(mismatches))
		}

		r := httptest.NewRequest(http.MethodGet, "/api/v1/ledger/consistency", nil)
		w := httptest.NewRecorder()

		env.router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("tampered balance is reported", func(t *testing.T) {
		env.reset(ctx, t)

		account := env.db.CreateTestAccount(ctx, 1, decimal.Zero)

		if _, err := env.depositUC.Deposit(ctx, usecase.DepositInput{
			AccountID: account.ID,
			Value:     decimal.RequireFromString("100.00"),
		}); err != nil {
			t.Fatalf("deposit failed: %v", err)
		}

		// Corrupt the balance behind the ledger's back.
		if _, err := env.db.Pool.Exec(ctx, "UPDATE accounts SET balance = 999.00 WHERE id = $1", account.ID); err != nil {
			t.Fatalf("failed to tamper with balance: %v", err)
		}

		mismatches, err := env.ledgerUC.CheckConsistency(ctx)
		if !errors.Is(err, usecase.ErrInconsistentLedger) {
			t.Fatalf("expected ErrInconsistentLedger, got %v", err)
		}
		if len(mismatches) != 1 {
			t.Fatalf("expected one mismatch, got %d", len(mismatches))
		}
		if mismatches[0].AccountID != account.ID {
			t.Fatalf("expected account %d flagged, got %d", account.ID, mismatches[0].AccountID)
		}
		if !mismatches[0].EntrySum.Equal(decimal.RequireFromString("100.00")) {
			t.Fatalf("expected entry sum 100.00, got %s", mismatches[0].EntrySum)
		}

		r := httptest.NewRequest(http.MethodGet, "/api/v1/ledger/consistency", nil)
		w := httptest.NewRecorder()

		env.router.ServeHTTP(w, r)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
