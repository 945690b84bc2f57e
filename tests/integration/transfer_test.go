package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dmarins/bankledger/internal/adapter/http/dto"
	"github.com/dmarins/bankledger/internal/domain"
	"github.com/dmarins/bankledger/internal/usecase"
)

func TestTransfer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("transfer moves money and links both entries", func(t *testing.T) {
		env.reset(ctx, t)

		origin := env.db.CreateTestAccount(ctx, 1, decimal.RequireFromString("500.00"))
		destination := env.db.CreateTestAccount(ctx, 2, decimal.RequireFromString("100.00"))

		body, _ := json.Marshal(dto.CreateTransferRequest{
			OriginAccountID:      origin.ID,
			DestinationAccountID: destination.ID,
			Value:                decimal.RequireFromString("150.00"),
			Description:          "rent",
		})

		r := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", bytes.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		env.router.ServeHTTP(w, r)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var resp dto.TransferResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if resp.Sent.Type != "send" || resp.Received.Type != "receive" {
			t.Fatalf("unexpected entry types: %s/%s", resp.Sent.Type, resp.Received.Type)
		}
		if resp.Sent.BalanceAfter != "350.00" {
			t.Fatalf("expected origin balance_after 350.00, got %s", resp.Sent.BalanceAfter)
		}
		if resp.Received.BalanceAfter != "250.00" {
			t.Fatalf("expected destination balance_after 250.00, got %s", resp.Received.BalanceAfter)
		}
		if *resp.Sent.OriginAccountID != origin.ID || *resp.Sent.DestinationAccountID != destination.ID {
			t.Fatalf("send entry accounts wrong: %+v", resp.Sent)
		}
		if *resp.Received.OriginAccountID != origin.ID || *resp.Received.DestinationAccountID != destination.ID {
			t.Fatalf("receive entry accounts wrong: %+v", resp.Received)
		}

		originAfter, _ := env.accountUC.GetAccount(ctx, origin.ID)
		destinationAfter, _ := env.accountUC.GetAccount(ctx, destination.ID)

		if !originAfter.Balance.Equal(decimal.RequireFromString("350.00")) {
			t.Fatalf("expected origin 350.00, got %s", originAfter.Balance)
		}
		if !destinationAfter.Balance.Equal(decimal.RequireFromString("250.00")) {
			t.Fatalf("expected destination 250.00, got %s", destinationAfter.Balance)
		}
	})

	t.Run("insufficient balance leaves both accounts untouched", func(t *testing.T) {
		env.reset(ctx, t)

		origin := env.db.CreateTestAccount(ctx, 1, decimal.RequireFromString("100.00"))
		destination := env.db.CreateTestAccount(ctx, 2, decimal.Zero)

		_, err := env.transferUC.CreateTransfer(ctx, usecase.CreateTransferInput{
			OriginAccountID:      origin.ID,
			DestinationAccountID: destination.ID,
			Value:                decimal.RequireFromString("100.01"),
		})
		if err == nil {
			t.Fatal("expected transfer to fail")
		}

		originAfter, _ := env.accountUC.GetAccount(ctx, origin.ID)
		destinationAfter, _ := env.accountUC.GetAccount(ctx, destination.ID)

		if !originAfter.Balance.Equal(decimal.RequireFromString("100.00")) {
			t.Fatalf("expected origin unchanged, got %s", originAfter.Balance)
		}
		if !destinationAfter.Balance.IsZero() {
			t.Fatalf("expected destination unchanged, got %s", destinationAfter.Balance)
		}

		entries, _ := env.entryUC.GetStatement(ctx, usecase.GetStatementInput{AccountID: origin.ID})
		if len(entries) != 0 {
			t.Fatalf("expected no entries after failed transfer, got %d", len(entries))
		}
	})

	t.Run("exact balance transfers to zero", func(t *testing.T) {
		env.reset(ctx, t)

		origin := env.db.CreateTestAccount(ctx, 1, decimal.RequireFromString("100.00"))
		destination := env.db.CreateTestAccount(ctx, 2, decimal.Zero)

		result, err := env.transferUC.CreateTransfer(ctx, usecase.CreateTransferInput{
			OriginAccountID:      origin.ID,
			DestinationAccountID: destination.ID,
			Value:                decimal.RequireFromString("100.00"),
		})
		if err != nil {
			t.Fatalf("transfer failed: %v", err)
		}

		if !result.Sent.BalanceAfter.IsZero() {
			t.Fatalf("expected origin drained to zero, got %s", result.Sent.BalanceAfter)
		}
	})

	t.Run("blocked origin cannot transfer", func(t *testing.T) {
		env.reset(ctx, t)

		origin := env.db.CreateTestAccountWithStatus(ctx, 1, decimal.RequireFromString("500.00"), domain.AccountStatusBlocked)
		destination := env.db.CreateTestAccount(ctx, 2, decimal.Zero)

		body, _ := json.Marshal(dto.CreateTransferRequest{
			OriginAccountID:      origin.ID,
			DestinationAccountID: destination.ID,
			Value:                decimal.RequireFromString("50.00"),
		})

		r := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", bytes.NewReader(body))
		w := httptest.NewRecorder()

		env.router.ServeHTTP(w, r)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("statement lists entries newest first", func(t *testing.T) {
		env.reset(ctx, t)

		origin := env.db.CreateTestAccount(ctx, 1, decimal.RequireFromString("500.00"))
		destination := env.db.CreateTestAccount(ctx, 2, decimal.Zero)

		for i := 0; i < 3; i++ {
			if _, err := env.transferUC.CreateTransfer(ctx, usecase.CreateTransferInput{
				OriginAccountID:      origin.ID,
				DestinationAccountID: destination.ID,
				Value:                decimal.RequireFromString("10.00"),
			}); err != nil {
				t.Fatalf("transfer %d failed: %v", i, err)
			}
		}

		entries, err := env.entryUC.GetStatement(ctx, usecase.GetStatementInput{AccountID: origin.ID})
		if err != nil {
			t.Fatalf("statement failed: %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}
		for i := 1; i < len(entries); i++ {
			if entries[i-1].ID < entries[i].ID {
				t.Fatalf("expected descending ids, got %d before %d", entries[i-1].ID, entries[i].ID)
			}
		}
	})
}
