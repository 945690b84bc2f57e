package handler

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

type transferServiceStub struct {
	createFn  func(ctx context.Context, input usecase.CreateTransferInput) (*usecase.TransferResult, error)
	reverseFn func(ctx context.Context, originalEntryID int64) (*usecase.ReversalResult, error)
}

func (s *transferServiceStub) CreateTransfer(ctx context.Context, input usecase.CreateTransferInput) (*usecase.TransferResult, error) {
	return s.createFn(ctx, input)
}

func (s *transferServiceStub) ReverseTransfer(ctx context.Context, originalEntryID int64) (*usecase.ReversalResult, error) {
	return s.reverseFn(ctx, originalEntryID)
}

func testEntry(id, accountID int64, entryType domain.EntryType) *domain.Entry {
	return &domain.Entry{
		ID:           id,
		AccountID:    accountID,
		Value:        decimal.RequireFromString("150.00"),
		BalanceAfter: decimal.RequireFromString("350.00"),
		Type:         entryType,
	}
}

func TestTransferHandler_Create_Success(t *testing.T) {
	var captured usecase.CreateTransferInput

	handler := NewTransferHandler(&transferServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransferInput) (*usecase.TransferResult, error) {
			captured = input
			return &usecase.TransferResult{
				Sent:     testEntry(10, input.OriginAccountID, domain.EntryTypeSend),
				Received: testEntry(11, input.DestinationAccountID, domain.EntryTypeReceive),
			}, nil
		},
	})

	body, _ := json.Marshal(dto.CreateTransferRequest{
		OriginAccountID:      1,
		DestinationAccountID: 2,
		Value:                decimal.RequireFromString("150.00"),
	})

	req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if captured.OriginAccountID != 1 || captured.DestinationAccountID != 2 {
		t.Fatalf("expected input to match request, got %+v", captured)
	}
	if !captured.Value.Equal(decimal.RequireFromString("150.00")) {
		t.Fatalf("expected value 150.00, got %s", captured.Value)
	}

	var resp dto.TransferResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Sent.ID != 10 || resp.Received.ID != 11 {
		t.Fatalf("unexpected entry ids: %+v", resp)
	}
	if resp.Sent.Type != "send" || resp.Received.Type != "receive" {
		t.Fatalf("unexpected entry types: %+v", resp)
	}
}

func TestTransferHandler_Create_InvalidBody(t *testing.T) {
	handler := NewTransferHandler(&transferServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransferInput) (*usecase.TransferResult, error) {
			t.Fatal("CreateTransfer should not be called")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewBufferString("{bad json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransferHandler_Create_MissingAccounts(t *testing.T) {
	handler := NewTransferHandler(&transferServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransferInput) (*usecase.TransferResult, error) {
			t.Fatal("CreateTransfer should not be called")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewBufferString(`{"value":"10.00"}`))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransferHandler_Create_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"insufficient balance", domain.ErrInsufficientBalance, http.StatusUnprocessableEntity},
		{"invalid transfer", domain.ErrInvalidTransfer, http.StatusBadRequest},
		{"destination missing", domain.ErrAccountNotFound, http.StatusNotFound},
		{"lock timeout", domain.ErrLockTimeout, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTransferHandler(&transferServiceStub{
				createFn: func(ctx context.Context, input usecase.CreateTransferInput) (*usecase.TransferResult, error) {
					return nil, tt.err
				},
			})

			body, _ := json.Marshal(dto.CreateTransferRequest{
				OriginAccountID:      1,
				DestinationAccountID: 2,
				Value:                decimal.RequireFromString("150.00"),
			})

			req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, rec.Code)
			}
		})
	}
}

func TestTransferHandler_Reverse_Success(t *testing.T) {
	var captured int64

	handler := NewTransferHandler(&transferServiceStub{
		reverseFn: func(ctx context.Context, originalEntryID int64) (*usecase.ReversalResult, error) {
			captured = originalEntryID
			return &usecase.ReversalResult{
				SenderEntry:   testEntry(20, 1, domain.EntryTypeReversal),
				ReceiverEntry: testEntry(21, 2, domain.EntryTypeReversal),
			}, nil
		},
	})

	req := setChiURLParam(httptest.NewRequest(http.MethodPost, "/transfers/50/reverse", nil), "entryID", "50")
	rec := httptest.NewRecorder()

	handler.Reverse(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if captured != 50 {
		t.Fatalf("expected entry 50, got %d", captured)
	}

	var resp dto.ReversalResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.SenderEntry.ID != 20 || resp.ReceiverEntry.ID != 21 {
		t.Fatalf("unexpected entry ids: %+v", resp)
	}
}

func TestTransferHandler_Reverse_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"entry not found", domain.ErrEntryNotFound, http.StatusNotFound},
		{"not reversible", domain.ErrInvalidReversal, http.StatusBadRequest},
		{"already reversed", domain.ErrAlreadyReversed, http.StatusConflict},
		{"receiver spent funds", domain.ErrInsufficientBalanceForReversal, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTransferHandler(&transferServiceStub{
				reverseFn: func(ctx context.Context, originalEntryID int64) (*usecase.ReversalResult, error) {
					return nil, tt.err
				},
			})

			req := setChiURLParam(httptest.NewRequest(http.MethodPost, "/transfers/50/reverse", nil), "entryID", "50")
			rec := httptest.NewRecorder()

			handler.Reverse(rec, req)

			if rec.Code != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, rec.Code)
			}
		})
	}
}

func TestTransferHandler_Reverse_InvalidID(t *testing.T) {
	handler := NewTransferHandler(&transferServiceStub{
		reverseFn: func(ctx context.Context, originalEntryID int64) (*usecase.ReversalResult, error) {
			t.Fatal("ReverseTransfer should not be called")
			return nil, nil
		},
	})

	req := setChiURLParam(httptest.NewRequest(http.MethodPost, "/transfers/abc/reverse", nil), "entryID", "abc")
	rec := httptest.NewRecorder()

	handler.Reverse(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
