package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmarins/bankledger/internal/adapter/http/dto"
	"github.com/dmarins/bankledger/internal/domain"
	"github.com/dmarins/bankledger/internal/usecase"
)

type entryServiceStub struct {
	statementFn func(ctx context.Context, input usecase.GetStatementInput) ([]*domain.Entry, error)
	getFn       func(ctx context.Context, id int64) (*domain.Entry, error)
	reversalsFn func(ctx context.Context, entryID int64) ([]*domain.Entry, error)
}

func (s *entryServiceStub) GetStatement(ctx context.Context, input usecase.GetStatementInput) ([]*domain.Entry, error) {
	return s.statementFn(ctx, input)
}

func (s *entryServiceStub) GetEntry(ctx context.Context, id int64) (*domain.Entry, error) {
	return s.getFn(ctx, id)
}

func (s *entryServiceStub) GetReversals(ctx context.Context, entryID int64) ([]*domain.Entry, error) {
	return s.reversalsFn(ctx, entryID)
}

func TestEntryHandler_Statement_PassesPagination(t *testing.T) {
	var captured usecase.GetStatementInput

	handler := NewEntryHandler(&entryServiceStub{
		statementFn: func(ctx context.Context, input usecase.GetStatementInput) ([]*domain.Entry, error) {
			captured = input
			return []*domain.Entry{
				testEntry(2, input.AccountID, domain.EntryTypeDeposit),
				testEntry(1, input.AccountID, domain.EntryTypeDeposit),
			}, nil
		},
	})

	req := setChiURLParam(httptest.NewRequest(http.MethodGet, "/accounts/3/entries?limit=10&offset=20", nil), "id", "3")
	rec := httptest.NewRecorder()

	handler.Statement(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.AccountID != 3 || captured.Limit != 10 || captured.Offset != 20 {
		t.Fatalf("expected input 3/10/20, got %+v", captured)
	}

	var resp []*dto.EntryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp))
	}
}

func TestEntryHandler_Get_NotFound(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		getFn: func(ctx context.Context, id int64) (*domain.Entry, error) {
			return nil, domain.ErrEntryNotFound
		},
	})

	req := setChiURLParam(httptest.NewRequest(http.MethodGet, "/entries/9", nil), "id", "9")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestEntryHandler_Reversals_Success(t *testing.T) {
	handler := NewEntryHandler(&entryServiceStub{
		reversalsFn: func(ctx context.Context, entryID int64) ([]*domain.Entry, error) {
			if entryID != 50 {
				t.Fatalf("expected entry 50, got %d", entryID)
			}

			return []*domain.Entry{
				testEntry(60, 1, domain.EntryTypeReversal),
				testEntry(61, 2, domain.EntryTypeReversal),
			}, nil
		},
	})

	req := setChiURLParam(httptest.NewRequest(http.MethodGet, "/entries/50/reversals", nil), "id", "50")
	rec := httptest.NewRecorder()

	handler.Reversals(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []*dto.EntryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 reversal entries, got %d", len(resp))
	}
}
