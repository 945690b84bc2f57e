package handler

import (
	"context"
	"net/http"

	"github.com/dmarins/bankledger/internal/adapter/http/dto"
	"github.com/dmarins/bankledger/internal/domain"
	"github.com/dmarins/bankledger/internal/usecase"
)

type entryService interface {
	GetStatement(ctx context.Context, input usecase.GetStatementInput) ([]*domain.Entry, error)
	GetEntry(ctx context.Context, id int64) (*domain.Entry, error)
	GetReversals(ctx context.Context, entryID int64) ([]*domain.Entry, error)
}

// EntryHandler serves ledger entry endpoints.
type EntryHandler struct {
	service entryService
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(service entryService) *EntryHandler {
	return &EntryHandler{service: service}
}

// Statement handles GET /api/v1/accounts/{id}/entries.
func (h *EntryHandler) Statement(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	entries, err := h.service.GetStatement(r.Context(), usecase.GetStatementInput{
		AccountID: accountID,
		Limit:     parseIntQuery(r, "limit", 0),
		Offset:    parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		mapDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.EntriesFromDomain(entries))
}

// Get handles GET /api/v1/entries/{id}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	entry, err := h.service.GetEntry(r.Context(), id)
	if err != nil {
		mapDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromDomain(entry))
}

// Reversals handles GET /api/v1/entries/{id}/reversals.
func (h *EntryHandler) Reversals(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	entries, err := h.service.GetReversals(r.Context(), id)
	if err != nil {
		mapDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.EntriesFromDomain(entries))
}
