package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmarins/bankledger/internal/adapter/http/dto"
	"github.com/dmarins/bankledger/internal/domain"
	"github.com/dmarins/bankledger/internal/usecase"
)

type ledgerService interface {
	CheckConsistency(ctx context.Context) ([]*domain.BalanceMismatch, error)
}

// LedgerHandler serves ledger-wide endpoints.
type LedgerHandler struct {
	service ledgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(service ledgerService) *LedgerHandler {
	return &LedgerHandler{service: service}
}

// CheckConsistency handles GET /api/v1/ledger/consistency. A
// consistent ledger answers 200; mismatches come back as 409 with the
// offending accounts listed.
func (h *LedgerHandler) CheckConsistency(w http.ResponseWriter, r *http.Request) {
	mismatches, err := h.service.CheckConsistency(r.Context())
	if err != nil && !errors.Is(err, usecase.ErrInconsistentLedger) {
		mapDomainError(w, err)
		return
	}

	status := http.StatusOK
	if len(mismatches) > 0 {
		status = http.StatusConflict
	}

	writeJSON(w, status, dto.ConsistencyFromDomain(mismatches))
}
