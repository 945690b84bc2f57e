package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmarins/bankledger/internal/adapter/http/dto"
	"github.com/dmarins/bankledger/internal/domain"
	"github.com/dmarins/bankledger/internal/usecase"
)

type depositService interface {
	Deposit(ctx context.Context, input usecase.DepositInput) (*domain.Entry, error)
}

// DepositHandler serves deposit endpoints.
type DepositHandler struct {
	service depositService
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(service depositService) *DepositHandler {
	return &DepositHandler{service: service}
}

// Create handles POST /api/v1/deposits.
func (h *DepositHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	if req.AccountID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "account_id must be positive")
		return
	}

	entry, err := h.service.Deposit(r.Context(), req.ToUseCaseInput())
	if err != nil {
		mapDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(entry))
}
