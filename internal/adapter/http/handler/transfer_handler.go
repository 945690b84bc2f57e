package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmarins/bankledger/internal/adapter/http/dto"
	"github.com/dmarins/bankledger/internal/usecase"
)

type transferService interface {
	CreateTransfer(ctx context.Context, input usecase.CreateTransferInput) (*usecase.TransferResult, error)
	ReverseTransfer(ctx context.Context, originalEntryID int64) (*usecase.ReversalResult, error)
}

// TransferHandler serves transfer and reversal endpoints.
type TransferHandler struct {
	service transferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(service transferService) *TransferHandler {
	return &TransferHandler{service: service}
}

// Create handles POST /api/v1/transfers.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	if req.OriginAccountID <= 0 || req.DestinationAccountID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "origin_account_id and destination_account_id must be positive")
		return
	}

	result, err := h.service.CreateTransfer(r.Context(), req.ToUseCaseInput())
	if err != nil {
		mapDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransferFromResult(result))
}

// Reverse handles POST /api/v1/transfers/{entryID}/reverse. The path
// id is the send entry of the transfer being undone.
func (h *TransferHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	entryID, err := parseIDParam(r, "entryID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	result, err := h.service.ReverseTransfer(r.Context(), entryID)
	if err != nil {
		mapDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ReversalFromResult(result))
}
