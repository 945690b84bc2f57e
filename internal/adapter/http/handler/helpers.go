package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmarins/bankledger/internal/adapter/http/dto"
	"github.com/dmarins/bankledger/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{Error: code, Message: message})
}

// mapDomainError translates domain errors into HTTP responses.
func mapDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		writeError(w, http.StatusNotFound, "account_not_found", err.Error())
	case errors.Is(err, domain.ErrEntryNotFound):
		writeError(w, http.StatusNotFound, "entry_not_found", err.Error())
	case errors.Is(err, domain.ErrInvalidAmount):
		writeError(w, http.StatusBadRequest, "invalid_amount", err.Error())
	case errors.Is(err, domain.ErrInvalidTransfer):
		writeError(w, http.StatusBadRequest, "invalid_transfer", err.Error())
	case errors.Is(err, domain.ErrInvalidReversal):
		writeError(w, http.StatusBadRequest, "invalid_reversal", err.Error())
	case errors.Is(err, domain.ErrInsufficientBalance):
		writeError(w, http.StatusUnprocessableEntity, "insufficient_balance", err.Error())
	case errors.Is(err, domain.ErrInsufficientBalanceForReversal):
		writeError(w, http.StatusUnprocessableEntity, "insufficient_balance_for_reversal", err.Error())
	case errors.Is(err, domain.ErrAlreadyReversed):
		writeError(w, http.StatusConflict, "already_reversed", err.Error())
	case errors.Is(err, domain.ErrLockTimeout):
		writeError(w, http.StatusServiceUnavailable, "lock_timeout", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "an unexpected error occurred")
	}
}

// parseIDParam reads a positive int64 URL parameter.
func parseIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid " + name)
	}

	return id, nil
}

// parseIntQuery reads an integer query parameter, falling back to def
// when absent or malformed.
func parseIntQuery(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	return v
}
