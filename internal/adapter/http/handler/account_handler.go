package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmarins/bankledger/internal/adapter/http/dto"
	"github.com/dmarins/bankledger/internal/domain"
	"github.com/dmarins/bankledger/internal/usecase"
)

// accountService is the slice of AccountUseCase the handler needs.
type accountService interface {
	CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error)
	GetAccount(ctx context.Context, id int64) (*domain.Account, error)
	GetAccountByUser(ctx context.Context, userID int64) (*domain.Account, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AccountStatus) (*domain.Account, error)
	ListAccounts(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.Account, error)
}

// AccountHandler serves account endpoints.
type AccountHandler struct {
	service accountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service accountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// Create handles POST /api/v1/accounts.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	if req.UserID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "user_id must be positive")
		return
	}

	account, err := h.service.CreateAccount(r.Context(), req.ToUseCaseInput())
	if err != nil {
		mapDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.AccountFromDomain(account))
}

// Get handles GET /api/v1/accounts/{id}.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	account, err := h.service.GetAccount(r.Context(), id)
	if err != nil {
		mapDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// GetByUser handles GET /api/v1/users/{userID}/account.
func (h *AccountHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "userID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	account, err := h.service.GetAccountByUser(r.Context(), userID)
	if err != nil {
		mapDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// UpdateStatus handles PATCH /api/v1/accounts/{id}/status.
func (h *AccountHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	var req dto.UpdateAccountStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	status := domain.AccountStatus(req.Status)
	if !status.Valid() {
		writeError(w, http.StatusBadRequest, "invalid_request", "status must be active, inactive or blocked")
		return
	}

	account, err := h.service.UpdateStatus(r.Context(), id, status)
	if err != nil {
		mapDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// List handles GET /api/v1/accounts.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.ListAccounts(r.Context(), usecase.ListAccountsInput{
		Limit:  parseIntQuery(r, "limit", 0),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		mapDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountsFromDomain(accounts))
}
