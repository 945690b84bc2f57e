package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmarins/bankledger/internal/domain"
)

// AccountUseCase handles account provisioning and queries. Reads go
// through an optional cache; the mutating ledger operations invalidate
// it after commit.
type AccountUseCase struct {
	accountRepo AccountRepository
	cache       Cache
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository) *AccountUseCase {
	return &AccountUseCase{accountRepo: accountRepo}
}

// WithCache enables read-through caching of account snapshots.
func (uc *AccountUseCase) WithCache(c Cache) *AccountUseCase {
	uc.cache = c
	return uc
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	UserID int64
}

// CreateAccount provisions a zero-balance active account for a user.
// Called once by the provisioning collaborator when the user signs up.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	now := time.Now().UTC()

	return uc.accountRepo.Create(ctx, &domain.Account{
		UserID:    input.UserID,
		Balance:   decimal.Zero,
		Status:    domain.AccountStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, accountCacheKey(id)); err == nil && data != nil {
			var account domain.Account
			if err := json.Unmarshal(data, &account); err == nil {
				return &account, nil
			}
		}
	}

	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(account); err == nil {
			_ = uc.cache.Set(ctx, accountCacheKey(id), data, AccountCacheTTL)
		}
	}

	return account, nil
}

// GetAccountByUser retrieves the account owned by a user.
func (uc *AccountUseCase) GetAccountByUser(ctx context.Context, userID int64) (*domain.Account, error) {
	return uc.accountRepo.GetByUserID(ctx, userID)
}

// UpdateStatus moves an account to a new lifecycle status.
func (uc *AccountUseCase) UpdateStatus(ctx context.Context, id int64, status domain.AccountStatus) (*domain.Account, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown account status %q", status)
	}

	if err := uc.accountRepo.UpdateStatus(ctx, id, status, time.Now().UTC()); err != nil {
		return nil, err
	}

	invalidateAccounts(ctx, uc.cache, id)

	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.accountRepo.List(ctx, limit, offset)
}
