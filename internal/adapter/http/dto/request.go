package dto

import (
	"github.com/shopspring/decimal"

	"github.com/dmarins/bankledger/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	UserID int64 `json:"user_id"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		UserID: r.UserID,
	}
}

// UpdateAccountStatusRequest represents a request to change an
// account's lifecycle status.
type UpdateAccountStatusRequest struct {
	Status string `json:"status"`
}

// DepositRequest represents a request to deposit into an account.
type DepositRequest struct {
	AccountID   int64           `json:"account_id"`
	Value       decimal.Decimal `json:"value"`
	Description string          `json:"description,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *DepositRequest) ToUseCaseInput() usecase.DepositInput {
	return usecase.DepositInput{
		AccountID:   r.AccountID,
		Value:       r.Value,
		Description: r.Description,
	}
}

// CreateTransferRequest represents a request to create a transfer.
type CreateTransferRequest struct {
	OriginAccountID      int64           `json:"origin_account_id"`
	DestinationAccountID int64           `json:"destination_account_id"`
	Value                decimal.Decimal `json:"value"`
	Description          string          `json:"description,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransferRequest) ToUseCaseInput() usecase.CreateTransferInput {
	return usecase.CreateTransferInput{
		OriginAccountID:      r.OriginAccountID,
		DestinationAccountID: r.DestinationAccountID,
		Value:                r.Value,
		Description:          r.Description,
	}
}
