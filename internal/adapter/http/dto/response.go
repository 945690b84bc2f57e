package dto

import (
	"time"

	"github.com/dmarins/bankledger/internal/domain"
	"github.com/dmarins/bankledger/internal/usecase"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Balance   string    `json:"balance"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Balance:   a.Balance.StringFixed(domain.MoneyScale),
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AccountsFromDomain converts a slice of domain accounts.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	out := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = AccountFromDomain(a)
	}

	return out
}

// EntryResponse represents a ledger entry in API responses.
type EntryResponse struct {
	ID                   int64     `json:"id"`
	AccountID            int64     `json:"account_id"`
	OriginAccountID      *int64    `json:"origin_account_id,omitempty"`
	DestinationAccountID *int64    `json:"destination_account_id,omitempty"`
	Value                string    `json:"value"`
	BalanceAfter         string    `json:"balance_after"`
	Type                 string    `json:"type"`
	Description          string    `json:"description,omitempty"`
	RelatedEntryID       *int64    `json:"related_entry_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.Entry) *EntryResponse {
	return &EntryResponse{
		ID:                   e.ID,
		AccountID:            e.AccountID,
		OriginAccountID:      e.OriginAccountID,
		DestinationAccountID: e.DestinationAccountID,
		Value:                e.Value.StringFixed(domain.MoneyScale),
		BalanceAfter:         e.BalanceAfter.StringFixed(domain.MoneyScale),
		Type:                 string(e.Type),
		Description:          e.Description,
		RelatedEntryID:       e.RelatedEntryID,
		CreatedAt:            e.CreatedAt,
	}
}

// EntriesFromDomain converts a slice of domain entries.
func EntriesFromDomain(entries []*domain.Entry) []*EntryResponse {
	out := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		out[i] = EntryFromDomain(e)
	}

	return out
}

// TransferResponse carries both entries of a completed transfer.
type TransferResponse struct {
	Sent     *EntryResponse `json:"sent"`
	Received *EntryResponse `json:"received"`
}

// TransferFromResult converts a transfer result to a response.
func TransferFromResult(r *usecase.TransferResult) *TransferResponse {
	return &TransferResponse{
		Sent:     EntryFromDomain(r.Sent),
		Received: EntryFromDomain(r.Received),
	}
}

// ReversalResponse carries both entries of a completed reversal.
type ReversalResponse struct {
	SenderEntry   *EntryResponse `json:"sender_entry"`
	ReceiverEntry *EntryResponse `json:"receiver_entry"`
}

// ReversalFromResult converts a reversal result to a response.
func ReversalFromResult(r *usecase.ReversalResult) *ReversalResponse {
	return &ReversalResponse{
		SenderEntry:   EntryFromDomain(r.SenderEntry),
		ReceiverEntry: EntryFromDomain(r.ReceiverEntry),
	}
}

// BalanceMismatchResponse describes one account failing the
// consistency check.
type BalanceMismatchResponse struct {
	AccountID int64  `json:"account_id"`
	Balance   string `json:"balance"`
	EntrySum  string `json:"entry_sum"`
}

// ConsistencyResponse represents the result of a ledger consistency check.
type ConsistencyResponse struct {
	Consistent bool                       `json:"consistent"`
	Mismatches []*BalanceMismatchResponse `json:"mismatches,omitempty"`
}

// ConsistencyFromDomain converts mismatches to a response.
func ConsistencyFromDomain(mismatches []*domain.BalanceMismatch) *ConsistencyResponse {
	resp := &ConsistencyResponse{Consistent: len(mismatches) == 0}
	for _, m := range mismatches {
		resp.Mismatches = append(resp.Mismatches, &BalanceMismatchResponse{
			AccountID: m.AccountID,
			Balance:   m.Balance.StringFixed(domain.MoneyScale),
			EntrySum:  m.EntrySum.StringFixed(domain.MoneyScale),
		})
	}

	return resp
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
