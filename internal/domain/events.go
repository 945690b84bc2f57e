package domain

import "time"

// Event types
const (
	EventTypeDepositCreated   = "deposit.created"
	EventTypeTransferCreated  = "transfer.created"
	EventTypeTransferReversed = "transfer.reversed"
)

// Aggregate types
const (
	AggregateTypeAccount = "account"
	AggregateTypeEntry   = "entry"
)

// OutboxEvent represents an event to be published after commit.
// It is written in the same unit of work as the ledger mutation
// it describes.
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// DepositCreatedEvent payload
type DepositCreatedEvent struct {
	EntryID      int64  `json:"entry_id"`
	AccountID    int64  `json:"account_id"`
	Value        string `json:"value"`
	BalanceAfter string `json:"balance_after"`
}

// TransferCreatedEvent payload
type TransferCreatedEvent struct {
	SentEntryID          int64  `json:"sent_entry_id"`
	ReceivedEntryID      int64  `json:"received_entry_id"`
	OriginAccountID      int64  `json:"origin_account_id"`
	DestinationAccountID int64  `json:"destination_account_id"`
	Value                string `json:"value"`
}

// TransferReversedEvent payload
type TransferReversedEvent struct {
	OriginalEntryID int64  `json:"original_entry_id"`
	SenderEntryID   int64  `json:"sender_entry_id"`
	ReceiverEntryID int64  `json:"receiver_entry_id"`
	Value           string `json:"value"`
}
