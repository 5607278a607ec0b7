package models

import "time"

// QueuedStarTransaction is one offline reward-point delta awaiting replay
// through the remote reward-application rpc.
type QueuedStarTransaction struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	Amount     int       `json:"amount"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
	SyncState  SyncState `json:"sync_state"`
	RetryCount int       `json:"retry_count"`
	LastError  *string   `json:"last_error,omitempty"`
}

// StarTransactionPatch is a partial update applied to a queued star row.
type StarTransactionPatch struct {
	SyncState      *SyncState
	RetryCount     *int
	LastError      *string
	ClearLastError bool
}

// StarTransaction is the rpc argument shape for applying a reward delta
// remotely. Amount may be negative.
type StarTransaction struct {
	UserID string `json:"user_id"`
	Amount int    `json:"amount"`
	Reason string `json:"reason"`
}
