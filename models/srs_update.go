package models

import "time"

// QueuedSrsUpdate is one offline practice outcome pending spaced-repetition
// recalculation.
//
// The row is an intent, not a precomputed delta: the scheduler transition is
// applied against the authoritative remote state at flush time, so several
// offline outcomes for the same word accumulate correctly once replayed in
// order.
type QueuedSrsUpdate struct {
	ID                 int64     `json:"id"`
	ChildID            string    `json:"child_id"`
	WordID             string    `json:"word_id"`
	WasCorrectFirstTry bool      `json:"was_correct_first_try"`
	CreatedAt          time.Time `json:"created_at"`
	SyncState          SyncState `json:"sync_state"`
	RetryCount         int       `json:"retry_count"`
	LastError          *string   `json:"last_error,omitempty"`
}

// SrsUpdatePatch is a partial update applied to a queued SRS-update row.
type SrsUpdatePatch struct {
	SyncState      *SyncState
	RetryCount     *int
	LastError      *string
	ClearLastError bool
}
