package models

import "time"

// QueuedAttempt is one offline spelling-practice record awaiting replay.
//
// StartedAt doubles as the remote dedupe key together with ChildID and
// WordID, so it must survive storage round-trips at millisecond precision.
type QueuedAttempt struct {
	// ID is the local autoincrement identity of the queue row.
	ID int64 `json:"id"`

	// ChildID identifies the practising child profile.
	ChildID string `json:"child_id"`

	// WordID identifies the practised word.
	WordID string `json:"word_id"`

	// ListID identifies the word list the attempt belongs to.
	ListID string `json:"list_id"`

	// Mode is the practice mode the attempt was answered in.
	Mode PracticeMode `json:"mode"`

	// Correct reports whether the answer was right.
	Correct bool `json:"correct"`

	// TypedAnswer holds the literal answer for typed modes, nil otherwise.
	TypedAnswer *string `json:"typed_answer,omitempty"`

	// AudioRef is a weak reference to a QueuedAudio row id. The attempt may
	// only become synced after that audio row is synced; if the audio row
	// fails permanently the attempt fails with a derived error.
	AudioRef *int64 `json:"audio_ref,omitempty"`

	// StartedAt is when the attempt began. Part of the remote dedupe key.
	StartedAt time.Time `json:"started_at"`

	SyncState  SyncState `json:"sync_state"`
	RetryCount int       `json:"retry_count"`
	LastError  *string   `json:"last_error,omitempty"`
}

// AttemptPatch is a partial update applied to a queued attempt row.
// Nil fields are left untouched; ClearLastError resets last_error to NULL.
type AttemptPatch struct {
	SyncState      *SyncState
	RetryCount     *int
	LastError      *string
	ClearLastError bool
}

// RemoteAttempt is the row shape inserted into the remote attempts table
// once the queued attempt (and its audio dependency, if any) is resolved.
type RemoteAttempt struct {
	ChildID     string       `json:"child_id"`
	WordID      string       `json:"word_id"`
	ListID      string       `json:"list_id"`
	Mode        PracticeMode `json:"mode"`
	Correct     bool         `json:"correct"`
	TypedAnswer *string      `json:"typed_answer,omitempty"`
	AudioPath   *string      `json:"audio_path,omitempty"`
	StartedAt   time.Time    `json:"started_at"`
}
