package models

// SyncState describes where a queued row is in its replay lifecycle.
// State only moves forward: pending rows become synced or failed, and a
// failed row returns to pending only through an explicit manual retry.
type SyncState string

const (
	// SyncStatePending marks a row that still has to be replayed against
	// the remote service.
	SyncStatePending SyncState = "pending"

	// SyncStateSynced marks a row that was successfully applied remotely.
	SyncStateSynced SyncState = "synced"

	// SyncStateFailed marks a row whose retries are exhausted. It is never
	// retried automatically again.
	SyncStateFailed SyncState = "failed"
)

// PracticeMode identifies how a spelling attempt was answered.
type PracticeMode string

const (
	ModeListenType PracticeMode = "listen_type"
	ModeSaySpell   PracticeMode = "say_spell"
	ModeOther      PracticeMode = "other"
)
