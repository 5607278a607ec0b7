package store

import (
	"context"

	"github.com/avelichko/spellsync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// AttemptQueueRepository is the durable local queue of offline practice
// attempts awaiting replay.
type AttemptQueueRepository interface {
	// Enqueue inserts a new pending attempt and returns its generated id.
	Enqueue(ctx context.Context, attempt models.QueuedAttempt) (int64, error)
	// Get returns the attempt with the given id, or [ErrAttemptNotFound].
	Get(ctx context.Context, id int64) (models.QueuedAttempt, error)
	// ListByState returns all attempts in the given state, ordered by id.
	ListByState(ctx context.Context, state models.SyncState) ([]models.QueuedAttempt, error)
	// CountByState returns the number of attempts in the given state.
	CountByState(ctx context.Context, state models.SyncState) (int, error)
	// Patch applies a partial field update to the attempt with the given id.
	Patch(ctx context.Context, id int64, patch models.AttemptPatch) error
	// DeleteByState bulk-deletes all attempts in the given state and
	// returns the number of rows removed.
	DeleteByState(ctx context.Context, state models.SyncState) (int64, error)
}

// AudioQueueRepository is the durable local queue of practice recordings
// awaiting upload.
type AudioQueueRepository interface {
	// Enqueue inserts a new pending recording and returns its generated id.
	Enqueue(ctx context.Context, audio models.QueuedAudio) (int64, error)
	// Get returns the recording with the given id, or [ErrAudioNotFound].
	Get(ctx context.Context, id int64) (models.QueuedAudio, error)
	// ListByState returns all recordings in the given state, ordered by id.
	ListByState(ctx context.Context, state models.SyncState) ([]models.QueuedAudio, error)
	// CountByState returns the number of recordings in the given state.
	CountByState(ctx context.Context, state models.SyncState) (int, error)
	// Patch applies a partial field update to the recording with the given id.
	Patch(ctx context.Context, id int64, patch models.AudioPatch) error
	// DeleteByState bulk-deletes all recordings in the given state and
	// returns the number of rows removed.
	DeleteByState(ctx context.Context, state models.SyncState) (int64, error)
}

// SrsUpdateQueueRepository is the durable local queue of scheduler-update
// intents awaiting replay.
type SrsUpdateQueueRepository interface {
	Enqueue(ctx context.Context, update models.QueuedSrsUpdate) (int64, error)
	Get(ctx context.Context, id int64) (models.QueuedSrsUpdate, error)
	ListByState(ctx context.Context, state models.SyncState) ([]models.QueuedSrsUpdate, error)
	CountByState(ctx context.Context, state models.SyncState) (int, error)
	Patch(ctx context.Context, id int64, patch models.SrsUpdatePatch) error
	DeleteByState(ctx context.Context, state models.SyncState) (int64, error)
}

// StarTransactionQueueRepository is the durable local queue of reward-point
// deltas awaiting replay.
type StarTransactionQueueRepository interface {
	Enqueue(ctx context.Context, tx models.QueuedStarTransaction) (int64, error)
	Get(ctx context.Context, id int64) (models.QueuedStarTransaction, error)
	ListByState(ctx context.Context, state models.SyncState) ([]models.QueuedStarTransaction, error)
	CountByState(ctx context.Context, state models.SyncState) (int, error)
	Patch(ctx context.Context, id int64, patch models.StarTransactionPatch) error
	DeleteByState(ctx context.Context, state models.SyncState) (int64, error)
}
