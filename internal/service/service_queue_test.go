package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avelichko/spellsync/internal/logger"
	"github.com/avelichko/spellsync/internal/mock"
	"github.com/avelichko/spellsync/internal/store"
	"github.com/avelichko/spellsync/internal/telemetry"
	"github.com/avelichko/spellsync/models"
)

func TestEnqueueAttempt_CountsQueued(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attempts := mock.NewMockAttemptQueueRepository(ctrl)
	hub := telemetry.NewHub(logger.Nop())
	svc := NewQueueService(&store.ClientStorages{Attempts: attempts}, hub, "owner-1", logger.Nop())

	attempt := models.QueuedAttempt{ChildID: "c1", WordID: "w1", Mode: models.ModeListenType}
	attempts.EXPECT().Enqueue(gomock.Any(), attempt).Return(int64(42), nil)

	id, err := svc.EnqueueAttempt(context.Background(), attempt)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, 1, hub.Snapshot().Counters[telemetry.KindAttempts].Queued)
}

func TestEnqueueRecording_BuildsObjectKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	audio := mock.NewMockAudioQueueRepository(ctrl)
	hub := telemetry.NewHub(logger.Nop())
	svc := NewQueueService(&store.ClientStorages{Audio: audio}, hub, "owner-1", logger.Nop())

	recordedAt := time.UnixMilli(1773998813589).UTC()
	audio.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got models.QueuedAudio) (int64, error) {
			assert.Equal(t, "owner-1/list-1/word-1_1773998813589.webm", got.Filename)
			assert.Equal(t, []byte{1, 2, 3}, got.Data)
			return 7, nil
		})

	id, err := svc.EnqueueRecording(context.Background(), "list-1", "word-1", []byte{1, 2, 3}, recordedAt, "webm")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, 1, hub.Snapshot().Counters[telemetry.KindAudio].Queued)
}

func TestEnqueue_StoreErrorLeavesCountersUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srsUpdates := mock.NewMockSrsUpdateQueueRepository(ctrl)
	hub := telemetry.NewHub(logger.Nop())
	svc := NewQueueService(&store.ClientStorages{SrsUpdates: srsUpdates}, hub, "owner-1", logger.Nop())

	srsUpdates.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("database is locked"))

	_, err := svc.EnqueueSrsUpdate(context.Background(), models.QueuedSrsUpdate{ChildID: "c1", WordID: "w1"})
	require.Error(t, err)
	assert.Zero(t, hub.Snapshot().Counters[telemetry.KindSrsUpdates].Queued)
}

func TestEnqueueStarTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stars := mock.NewMockStarTransactionQueueRepository(ctrl)
	hub := telemetry.NewHub(logger.Nop())
	svc := NewQueueService(&store.ClientStorages{StarTransactions: stars}, hub, "owner-1", logger.Nop())

	tx := models.QueuedStarTransaction{UserID: "u1", Amount: 2, Reason: "practice_complete"}
	stars.EXPECT().Enqueue(gomock.Any(), tx).Return(int64(9), nil)

	id, err := svc.EnqueueStarTransaction(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	assert.Equal(t, 1, hub.Snapshot().Counters[telemetry.KindStarTransactions].Queued)
}
