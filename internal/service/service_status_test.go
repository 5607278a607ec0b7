package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avelichko/spellsync/internal/logger"
	"github.com/avelichko/spellsync/internal/mock"
	"github.com/avelichko/spellsync/internal/store"
	"github.com/avelichko/spellsync/internal/telemetry"
	"github.com/avelichko/spellsync/models"
)

type spySyncService struct {
	calls int
	err   error
}

func (s *spySyncService) SyncAll(context.Context) error {
	s.calls++
	return s.err
}

type statusTestEnv struct {
	svc      StatusService
	hub      *telemetry.Hub
	attempts *mock.MockAttemptQueueRepository
	audio    *mock.MockAudioQueueRepository
	srs      *mock.MockSrsUpdateQueueRepository
	stars    *mock.MockStarTransactionQueueRepository
	conn     *stubConnectivity
	sync     *spySyncService
}

func newTestStatusEnv(t *testing.T, ctrl *gomock.Controller) *statusTestEnv {
	t.Helper()

	env := &statusTestEnv{
		hub:      telemetry.NewHub(logger.Nop()),
		attempts: mock.NewMockAttemptQueueRepository(ctrl),
		audio:    mock.NewMockAudioQueueRepository(ctrl),
		srs:      mock.NewMockSrsUpdateQueueRepository(ctrl),
		stars:    mock.NewMockStarTransactionQueueRepository(ctrl),
		conn:     &stubConnectivity{online: true},
		sync:     &spySyncService{},
	}

	storages := &store.ClientStorages{
		Attempts:         env.attempts,
		Audio:            env.audio,
		SrsUpdates:       env.srs,
		StarTransactions: env.stars,
	}

	env.svc = NewStatusService(storages, env.hub, env.conn, env.sync, logger.Nop())
	return env
}

func (env *statusTestEnv) expectCounts(state models.SyncState, attempts, audio, srs, stars int) {
	env.attempts.EXPECT().CountByState(gomock.Any(), state).Return(attempts, nil)
	env.audio.EXPECT().CountByState(gomock.Any(), state).Return(audio, nil)
	env.srs.EXPECT().CountByState(gomock.Any(), state).Return(srs, nil)
	env.stars.EXPECT().CountByState(gomock.Any(), state).Return(stars, nil)
}

func TestGetStatus_AggregatesQueuesAndTelemetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestStatusEnv(t, ctrl)
	env.expectCounts(models.SyncStatePending, 2, 1, 3, 0)
	env.expectCounts(models.SyncStateFailed, 0, 1, 0, 0)
	env.hub.RecordError("audio", "http 503")

	status := env.svc.GetStatus(context.Background())

	assert.True(t, status.Online)
	assert.False(t, status.SyncInProgress)
	assert.Equal(t, 6, status.Counts.Pending.Total)
	assert.Equal(t, 3, status.Counts.Pending.SrsUpdates)
	assert.Equal(t, 1, status.Counts.Failed.Audio)
	require.Len(t, status.RecentErrors, 1)
	assert.Equal(t, "http 503", status.RecentErrors[0].Message)
}

func TestGetStatus_CountReadErrorDegradesToZeros(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestStatusEnv(t, ctrl)
	env.attempts.EXPECT().CountByState(gomock.Any(), models.SyncStatePending).Return(4, nil)
	env.audio.EXPECT().CountByState(gomock.Any(), models.SyncStatePending).
		Return(0, errors.New("database is locked"))
	env.expectCounts(models.SyncStateFailed, 0, 0, 0, 0)

	status := env.svc.GetStatus(context.Background())

	assert.Equal(t, models.KindCounts{}, status.Counts.Pending, "a failing read zeroes the whole view")
	assert.Zero(t, status.Counts.Failed.Total)
}

func TestManualSync_OfflineShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestStatusEnv(t, ctrl)
	env.conn.online = false

	err := env.svc.ManualSync(context.Background())
	assert.ErrorIs(t, err, ErrOffline)
	assert.Zero(t, env.sync.calls)
}

func TestManualSync_DelegatesWhenOnline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestStatusEnv(t, ctrl)

	require.NoError(t, env.svc.ManualSync(context.Background()))
	assert.Equal(t, 1, env.sync.calls)
}

func TestRetryItem_ResetsStateAndBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestStatusEnv(t, ctrl)
	env.audio.EXPECT().Patch(gomock.Any(), int64(12), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, patch models.AudioPatch) error {
			require.NotNil(t, patch.SyncState)
			assert.Equal(t, models.SyncStatePending, *patch.SyncState)
			require.NotNil(t, patch.RetryCount)
			assert.Zero(t, *patch.RetryCount)
			assert.True(t, patch.ClearLastError)
			return nil
		})

	require.NoError(t, env.svc.RetryItem(context.Background(), models.QueueAudio, 12))
}

func TestRetryItem_UnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestStatusEnv(t, ctrl)

	err := env.svc.RetryItem(context.Background(), models.QueueKind("words"), 1)
	assert.ErrorIs(t, err, ErrUnknownQueueKind)
}

func TestClearFailed_SumsAcrossQueues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestStatusEnv(t, ctrl)
	env.attempts.EXPECT().DeleteByState(gomock.Any(), models.SyncStateFailed).Return(int64(2), nil)
	env.audio.EXPECT().DeleteByState(gomock.Any(), models.SyncStateFailed).Return(int64(1), nil)
	env.srs.EXPECT().DeleteByState(gomock.Any(), models.SyncStateFailed).Return(int64(0), nil)
	env.stars.EXPECT().DeleteByState(gomock.Any(), models.SyncStateFailed).Return(int64(3), nil)

	removed, err := env.svc.ClearFailed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(6), removed)
}

func TestClearFailed_StopsOnFirstError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestStatusEnv(t, ctrl)
	env.attempts.EXPECT().DeleteByState(gomock.Any(), models.SyncStateFailed).Return(int64(2), nil)
	env.audio.EXPECT().DeleteByState(gomock.Any(), models.SyncStateFailed).
		Return(int64(0), errors.New("database is locked"))

	removed, err := env.svc.ClearFailed(context.Background())
	require.Error(t, err)
	assert.Equal(t, int64(2), removed, "partial progress is reported")
}
