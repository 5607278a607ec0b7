package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelichko/spellsync/internal/logger"
	"github.com/avelichko/spellsync/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:     db,
		logger: logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var attemptColumns = []string{
	"id", "child_id", "word_id", "list_id", "mode", "correct",
	"typed_answer", "audio_ref", "started_at", "sync_state",
	"retry_count", "last_error",
}

func attemptRowArgs(a models.QueuedAttempt) []driver.Value {
	return []driver.Value{
		a.ID, a.ChildID, a.WordID, a.ListID, string(a.Mode), a.Correct,
		nullString(a.TypedAnswer), nullInt64(a.AudioRef),
		timeToDB(a.StartedAt), string(a.SyncState),
		a.RetryCount, nullString(a.LastError),
	}
}

func TestAttemptQueueRepositoryEnqueue(t *testing.T) {
	started := time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)
	typed := "becaus"
	audioRef := int64(7)

	tests := []struct {
		name    string
		attempt models.QueuedAttempt
		execErr error
		wantID  int64
		wantErr bool
	}{
		{
			name: "success: full attempt",
			attempt: models.QueuedAttempt{
				ChildID:     "child-1",
				WordID:      "word-9",
				ListID:      "list-3",
				Mode:        models.ModeSaySpell,
				Correct:     false,
				TypedAnswer: &typed,
				AudioRef:    &audioRef,
				StartedAt:   started,
				SyncState:   models.SyncStatePending,
			},
			wantID: 12,
		},
		{
			name: "success: empty sync state defaults to pending",
			attempt: models.QueuedAttempt{
				ChildID:   "child-1",
				WordID:    "word-9",
				ListID:    "list-3",
				Mode:      models.ModeListenType,
				Correct:   true,
				StartedAt: started,
			},
			wantID: 1,
		},
		{
			name: "error: insert fails",
			attempt: models.QueuedAttempt{
				ChildID:   "child-1",
				WordID:    "word-9",
				ListID:    "list-3",
				Mode:      models.ModeListenType,
				StartedAt: started,
			},
			execErr: errors.New("disk I/O error"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewAttemptQueueRepository(newDBFromSQL(db), logger.Nop())

			exp := mock.ExpectExec(regexp.QuoteMeta(insertAttempt))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(tt.wantID, 1))
			}

			id, err := repo.Enqueue(testContext(), tt.attempt)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAttemptQueueRepositoryGet(t *testing.T) {
	started := time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)

	t.Run("success: round-trips optional fields", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAttemptQueueRepository(newDBFromSQL(db), logger.Nop())

		typed := "becaus"
		audioRef := int64(4)
		lastErr := "http 503"
		want := models.QueuedAttempt{
			ID:          5,
			ChildID:     "child-1",
			WordID:      "word-2",
			ListID:      "list-1",
			Mode:        models.ModeListenType,
			Correct:     false,
			TypedAnswer: &typed,
			AudioRef:    &audioRef,
			StartedAt:   started,
			SyncState:   models.SyncStateFailed,
			RetryCount:  5,
			LastError:   &lastErr,
		}

		mock.ExpectQuery(regexp.QuoteMeta(getAttempt)).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(attemptColumns).AddRow(attemptRowArgs(want)...))

		got, err := repo.Get(testContext(), 5)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("success: nulls become nil pointers", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAttemptQueueRepository(newDBFromSQL(db), logger.Nop())

		want := models.QueuedAttempt{
			ID:        2,
			ChildID:   "child-1",
			WordID:    "word-2",
			ListID:    "list-1",
			Mode:      models.ModeSaySpell,
			Correct:   true,
			StartedAt: started,
			SyncState: models.SyncStatePending,
		}

		mock.ExpectQuery(regexp.QuoteMeta(getAttempt)).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(attemptColumns).AddRow(attemptRowArgs(want)...))

		got, err := repo.Get(testContext(), 2)
		require.NoError(t, err)
		assert.Nil(t, got.TypedAnswer)
		assert.Nil(t, got.AudioRef)
		assert.Nil(t, got.LastError)
		assert.Equal(t, want, got)
	})

	t.Run("error: not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAttemptQueueRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(getAttempt)).
			WithArgs(int64(404)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(testContext(), 404)
		assert.ErrorIs(t, err, ErrAttemptNotFound)
	})
}

func TestAttemptQueueRepositoryListByState(t *testing.T) {
	started := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("success: returns rows in insertion order", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAttemptQueueRepository(newDBFromSQL(db), logger.Nop())

		first := models.QueuedAttempt{
			ID: 1, ChildID: "c", WordID: "w1", ListID: "l",
			Mode: models.ModeListenType, Correct: true,
			StartedAt: started, SyncState: models.SyncStatePending,
		}
		second := models.QueuedAttempt{
			ID: 3, ChildID: "c", WordID: "w2", ListID: "l",
			Mode: models.ModeListenType, Correct: false,
			StartedAt: started.Add(time.Minute), SyncState: models.SyncStatePending,
		}

		mock.ExpectQuery(regexp.QuoteMeta(listAttemptsByState)).
			WithArgs(string(models.SyncStatePending)).
			WillReturnRows(sqlmock.NewRows(attemptColumns).
				AddRow(attemptRowArgs(first)...).
				AddRow(attemptRowArgs(second)...))

		got, err := repo.ListByState(testContext(), models.SyncStatePending)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first, got[0])
		assert.Equal(t, second, got[1])
	})

	t.Run("success: empty result is nil slice", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAttemptQueueRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(listAttemptsByState)).
			WithArgs(string(models.SyncStateFailed)).
			WillReturnRows(sqlmock.NewRows(attemptColumns))

		got, err := repo.ListByState(testContext(), models.SyncStateFailed)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("error: query fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAttemptQueueRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(listAttemptsByState)).
			WillReturnError(errors.New("database is locked"))

		_, err := repo.ListByState(testContext(), models.SyncStatePending)
		assert.Error(t, err)
	})

	t.Run("error: corrupt timestamp aborts the scan", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAttemptQueueRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(listAttemptsByState)).
			WillReturnRows(sqlmock.NewRows(attemptColumns).
				AddRow(int64(1), "c", "w", "l", "listen_type", true,
					nil, nil, "not-a-timestamp", "pending", 0, nil))

		_, err := repo.ListByState(testContext(), models.SyncStatePending)
		assert.Error(t, err)
	})
}

func TestAttemptQueueRepositoryCountByState(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAttemptQueueRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(countAttemptsByState)).
		WithArgs(string(models.SyncStatePending)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountByState(testContext(), models.SyncStatePending)
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestAttemptQueueRepositoryPatch(t *testing.T) {
	synced := models.SyncStateSynced
	failed := models.SyncStateFailed
	retries := 3
	lastErr := "http 500"

	tests := []struct {
		name      string
		patch     models.AttemptPatch
		wantQuery string
		wantArgs  []driver.Value
		affected  int64
		wantErr   error
	}{
		{
			name:      "success: mark synced and clear error",
			patch:     models.AttemptPatch{SyncState: &synced, ClearLastError: true},
			wantQuery: "UPDATE queued_attempts SET sync_state = ?, last_error = ? WHERE id = ?",
			wantArgs:  []driver.Value{"synced", nil, int64(9)},
			affected:  1,
		},
		{
			name:      "success: record retry failure",
			patch:     models.AttemptPatch{SyncState: &failed, RetryCount: &retries, LastError: &lastErr},
			wantQuery: "UPDATE queued_attempts SET sync_state = ?, retry_count = ?, last_error = ? WHERE id = ?",
			wantArgs:  []driver.Value{"failed", 3, "http 500", int64(9)},
			affected:  1,
		},
		{
			name:    "error: empty patch",
			patch:   models.AttemptPatch{},
			wantErr: ErrEmptyPatch,
		},
		{
			name:      "error: missing row",
			patch:     models.AttemptPatch{SyncState: &synced},
			wantQuery: "UPDATE queued_attempts SET sync_state = ? WHERE id = ?",
			wantArgs:  []driver.Value{"synced", int64(9)},
			affected:  0,
			wantErr:   ErrAttemptNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewAttemptQueueRepository(newDBFromSQL(db), logger.Nop())

			if tt.wantQuery != "" {
				mock.ExpectExec(regexp.QuoteMeta(tt.wantQuery)).
					WithArgs(tt.wantArgs...).
					WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.Patch(testContext(), 9, tt.patch)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAttemptQueueRepositoryDeleteByState(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAttemptQueueRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(deleteAttemptsByState)).
		WithArgs(string(models.SyncStateFailed)).
		WillReturnResult(sqlmock.NewResult(0, 4))

	removed, err := repo.DeleteByState(testContext(), models.SyncStateFailed)
	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
}
