package store

import (
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelichko/spellsync/internal/logger"
	"github.com/avelichko/spellsync/models"
)

var starTransactionColumns = []string{
	"id", "user_id", "amount", "reason", "created_at",
	"sync_state", "retry_count", "last_error",
}

func starTransactionRowArgs(tx models.QueuedStarTransaction) []driver.Value {
	return []driver.Value{
		tx.ID, tx.UserID, tx.Amount, tx.Reason,
		timeToDB(tx.CreatedAt), string(tx.SyncState),
		tx.RetryCount, nullString(tx.LastError),
	}
}

func TestStarTransactionQueueRepositoryEnqueue(t *testing.T) {
	created := time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC)

	sqlDB, mock := newTestDB(t)
	repo := NewStarTransactionQueueRepository(newDBFromSQL(sqlDB), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta(insertStarTransaction)).
		WithArgs("user-1", -3, "sticker", timeToDB(created), "pending", 0, nil).
		WillReturnResult(sqlmock.NewResult(21, 1))

	id, err := repo.Enqueue(testContext(), models.QueuedStarTransaction{
		UserID:    "user-1",
		Amount:    -3,
		Reason:    "sticker",
		CreatedAt: created,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(21), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStarTransactionQueueRepositoryGet(t *testing.T) {
	created := time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC)
	lastErr := "http 503"
	want := models.QueuedStarTransaction{
		ID:         21,
		UserID:     "user-1",
		Amount:     2,
		Reason:     "practice_complete",
		CreatedAt:  created,
		SyncState:  models.SyncStateFailed,
		RetryCount: 5,
		LastError:  &lastErr,
	}

	sqlDB, mock := newTestDB(t)
	repo := NewStarTransactionQueueRepository(newDBFromSQL(sqlDB), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(getStarTransaction)).
		WithArgs(int64(21)).
		WillReturnRows(sqlmock.NewRows(starTransactionColumns).AddRow(starTransactionRowArgs(want)...))

	got, err := repo.Get(testContext(), 21)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStarTransactionQueueRepositoryGetNotFound(t *testing.T) {
	sqlDB, mock := newTestDB(t)
	repo := NewStarTransactionQueueRepository(newDBFromSQL(sqlDB), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(getStarTransaction)).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(starTransactionColumns))

	_, err := repo.Get(testContext(), 404)
	assert.ErrorIs(t, err, ErrStarTransactionNotFound)
}

func TestStarTransactionQueueRepositoryPatch(t *testing.T) {
	sqlDB, mock := newTestDB(t)
	repo := NewStarTransactionQueueRepository(newDBFromSQL(sqlDB), logger.Nop())

	failed := models.SyncStateFailed
	msg := "retry budget exhausted after 5 tries"
	mock.ExpectExec(regexp.QuoteMeta("UPDATE queued_star_transactions SET sync_state = ?, last_error = ? WHERE id = ?")).
		WithArgs("failed", msg, int64(21)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Patch(testContext(), 21, models.StarTransactionPatch{
		SyncState: &failed,
		LastError: &msg,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStarTransactionQueueRepositoryCountAndDelete(t *testing.T) {
	sqlDB, mock := newTestDB(t)
	repo := NewStarTransactionQueueRepository(newDBFromSQL(sqlDB), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(countStarTransactionsByState)).
		WithArgs("pending").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.CountByState(testContext(), models.SyncStatePending)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	mock.ExpectExec(regexp.QuoteMeta(deleteStarTransactionsByState)).
		WithArgs("failed").
		WillReturnResult(sqlmock.NewResult(0, 2))

	removed, err := repo.DeleteByState(testContext(), models.SyncStateFailed)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}
