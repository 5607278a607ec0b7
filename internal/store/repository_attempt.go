package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/avelichko/spellsync/internal/logger"
	"github.com/avelichko/spellsync/models"
)

type attemptQueueRepository struct {
	*DB
	logger *logger.Logger
}

func NewAttemptQueueRepository(db *DB, logger *logger.Logger) AttemptQueueRepository {
	return &attemptQueueRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *attemptQueueRepository) Enqueue(ctx context.Context, attempt models.QueuedAttempt) (int64, error) {
	log := logger.FromContext(ctx)

	if attempt.SyncState == "" {
		attempt.SyncState = models.SyncStatePending
	}

	res, err := r.DB.ExecContext(ctx, insertAttempt,
		attempt.ChildID,
		attempt.WordID,
		attempt.ListID,
		string(attempt.Mode),
		attempt.Correct,
		nullString(attempt.TypedAnswer),
		nullInt64(attempt.AudioRef),
		timeToDB(attempt.StartedAt),
		string(attempt.SyncState),
		attempt.RetryCount,
		nullString(attempt.LastError),
	)
	if err != nil {
		log.Err(err).
			Str("func", "attemptQueueRepository.Enqueue").
			Str("child_id", attempt.ChildID).
			Str("word_id", attempt.WordID).
			Msg("failed to insert queued attempt")
		return 0, fmt.Errorf("failed to insert queued attempt: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read generated attempt id: %w", err)
	}

	return id, nil
}

func (r *attemptQueueRepository) Get(ctx context.Context, id int64) (models.QueuedAttempt, error) {
	row := r.DB.QueryRowContext(ctx, getAttempt, id)

	attempt, err := scanAttempt(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.QueuedAttempt{}, ErrAttemptNotFound
		}
		return models.QueuedAttempt{}, fmt.Errorf("failed to scan queued attempt row: %w", err)
	}

	return attempt, nil
}

func (r *attemptQueueRepository) ListByState(ctx context.Context, state models.SyncState) ([]models.QueuedAttempt, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listAttemptsByState, string(state))
	if err != nil {
		log.Err(err).
			Str("func", "attemptQueueRepository.ListByState").
			Str("sync_state", string(state)).
			Msg("failed to query queued attempts")
		return nil, fmt.Errorf("failed to query queued attempts: %w", err)
	}
	defer rows.Close()

	var items []models.QueuedAttempt
	for rows.Next() {
		attempt, scanErr := scanAttempt(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "attemptQueueRepository.ListByState").
				Msg("failed to scan queued attempt row")
			return nil, fmt.Errorf("failed to scan queued attempt row: %w", scanErr)
		}
		items = append(items, attempt)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("failed to iterate queued attempt rows: %w", rowsErr)
	}

	return items, nil
}

func (r *attemptQueueRepository) CountByState(ctx context.Context, state models.SyncState) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, countAttemptsByState, string(state)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count queued attempts: %w", err)
	}
	return count, nil
}

func (r *attemptQueueRepository) Patch(ctx context.Context, id int64, patch models.AttemptPatch) error {
	log := logger.FromContext(ctx)

	b := sq.Update(attemptsTable).Where(sq.Eq{"id": id})
	changed := false

	if patch.SyncState != nil {
		b = b.Set("sync_state", string(*patch.SyncState))
		changed = true
	}
	if patch.RetryCount != nil {
		b = b.Set("retry_count", *patch.RetryCount)
		changed = true
	}
	if patch.ClearLastError {
		b = b.Set("last_error", nil)
		changed = true
	} else if patch.LastError != nil {
		b = b.Set("last_error", *patch.LastError)
		changed = true
	}

	if !changed {
		return ErrEmptyPatch
	}

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build attempt patch query: %w", err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "attemptQueueRepository.Patch").
			Int64("id", id).
			Msg("failed to patch queued attempt")
		return fmt.Errorf("failed to patch queued attempt: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrAttemptNotFound
	}

	return nil
}

func (r *attemptQueueRepository) DeleteByState(ctx context.Context, state models.SyncState) (int64, error) {
	res, err := r.DB.ExecContext(ctx, deleteAttemptsByState, string(state))
	if err != nil {
		return 0, fmt.Errorf("failed to delete queued attempts: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}

func scanAttempt(scan func(dest ...any) error) (models.QueuedAttempt, error) {
	var (
		attempt     models.QueuedAttempt
		mode        string
		typedAnswer sql.NullString
		audioRef    sql.NullInt64
		startedAt   string
		syncState   string
		lastError   sql.NullString
	)

	err := scan(
		&attempt.ID,
		&attempt.ChildID,
		&attempt.WordID,
		&attempt.ListID,
		&mode,
		&attempt.Correct,
		&typedAnswer,
		&audioRef,
		&startedAt,
		&syncState,
		&attempt.RetryCount,
		&lastError,
	)
	if err != nil {
		return models.QueuedAttempt{}, err
	}

	attempt.Mode = models.PracticeMode(mode)
	attempt.TypedAnswer = stringPtr(typedAnswer)
	attempt.AudioRef = int64Ptr(audioRef)
	attempt.SyncState = models.SyncState(syncState)
	attempt.LastError = stringPtr(lastError)

	started, err := timeFromDB(startedAt)
	if err != nil {
		return models.QueuedAttempt{}, err
	}
	attempt.StartedAt = started

	return attempt, nil
}
