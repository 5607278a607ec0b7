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

type srsUpdateQueueRepository struct {
	*DB
	logger *logger.Logger
}

func NewSrsUpdateQueueRepository(db *DB, logger *logger.Logger) SrsUpdateQueueRepository {
	return &srsUpdateQueueRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *srsUpdateQueueRepository) Enqueue(ctx context.Context, update models.QueuedSrsUpdate) (int64, error) {
	log := logger.FromContext(ctx)

	if update.SyncState == "" {
		update.SyncState = models.SyncStatePending
	}

	res, err := r.DB.ExecContext(ctx, insertSrsUpdate,
		update.ChildID,
		update.WordID,
		update.WasCorrectFirstTry,
		timeToDB(update.CreatedAt),
		string(update.SyncState),
		update.RetryCount,
		nullString(update.LastError),
	)
	if err != nil {
		log.Err(err).
			Str("func", "srsUpdateQueueRepository.Enqueue").
			Str("child_id", update.ChildID).
			Str("word_id", update.WordID).
			Msg("failed to insert queued srs update")
		return 0, fmt.Errorf("failed to insert queued srs update: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read generated srs update id: %w", err)
	}

	return id, nil
}

func (r *srsUpdateQueueRepository) Get(ctx context.Context, id int64) (models.QueuedSrsUpdate, error) {
	row := r.DB.QueryRowContext(ctx, getSrsUpdate, id)

	update, err := scanSrsUpdate(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.QueuedSrsUpdate{}, ErrSrsUpdateNotFound
		}
		return models.QueuedSrsUpdate{}, fmt.Errorf("failed to scan queued srs update row: %w", err)
	}

	return update, nil
}

func (r *srsUpdateQueueRepository) ListByState(ctx context.Context, state models.SyncState) ([]models.QueuedSrsUpdate, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listSrsUpdatesByState, string(state))
	if err != nil {
		log.Err(err).
			Str("func", "srsUpdateQueueRepository.ListByState").
			Str("sync_state", string(state)).
			Msg("failed to query queued srs updates")
		return nil, fmt.Errorf("failed to query queued srs updates: %w", err)
	}
	defer rows.Close()

	var items []models.QueuedSrsUpdate
	for rows.Next() {
		update, scanErr := scanSrsUpdate(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "srsUpdateQueueRepository.ListByState").
				Msg("failed to scan queued srs update row")
			return nil, fmt.Errorf("failed to scan queued srs update row: %w", scanErr)
		}
		items = append(items, update)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("failed to iterate queued srs update rows: %w", rowsErr)
	}

	return items, nil
}

func (r *srsUpdateQueueRepository) CountByState(ctx context.Context, state models.SyncState) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, countSrsUpdatesByState, string(state)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count queued srs updates: %w", err)
	}
	return count, nil
}

func (r *srsUpdateQueueRepository) Patch(ctx context.Context, id int64, patch models.SrsUpdatePatch) error {
	log := logger.FromContext(ctx)

	b := sq.Update(srsUpdatesTable).Where(sq.Eq{"id": id})
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
		return fmt.Errorf("failed to build srs update patch query: %w", err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "srsUpdateQueueRepository.Patch").
			Int64("id", id).
			Msg("failed to patch queued srs update")
		return fmt.Errorf("failed to patch queued srs update: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrSrsUpdateNotFound
	}

	return nil
}

func (r *srsUpdateQueueRepository) DeleteByState(ctx context.Context, state models.SyncState) (int64, error) {
	res, err := r.DB.ExecContext(ctx, deleteSrsUpdatesByState, string(state))
	if err != nil {
		return 0, fmt.Errorf("failed to delete queued srs updates: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}

func scanSrsUpdate(scan func(dest ...any) error) (models.QueuedSrsUpdate, error) {
	var (
		update    models.QueuedSrsUpdate
		createdAt string
		syncState string
		lastError sql.NullString
	)

	err := scan(
		&update.ID,
		&update.ChildID,
		&update.WordID,
		&update.WasCorrectFirstTry,
		&createdAt,
		&syncState,
		&update.RetryCount,
		&lastError,
	)
	if err != nil {
		return models.QueuedSrsUpdate{}, err
	}

	update.SyncState = models.SyncState(syncState)
	update.LastError = stringPtr(lastError)

	created, err := timeFromDB(createdAt)
	if err != nil {
		return models.QueuedSrsUpdate{}, err
	}
	update.CreatedAt = created

	return update, nil
}
