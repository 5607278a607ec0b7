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

type audioQueueRepository struct {
	*DB
	logger *logger.Logger
}

func NewAudioQueueRepository(db *DB, logger *logger.Logger) AudioQueueRepository {
	return &audioQueueRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *audioQueueRepository) Enqueue(ctx context.Context, audio models.QueuedAudio) (int64, error) {
	log := logger.FromContext(ctx)

	if audio.SyncState == "" {
		audio.SyncState = models.SyncStatePending
	}

	res, err := r.DB.ExecContext(ctx, insertAudio,
		audio.Data,
		audio.Filename,
		nullString(audio.StorageRef),
		timeToDB(audio.CreatedAt),
		string(audio.SyncState),
		audio.RetryCount,
		nullString(audio.LastError),
	)
	if err != nil {
		log.Err(err).
			Str("func", "audioQueueRepository.Enqueue").
			Str("filename", audio.Filename).
			Msg("failed to insert queued audio")
		return 0, fmt.Errorf("failed to insert queued audio: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read generated audio id: %w", err)
	}

	return id, nil
}

func (r *audioQueueRepository) Get(ctx context.Context, id int64) (models.QueuedAudio, error) {
	row := r.DB.QueryRowContext(ctx, getAudio, id)

	audio, err := scanAudio(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.QueuedAudio{}, ErrAudioNotFound
		}
		return models.QueuedAudio{}, fmt.Errorf("failed to scan queued audio row: %w", err)
	}

	return audio, nil
}

func (r *audioQueueRepository) ListByState(ctx context.Context, state models.SyncState) ([]models.QueuedAudio, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listAudioByState, string(state))
	if err != nil {
		log.Err(err).
			Str("func", "audioQueueRepository.ListByState").
			Str("sync_state", string(state)).
			Msg("failed to query queued audio")
		return nil, fmt.Errorf("failed to query queued audio: %w", err)
	}
	defer rows.Close()

	var items []models.QueuedAudio
	for rows.Next() {
		audio, scanErr := scanAudio(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "audioQueueRepository.ListByState").
				Msg("failed to scan queued audio row")
			return nil, fmt.Errorf("failed to scan queued audio row: %w", scanErr)
		}
		items = append(items, audio)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("failed to iterate queued audio rows: %w", rowsErr)
	}

	return items, nil
}

func (r *audioQueueRepository) CountByState(ctx context.Context, state models.SyncState) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, countAudioByState, string(state)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count queued audio: %w", err)
	}
	return count, nil
}

func (r *audioQueueRepository) Patch(ctx context.Context, id int64, patch models.AudioPatch) error {
	log := logger.FromContext(ctx)

	b := sq.Update(audioTable).Where(sq.Eq{"id": id})
	changed := false

	if patch.SyncState != nil {
		b = b.Set("sync_state", string(*patch.SyncState))
		changed = true
	}
	if patch.StorageRef != nil {
		b = b.Set("storage_ref", *patch.StorageRef)
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
		return fmt.Errorf("failed to build audio patch query: %w", err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "audioQueueRepository.Patch").
			Int64("id", id).
			Msg("failed to patch queued audio")
		return fmt.Errorf("failed to patch queued audio: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrAudioNotFound
	}

	return nil
}

func (r *audioQueueRepository) DeleteByState(ctx context.Context, state models.SyncState) (int64, error) {
	res, err := r.DB.ExecContext(ctx, deleteAudioByState, string(state))
	if err != nil {
		return 0, fmt.Errorf("failed to delete queued audio: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}

func scanAudio(scan func(dest ...any) error) (models.QueuedAudio, error) {
	var (
		audio      models.QueuedAudio
		storageRef sql.NullString
		createdAt  string
		syncState  string
		lastError  sql.NullString
	)

	err := scan(
		&audio.ID,
		&audio.Data,
		&audio.Filename,
		&storageRef,
		&createdAt,
		&syncState,
		&audio.RetryCount,
		&lastError,
	)
	if err != nil {
		return models.QueuedAudio{}, err
	}

	audio.StorageRef = stringPtr(storageRef)
	audio.SyncState = models.SyncState(syncState)
	audio.LastError = stringPtr(lastError)

	created, err := timeFromDB(createdAt)
	if err != nil {
		return models.QueuedAudio{}, err
	}
	audio.CreatedAt = created

	return audio, nil
}
