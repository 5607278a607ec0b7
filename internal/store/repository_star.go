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

type starTransactionQueueRepository struct {
	*DB
	logger *logger.Logger
}

func NewStarTransactionQueueRepository(db *DB, logger *logger.Logger) StarTransactionQueueRepository {
	return &starTransactionQueueRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *starTransactionQueueRepository) Enqueue(ctx context.Context, tx models.QueuedStarTransaction) (int64, error) {
	log := logger.FromContext(ctx)

	if tx.SyncState == "" {
		tx.SyncState = models.SyncStatePending
	}

	res, err := r.DB.ExecContext(ctx, insertStarTransaction,
		tx.UserID,
		tx.Amount,
		tx.Reason,
		timeToDB(tx.CreatedAt),
		string(tx.SyncState),
		tx.RetryCount,
		nullString(tx.LastError),
	)
	if err != nil {
		log.Err(err).
			Str("func", "starTransactionQueueRepository.Enqueue").
			Str("user_id", tx.UserID).
			Msg("failed to insert queued star transaction")
		return 0, fmt.Errorf("failed to insert queued star transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read generated star transaction id: %w", err)
	}

	return id, nil
}

func (r *starTransactionQueueRepository) Get(ctx context.Context, id int64) (models.QueuedStarTransaction, error) {
	row := r.DB.QueryRowContext(ctx, getStarTransaction, id)

	tx, err := scanStarTransaction(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.QueuedStarTransaction{}, ErrStarTransactionNotFound
		}
		return models.QueuedStarTransaction{}, fmt.Errorf("failed to scan queued star transaction row: %w", err)
	}

	return tx, nil
}

func (r *starTransactionQueueRepository) ListByState(ctx context.Context, state models.SyncState) ([]models.QueuedStarTransaction, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listStarTransactionsByState, string(state))
	if err != nil {
		log.Err(err).
			Str("func", "starTransactionQueueRepository.ListByState").
			Str("sync_state", string(state)).
			Msg("failed to query queued star transactions")
		return nil, fmt.Errorf("failed to query queued star transactions: %w", err)
	}
	defer rows.Close()

	var items []models.QueuedStarTransaction
	for rows.Next() {
		tx, scanErr := scanStarTransaction(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "starTransactionQueueRepository.ListByState").
				Msg("failed to scan queued star transaction row")
			return nil, fmt.Errorf("failed to scan queued star transaction row: %w", scanErr)
		}
		items = append(items, tx)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("failed to iterate queued star transaction rows: %w", rowsErr)
	}

	return items, nil
}

func (r *starTransactionQueueRepository) CountByState(ctx context.Context, state models.SyncState) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, countStarTransactionsByState, string(state)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count queued star transactions: %w", err)
	}
	return count, nil
}

func (r *starTransactionQueueRepository) Patch(ctx context.Context, id int64, patch models.StarTransactionPatch) error {
	log := logger.FromContext(ctx)

	b := sq.Update(starTransactionsTable).Where(sq.Eq{"id": id})
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
		return fmt.Errorf("failed to build star transaction patch query: %w", err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "starTransactionQueueRepository.Patch").
			Int64("id", id).
			Msg("failed to patch queued star transaction")
		return fmt.Errorf("failed to patch queued star transaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrStarTransactionNotFound
	}

	return nil
}

func (r *starTransactionQueueRepository) DeleteByState(ctx context.Context, state models.SyncState) (int64, error) {
	res, err := r.DB.ExecContext(ctx, deleteStarTransactionsByState, string(state))
	if err != nil {
		return 0, fmt.Errorf("failed to delete queued star transactions: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}

func scanStarTransaction(scan func(dest ...any) error) (models.QueuedStarTransaction, error) {
	var (
		tx        models.QueuedStarTransaction
		createdAt string
		syncState string
		lastError sql.NullString
	)

	err := scan(
		&tx.ID,
		&tx.UserID,
		&tx.Amount,
		&tx.Reason,
		&createdAt,
		&syncState,
		&tx.RetryCount,
		&lastError,
	)
	if err != nil {
		return models.QueuedStarTransaction{}, err
	}

	tx.SyncState = models.SyncState(syncState)
	tx.LastError = stringPtr(lastError)

	created, err := timeFromDB(createdAt)
	if err != nil {
		return models.QueuedStarTransaction{}, err
	}
	tx.CreatedAt = created

	return tx, nil
}
