package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avelichko/spellsync/internal/logger"
	"github.com/avelichko/spellsync/internal/store"
	"github.com/avelichko/spellsync/internal/telemetry"
	"github.com/avelichko/spellsync/models"
)

type queueService struct {
	storages *store.ClientStorages
	hub      *telemetry.Hub

	// ownerID is the subject claim of the access token; it becomes the
	// first path segment of every recording object key.
	ownerID string

	logger *logger.Logger
}

func NewQueueService(storages *store.ClientStorages, hub *telemetry.Hub, ownerID string, logger *logger.Logger) QueueService {
	return &queueService{
		storages: storages,
		hub:      hub,
		ownerID:  ownerID,
		logger:   logger,
	}
}

// EnqueueAttempt implements [QueueService].
func (s *queueService) EnqueueAttempt(ctx context.Context, attempt models.QueuedAttempt) (int64, error) {
	id, err := s.storages.Attempts.Enqueue(ctx, attempt)
	if err != nil {
		return 0, fmt.Errorf("enqueue attempt: %w", err)
	}

	s.hub.IncQueued(telemetry.KindAttempts)
	return id, nil
}

// EnqueueRecording implements [QueueService]. The stored Filename is the
// full remote object key, so the sync pass uploads without re-deriving it.
func (s *queueService) EnqueueRecording(ctx context.Context, listID, wordID string, data []byte, recordedAt time.Time, ext string) (int64, error) {
	key := models.AudioObjectKey(s.ownerID, listID, wordID, recordedAt, ext)

	id, err := s.storages.Audio.Enqueue(ctx, models.QueuedAudio{
		Data:      data,
		Filename:  key,
		CreatedAt: recordedAt,
	})
	if err != nil {
		return 0, fmt.Errorf("enqueue recording: %w", err)
	}

	s.hub.IncQueued(telemetry.KindAudio)
	return id, nil
}

// EnqueueSrsUpdate implements [QueueService].
func (s *queueService) EnqueueSrsUpdate(ctx context.Context, update models.QueuedSrsUpdate) (int64, error) {
	id, err := s.storages.SrsUpdates.Enqueue(ctx, update)
	if err != nil {
		return 0, fmt.Errorf("enqueue srs update: %w", err)
	}

	s.hub.IncQueued(telemetry.KindSrsUpdates)
	return id, nil
}

// EnqueueStarTransaction implements [QueueService].
func (s *queueService) EnqueueStarTransaction(ctx context.Context, tx models.QueuedStarTransaction) (int64, error) {
	id, err := s.storages.StarTransactions.Enqueue(ctx, tx)
	if err != nil {
		return 0, fmt.Errorf("enqueue star transaction: %w", err)
	}

	s.hub.IncQueued(telemetry.KindStarTransactions)
	return id, nil
}
