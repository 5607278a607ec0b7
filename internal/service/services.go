package service

import (
	"fmt"

	"github.com/avelichko/spellsync/internal/adapter"
	"github.com/avelichko/spellsync/internal/config"
	"github.com/avelichko/spellsync/internal/logger"
	"github.com/avelichko/spellsync/internal/store"
	"github.com/avelichko/spellsync/internal/telemetry"
	"github.com/avelichko/spellsync/internal/utils"
	"github.com/avelichko/spellsync/models"
)

type Services struct {
	Queue  QueueService
	Sync   SyncService
	Status StatusService

	SyncJob   SyncJob
	StatusJob StatusRefreshJob
}

// NewClientServices wires the full service layer. onStatus receives every
// refreshed status snapshot; pass nil when no display surface is attached.
func NewClientServices(
	cfg *config.ClientConfig,
	storages *store.ClientStorages,
	remote adapter.RemoteService,
	hub *telemetry.Hub,
	connectivity Connectivity,
	onStatus func(models.SyncStatus),
	logger *logger.Logger,
) (*Services, error) {
	ownerID, err := utils.ParseOwnerIDFromJWT(cfg.App.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("resolve owner id from access token: %w", err)
	}

	queueSvc := NewQueueService(storages, hub, ownerID, logger)
	syncSvc := NewSyncOrchestrator(storages, remote, hub, connectivity, cfg.Sync, logger)
	statusSvc := NewStatusService(storages, hub, connectivity, syncSvc, logger)

	if onStatus == nil {
		onStatus = func(models.SyncStatus) {}
	}

	return &Services{
		Queue:     queueSvc,
		Sync:      syncSvc,
		Status:    statusSvc,
		SyncJob:   NewSyncJob(syncSvc, logger),
		StatusJob: NewStatusRefreshJob(statusSvc, onStatus),
	}, nil
}
