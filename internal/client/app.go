package client

import (
	"context"
	"errors"

	"github.com/avelichko/spellsync/internal/config"
	"github.com/avelichko/spellsync/internal/logger"
	"github.com/avelichko/spellsync/internal/service"
)

// App owns the client process lifecycle: the connectivity monitor, the
// periodic sync and status-refresh jobs, and the sync trigger fired when the
// remote service becomes reachable again.
type App struct {
	services     *service.Services
	connectivity *connectivityMonitor
	workersCfg   config.ClientWorkers

	logger *logger.Logger
}

func NewApp(
	services *service.Services,
	connectivity *connectivityMonitor,
	workersCfg config.ClientWorkers,
	logger *logger.Logger,
) (*App, error) {
	if services == nil || connectivity == nil {
		return nil, errors.New("client app requires services and a connectivity monitor")
	}

	return &App{
		services:     services,
		connectivity: connectivity,
		workersCfg:   workersCfg,
		logger:       logger,
	}, nil
}

// Run starts the background machinery and blocks until ctx is cancelled.
// Everything is stopped, in reverse start order, before Run returns.
func (a *App) Run(ctx context.Context) error {
	a.connectivity.Start(ctx, 0)
	defer a.connectivity.Stop()

	// A regained connection drains the queues right away instead of waiting
	// out the periodic interval.
	unsubscribe := a.connectivity.Subscribe(func(online bool) {
		if !online {
			return
		}
		go a.triggerSync(ctx)
	})
	defer unsubscribe()

	a.services.SyncJob.Start(ctx, a.workersCfg.SyncInterval)
	defer a.services.SyncJob.Stop()

	a.services.StatusJob.Start(ctx, a.workersCfg.StatusRefreshInterval)
	defer a.services.StatusJob.Stop()

	a.logger.Info().Msg("client app started")

	<-ctx.Done()
	a.logger.Info().Msg("client app shutting down")

	return nil
}

func (a *App) triggerSync(ctx context.Context) {
	err := a.services.Sync.SyncAll(ctx)
	if err == nil {
		return
	}

	// Losing the race against the periodic job, or the connection flapping
	// back off, is expected here.
	if errors.Is(err, service.ErrSyncInProgress) || errors.Is(err, service.ErrOffline) {
		return
	}

	a.logger.Err(err).Str("func", "App.triggerSync").Msg("reconnect sync failed")
}
