package config

import (
	"fmt"
	"time"
)

// ClientApp holds client application settings derived from the shared
// structured config.
type ClientApp struct {
	// AccessToken is the bearer token presented to the remote service.
	AccessToken string
	// Version is the application version string.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the remote data-service endpoint.
	BaseURL string
	// StorageBucket is the object-storage bucket for recordings.
	StorageBucket string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path of the local queue database.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync holds the per-item retry policy.
type ClientSync struct {
	// BackoffBase is the delay before the first retry, prior to jitter.
	BackoffBase time.Duration
	// MaxRetryAttempts is the total number of tries per queued item.
	MaxRetryAttempts int
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the periodic sync job should run.
	SyncInterval time.Duration
	// StatusRefreshInterval defines how often the status snapshot is
	// refreshed while syncing or offline.
	StatusRefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains the retry/backoff policy.
	Sync ClientSync
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies defaults for optional policy
// values, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			AccessToken: cfg.App.AccessToken,
			Version:     cfg.App.Version,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			StorageBucket:  cfg.Adapter.StorageBucket,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Sync: ClientSync{
			BackoffBase:      cfg.Sync.BackoffBase,
			MaxRetryAttempts: cfg.Sync.MaxRetryAttempts,
		},
		Workers: ClientWorkers{
			SyncInterval:          cfg.Workers.SyncInterval,
			StatusRefreshInterval: cfg.Workers.StatusRefreshInterval,
		},
	}

	clientCfg.applyDefaults()

	if err = clientCfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	return clientCfg, nil
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.Adapter.StorageBucket == "" {
		cfg.Adapter.StorageBucket = "recordings"
	}
	if cfg.Sync.BackoffBase == 0 {
		cfg.Sync.BackoffBase = time.Second
	}
	if cfg.Sync.MaxRetryAttempts == 0 {
		cfg.Sync.MaxRetryAttempts = 5
	}
	if cfg.Workers.SyncInterval == 0 {
		cfg.Workers.SyncInterval = 5 * time.Minute
	}
	if cfg.Workers.StatusRefreshInterval == 0 {
		cfg.Workers.StatusRefreshInterval = 10 * time.Second
	}
}
