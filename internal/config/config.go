// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Velichko

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// spellsync client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the owner access token
	// and the application version.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote data-service endpoint settings used by the
	// HTTP transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the durable local queue database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds retry and backoff policy settings for queue replay.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds configuration for background jobs (sync trigger,
	// status refresh).
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// AccessToken is the bearer token presented to the remote service. Its
	// subject claim carries the owner id used in audio object keys.
	// Env: APP_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds the remote data-service connection settings.
type Adapter struct {
	// BaseURL is the remote service endpoint (e.g. "https://api.example.dev").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// StorageBucket is the object-storage bucket recordings are uploaded to.
	// Env: ADAPTER_STORAGE_BUCKET
	StorageBucket string `env:"STORAGE_BUCKET"`

	// RequestTimeout is the default timeout for outbound requests
	// (e.g. "15s"). Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local queue database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite queue database.
type DB struct {
	// DSN is the SQLite file path the queue tables live in.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sync holds the retry/backoff policy applied to each queued item.
type Sync struct {
	// BackoffBase is the delay before the first retry, prior to jitter
	// (e.g. "1s"). Env: SYNC_BACKOFF_BASE
	BackoffBase time.Duration `env:"BACKOFF_BASE"`

	// MaxRetryAttempts is the total number of tries per item before it is
	// marked failed. Env: SYNC_MAX_RETRY_ATTEMPTS
	MaxRetryAttempts int `env:"MAX_RETRY_ATTEMPTS"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// SyncInterval defines how often the periodic sync job runs.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// StatusRefreshInterval defines how often the status facade refreshes
	// its snapshot while syncing or offline.
	// Env: WORKERS_STATUS_REFRESH_INTERVAL
	StatusRefreshInterval time.Duration `env:"STATUS_REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
