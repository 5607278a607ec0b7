// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Velichko

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; the merged view is validated once it is
// narrowed to a [ClientConfig].
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.MaxRetryAttempts < 1 || cfg.Sync.BackoffBase <= 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Workers.SyncInterval == 0 || cfg.Workers.StatusRefreshInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
