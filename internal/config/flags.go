package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-b remote service base URL
//	-bucket object-storage bucket for recordings
//	-d local queue database path
//	-c/-config json file path with configs
//	-access-token remote access token
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-backoff-base base retry delay (e.g., "1s")
//	-max-retries total tries per queued item
//	-sync-interval periodic sync interval
//	-refresh-interval status refresh interval
func ParseFlags() *StructuredConfig {
	var baseURL string
	var storageBucket string
	var databaseDSN string
	var jsonConfigPath string
	var accessToken string
	var requestTimeout time.Duration
	var backoffBase time.Duration
	var maxRetryAttempts int
	var syncInterval time.Duration
	var refreshInterval time.Duration

	flag.StringVar(&baseURL, "b", "", "Remote service base URL")
	flag.StringVar(&storageBucket, "bucket", "", "Object storage bucket for recordings")
	flag.StringVar(&databaseDSN, "d", "", "Local queue database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&accessToken, "access-token", "", "Remote access token")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&backoffBase, "backoff-base", 0, "Base retry delay (e.g., 1s)")
	flag.IntVar(&maxRetryAttempts, "max-retries", 0, "Total tries per queued item")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Status refresh interval")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			AccessToken: accessToken,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			StorageBucket:  storageBucket,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Sync: Sync{
			BackoffBase:      backoffBase,
			MaxRetryAttempts: maxRetryAttempts,
		},
		Workers: Workers{
			SyncInterval:          syncInterval,
			StatusRefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
