package store

import (
	"context"
	"fmt"

	"github.com/avelichko/spellsync/internal/config"
	"github.com/avelichko/spellsync/internal/logger"
)

// ClientStorages groups all queue repositories into a single value that can
// be passed around the service layer. One repository per queued entity kind;
// cross-table ordering is the sync orchestrator's job, not the store's.
type ClientStorages struct {
	// Attempts is the SQLite-backed queue of offline practice attempts.
	Attempts AttemptQueueRepository
	// Audio is the SQLite-backed queue of recordings awaiting upload.
	Audio AudioQueueRepository
	// SrsUpdates is the SQLite-backed queue of scheduler-update intents.
	SrsUpdates SrsUpdateQueueRepository
	// StarTransactions is the SQLite-backed queue of reward-point deltas.
	StarTransactions StarTransactionQueueRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh queue
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Attempts:         NewAttemptQueueRepository(db, logger),
		Audio:            NewAudioQueueRepository(db, logger),
		SrsUpdates:       NewSrsUpdateQueueRepository(db, logger),
		StarTransactions: NewStarTransactionQueueRepository(db, logger),
	}, nil
}
