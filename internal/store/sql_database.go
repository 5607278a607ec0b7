package store

import (
	"database/sql"

	"github.com/avelichko/spellsync/internal/logger"
	"github.com/avelichko/spellsync/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
