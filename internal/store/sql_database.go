package store

import (
	"database/sql"

	"github.com/tmurov/reqdesk/internal/logger"
	"github.com/tmurov/reqdesk/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
