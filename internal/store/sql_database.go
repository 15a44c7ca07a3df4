package store

import (
	"database/sql"

	"github.com/MKhiriev/go-gpu-missions/internal/logger"
	"github.com/MKhiriev/go-gpu-missions/migrations"
)

// DB is the local credential database. It holds a single table, so one
// connection is shared by every repository built on it.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the credentials table up to the embedded schema version.
// It runs on every start before the stored login is restored.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB); err != nil {
		db.logger.Err(err).Str("func", "DB.Migrate").Msg("credential schema migration failed")
		return err
	}
	return nil
}
