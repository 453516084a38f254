package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-content-mirror/internal/config"
	"github.com/MKhiriev/go-content-mirror/internal/logger"
)

// ClientStorages groups the client's storage layer: the mirror repository and
// the database it runs on.
type ClientStorages struct {
	MirrorRepository MirrorRepository

	db *DB
}

// NewClientStorages opens the mirror database named by cfg.DB.DSN, runs pending
// migrations and builds the repositories on top of it.
//
// A DSN starting with postgres:// or postgresql:// selects PostgreSQL; anything
// else is treated as a SQLite file path.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		MirrorRepository: NewMirrorRepository(db, logger),
		db:               db,
	}, nil
}

// Classifier returns the error classifier of the underlying database.
func (s *ClientStorages) Classifier() ErrorClassificator {
	return s.db.Classifier()
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
