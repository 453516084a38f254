package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-content-mirror/internal/logger"
	"github.com/MKhiriev/go-content-mirror/migrations"
)

// Dialect names understood by goose and used to pick the placeholder format.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

// DB is a database handle bound to one SQL dialect.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
	}
}

// Dialect returns the SQL dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Classifier returns the error classifier matching the dialect.
func (db *DB) Classifier() ErrorClassificator {
	return db.errorClassificator
}

// Migrate applies pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
