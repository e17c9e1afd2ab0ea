package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/migrations"
)

// DB wraps the SQLite connection shared by all local repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectSQLite opens (and creates, if needed) the local database file at
// dsn and verifies the connection. Use ":memory:" for throwaway databases.
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	if dsn == "" {
		dsn = ":memory:"
	}

	conn, err := sql.Open("sqlite3", dsn+"?_foreign_keys=on")
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening local database")
		return nil, fmt.Errorf("open local database: %w", err)
	}

	// SQLite handles a single writer; more connections just queue on the
	// file lock.
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error pinging local database")
		return nil, fmt.Errorf("ping local database: %w", err)
	}

	return &DB{DB: conn, logger: log}, nil
}

// Migrate applies pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// builder returns the squirrel statement builder configured for SQLite
// placeholders.
func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// Storages groups all local repositories for the service layer.
type Storages struct {
	Collections  CollectionRepository
	Requests     RequestRepository
	Environments EnvironmentRepository
	Settings     SettingsRepository

	db *DB
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}

// NewStorages opens the local database, runs migrations and wires up all
// repositories.
func NewStorages(ctx context.Context, dsn string, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Collections:  NewCollectionRepository(db, log),
		Requests:     NewRequestRepository(db, log),
		Environments: NewEnvironmentRepository(db, log),
		Settings:     NewSettingsRepository(db, log),
		db:           db,
	}, nil
}
