package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/apivault/apivault/internal/logger"
)

// SettingsStore is a durable key-value area. The sync layer uses it to keep
// provider configuration and the last selected provider between runs.
type SettingsStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSettingsRepository creates a settings repository backed by db.
func NewSettingsRepository(db *DB, log *logger.Logger) *SettingsStore {
	return &SettingsStore{db: db, logger: log}
}

// Set stores value under key, replacing any previous value.
func (s *SettingsStore) Set(ctx context.Context, key, value string) error {
	query, args, err := builder().
		Insert("settings").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("build settings upsert: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "SettingsStore.Set").Str("key", key).Msg("error saving setting")
		return fmt.Errorf("save setting: %w", err)
	}
	return nil
}

// Get returns the value stored under key or ErrNotFound.
func (s *SettingsStore) Get(ctx context.Context, key string) (string, error) {
	query, args, err := builder().
		Select("value").
		From("settings").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build settings select: %w", err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read setting: %w", err)
	}
	return value, nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *SettingsStore) Delete(ctx context.Context, key string) error {
	query, args, err := builder().
		Delete("settings").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build settings delete: %w", err)
	}
	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete setting: %w", err)
	}
	return nil
}
