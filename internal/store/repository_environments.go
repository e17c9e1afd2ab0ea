package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/models"
)

var environmentColumns = []string{
	"id", "name", "variables", "is_active",
	"created_at", "updated_at", "synced", "version", "cloud_id",
}

// EnvironmentStore persists environments in the local SQLite database.
type EnvironmentStore struct {
	db     *DB
	logger *logger.Logger
}

// NewEnvironmentRepository creates an environment repository backed by db.
func NewEnvironmentRepository(db *DB, log *logger.Logger) *EnvironmentStore {
	return &EnvironmentStore{db: db, logger: log}
}

// Save inserts the environment or overwrites an existing row with the same id.
func (s *EnvironmentStore) Save(ctx context.Context, e models.Environment) error {
	query, args, err := builder().
		Insert("environments").
		Columns(environmentColumns...).
		Values(e.ID.String(), e.Name, e.Variables, e.IsActive,
			e.CreatedAt, e.UpdatedAt, e.Synced, e.Version, e.CloudID).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			variables = excluded.variables,
			is_active = excluded.is_active,
			updated_at = excluded.updated_at,
			synced = excluded.synced,
			version = excluded.version,
			cloud_id = excluded.cloud_id`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build environment upsert: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "EnvironmentStore.Save").Msg("error saving environment")
		return fmt.Errorf("save environment: %w", err)
	}
	return nil
}

// Get returns the environment with the given id or ErrNotFound.
func (s *EnvironmentStore) Get(ctx context.Context, id uuid.UUID) (models.Environment, error) {
	query, args, err := builder().
		Select(environmentColumns...).
		From("environments").
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return models.Environment{}, fmt.Errorf("build environment select: %w", err)
	}
	return s.scanOne(s.db.QueryRowContext(ctx, query, args...))
}

// List returns all environments ordered by name.
func (s *EnvironmentStore) List(ctx context.Context) ([]models.Environment, error) {
	return s.selectMany(ctx, builder().
		Select(environmentColumns...).
		From("environments").
		OrderBy("name"))
}

// Delete removes the environment row.
func (s *EnvironmentStore) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := builder().
		Delete("environments").
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build environment delete: %w", err)
	}
	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete environment: %w", err)
	}
	return nil
}

// SetActive makes the environment with the given id the single active one.
// Activation is a local concept, so the touched rows stay synced.
func (s *EnvironmentStore) SetActive(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin activate tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, "UPDATE environments SET is_active = 0 WHERE is_active = 1"); err != nil {
		return fmt.Errorf("deactivate environments: %w", err)
	}

	res, err := tx.ExecContext(ctx, "UPDATE environments SET is_active = 1 WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("activate environment: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

// GetActive returns the currently active environment or ErrNotFound.
func (s *EnvironmentStore) GetActive(ctx context.Context) (models.Environment, error) {
	query, args, err := builder().
		Select(environmentColumns...).
		From("environments").
		Where(sq.Eq{"is_active": true}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Environment{}, fmt.Errorf("build environment select: %w", err)
	}
	return s.scanOne(s.db.QueryRowContext(ctx, query, args...))
}

// GetUnsynced returns environments with pending local changes.
func (s *EnvironmentStore) GetUnsynced(ctx context.Context) ([]models.Environment, error) {
	return s.selectMany(ctx, builder().
		Select(environmentColumns...).
		From("environments").
		Where(sq.Eq{"synced": false}))
}

// GetByCloudID returns the local environment matching a remote identifier.
func (s *EnvironmentStore) GetByCloudID(ctx context.Context, cloudID string) (models.Environment, error) {
	query, args, err := builder().
		Select(environmentColumns...).
		From("environments").
		Where(sq.Eq{"cloud_id": cloudID}).
		ToSql()
	if err != nil {
		return models.Environment{}, fmt.Errorf("build environment select: %w", err)
	}
	return s.scanOne(s.db.QueryRowContext(ctx, query, args...))
}

// MarkSynced records a confirmed push for the environment.
func (s *EnvironmentStore) MarkSynced(ctx context.Context, id uuid.UUID, cloudID string, version int64) error {
	query, args, err := builder().
		Update("environments").
		Set("synced", true).
		Set("cloud_id", cloudID).
		Set("version", version).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build environment update: %w", err)
	}
	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "EnvironmentStore.MarkSynced").Msg("error marking environment synced")
		return fmt.Errorf("mark environment synced: %w", err)
	}
	return nil
}

func (s *EnvironmentStore) selectMany(ctx context.Context, b sq.SelectBuilder) ([]models.Environment, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build environment select: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query environments: %w", err)
	}
	defer rows.Close()

	var environments []models.Environment
	for rows.Next() {
		e, err := s.scanOne(rows)
		if err != nil {
			return nil, err
		}
		environments = append(environments, e)
	}
	return environments, rows.Err()
}

func (s *EnvironmentStore) scanOne(row rowScanner) (models.Environment, error) {
	var (
		e  models.Environment
		id string
	)
	err := row.Scan(&id, &e.Name, &e.Variables, &e.IsActive,
		&e.CreatedAt, &e.UpdatedAt, &e.Synced, &e.Version, &e.CloudID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Environment{}, ErrNotFound
	}
	if err != nil {
		return models.Environment{}, fmt.Errorf("scan environment: %w", err)
	}

	if e.ID, err = uuid.Parse(id); err != nil {
		return models.Environment{}, fmt.Errorf("parse environment id: %w", err)
	}
	return e, nil
}
