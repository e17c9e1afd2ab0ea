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

var collectionColumns = []string{
	"id", "name", "description", "parent_id", "auth",
	"created_at", "updated_at", "synced", "version", "cloud_id",
}

// CollectionStore persists collections in the local SQLite database.
type CollectionStore struct {
	db     *DB
	logger *logger.Logger
}

// NewCollectionRepository creates a collection repository backed by db.
func NewCollectionRepository(db *DB, log *logger.Logger) *CollectionStore {
	return &CollectionStore{db: db, logger: log}
}

// Save inserts the collection or overwrites an existing row with the same id.
func (s *CollectionStore) Save(ctx context.Context, c models.Collection) error {
	var parentID any
	if c.ParentID != nil {
		parentID = c.ParentID.String()
	}
	var auth any
	if c.Auth != nil {
		auth = *c.Auth
	}

	query, args, err := builder().
		Insert("collections").
		Columns(collectionColumns...).
		Values(c.ID.String(), c.Name, c.Description, parentID, auth,
			c.CreatedAt, c.UpdatedAt, c.Synced, c.Version, c.CloudID).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			parent_id = excluded.parent_id,
			auth = excluded.auth,
			updated_at = excluded.updated_at,
			synced = excluded.synced,
			version = excluded.version,
			cloud_id = excluded.cloud_id`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build collection upsert: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "CollectionStore.Save").Msg("error saving collection")
		return fmt.Errorf("save collection: %w", err)
	}
	return nil
}

// Get returns the collection with the given id or ErrNotFound.
func (s *CollectionStore) Get(ctx context.Context, id uuid.UUID) (models.Collection, error) {
	query, args, err := builder().
		Select(collectionColumns...).
		From("collections").
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return models.Collection{}, fmt.Errorf("build collection select: %w", err)
	}
	return s.scanOne(s.db.QueryRowContext(ctx, query, args...))
}

// List returns all collections ordered by name.
func (s *CollectionStore) List(ctx context.Context) ([]models.Collection, error) {
	return s.selectMany(ctx, builder().
		Select(collectionColumns...).
		From("collections").
		OrderBy("name"))
}

// Delete removes the collection row. Deleting is local-only: no tombstone is
// written, so the record simply stops participating in sync.
func (s *CollectionStore) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := builder().
		Delete("collections").
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build collection delete: %w", err)
	}
	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}
	return nil
}

// GetUnsynced returns collections with pending local changes.
func (s *CollectionStore) GetUnsynced(ctx context.Context) ([]models.Collection, error) {
	return s.selectMany(ctx, builder().
		Select(collectionColumns...).
		From("collections").
		Where(sq.Eq{"synced": false}))
}

// GetByCloudID returns the local collection matching a remote identifier.
func (s *CollectionStore) GetByCloudID(ctx context.Context, cloudID string) (models.Collection, error) {
	query, args, err := builder().
		Select(collectionColumns...).
		From("collections").
		Where(sq.Eq{"cloud_id": cloudID}).
		ToSql()
	if err != nil {
		return models.Collection{}, fmt.Errorf("build collection select: %w", err)
	}
	return s.scanOne(s.db.QueryRowContext(ctx, query, args...))
}

// MarkSynced records a confirmed push for the collection.
func (s *CollectionStore) MarkSynced(ctx context.Context, id uuid.UUID, cloudID string, version int64) error {
	query, args, err := builder().
		Update("collections").
		Set("synced", true).
		Set("cloud_id", cloudID).
		Set("version", version).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build collection update: %w", err)
	}
	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "CollectionStore.MarkSynced").Msg("error marking collection synced")
		return fmt.Errorf("mark collection synced: %w", err)
	}
	return nil
}

func (s *CollectionStore) selectMany(ctx context.Context, b sq.SelectBuilder) ([]models.Collection, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build collection select: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query collections: %w", err)
	}
	defer rows.Close()

	var collections []models.Collection
	for rows.Next() {
		c, err := s.scanOne(rows)
		if err != nil {
			return nil, err
		}
		collections = append(collections, c)
	}
	return collections, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *CollectionStore) scanOne(row rowScanner) (models.Collection, error) {
	var (
		c        models.Collection
		id       string
		parentID sql.NullString
		auth     models.AuthConfig
		hasAuth  sql.NullString
	)
	// auth is scanned twice: once for null detection, once for decoding.
	// squirrel keeps column order stable, so scan the raw value first.
	err := row.Scan(&id, &c.Name, &c.Description, &parentID, &hasAuth,
		&c.CreatedAt, &c.UpdatedAt, &c.Synced, &c.Version, &c.CloudID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Collection{}, ErrNotFound
	}
	if err != nil {
		return models.Collection{}, fmt.Errorf("scan collection: %w", err)
	}

	if c.ID, err = uuid.Parse(id); err != nil {
		return models.Collection{}, fmt.Errorf("parse collection id: %w", err)
	}
	if parentID.Valid {
		pid, err := uuid.Parse(parentID.String)
		if err != nil {
			return models.Collection{}, fmt.Errorf("parse collection parent id: %w", err)
		}
		c.ParentID = &pid
	}
	if hasAuth.Valid && hasAuth.String != "" {
		if err := auth.Scan(hasAuth.String); err != nil {
			return models.Collection{}, fmt.Errorf("decode collection auth: %w", err)
		}
		c.Auth = &auth
	}
	return c, nil
}
