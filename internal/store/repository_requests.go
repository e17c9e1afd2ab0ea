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

var requestColumns = []string{
	"id", "name", "method", "url", "headers", "body", "collection_id",
	"created_at", "updated_at", "synced", "version", "cloud_id",
}

// RequestStore persists saved requests in the local SQLite database.
type RequestStore struct {
	db     *DB
	logger *logger.Logger
}

// NewRequestRepository creates a request repository backed by db.
func NewRequestRepository(db *DB, log *logger.Logger) *RequestStore {
	return &RequestStore{db: db, logger: log}
}

// Save inserts the request or overwrites an existing row with the same id.
func (s *RequestStore) Save(ctx context.Context, r models.HTTPRequest) error {
	var body any
	if r.Body != nil {
		body = *r.Body
	}
	var collectionID any
	if r.CollectionID != nil {
		collectionID = r.CollectionID.String()
	}

	query, args, err := builder().
		Insert("requests").
		Columns(requestColumns...).
		Values(r.ID.String(), r.Name, r.Method, r.URL, r.Headers, body, collectionID,
			r.CreatedAt, r.UpdatedAt, r.Synced, r.Version, r.CloudID).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			method = excluded.method,
			url = excluded.url,
			headers = excluded.headers,
			body = excluded.body,
			collection_id = excluded.collection_id,
			updated_at = excluded.updated_at,
			synced = excluded.synced,
			version = excluded.version,
			cloud_id = excluded.cloud_id`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build request upsert: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "RequestStore.Save").Msg("error saving request")
		return fmt.Errorf("save request: %w", err)
	}
	return nil
}

// Get returns the request with the given id or ErrNotFound.
func (s *RequestStore) Get(ctx context.Context, id uuid.UUID) (models.HTTPRequest, error) {
	query, args, err := builder().
		Select(requestColumns...).
		From("requests").
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return models.HTTPRequest{}, fmt.Errorf("build request select: %w", err)
	}
	return s.scanOne(s.db.QueryRowContext(ctx, query, args...))
}

// List returns all saved requests ordered by name.
func (s *RequestStore) List(ctx context.Context) ([]models.HTTPRequest, error) {
	return s.selectMany(ctx, builder().
		Select(requestColumns...).
		From("requests").
		OrderBy("name"))
}

// Delete removes the request row.
func (s *RequestStore) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := builder().
		Delete("requests").
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build request delete: %w", err)
	}
	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	return nil
}

// GetUnsynced returns requests with pending local changes.
func (s *RequestStore) GetUnsynced(ctx context.Context) ([]models.HTTPRequest, error) {
	return s.selectMany(ctx, builder().
		Select(requestColumns...).
		From("requests").
		Where(sq.Eq{"synced": false}))
}

// GetByCloudID returns the local request matching a remote identifier.
func (s *RequestStore) GetByCloudID(ctx context.Context, cloudID string) (models.HTTPRequest, error) {
	query, args, err := builder().
		Select(requestColumns...).
		From("requests").
		Where(sq.Eq{"cloud_id": cloudID}).
		ToSql()
	if err != nil {
		return models.HTTPRequest{}, fmt.Errorf("build request select: %w", err)
	}
	return s.scanOne(s.db.QueryRowContext(ctx, query, args...))
}

// MarkSynced records a confirmed push for the request.
func (s *RequestStore) MarkSynced(ctx context.Context, id uuid.UUID, cloudID string, version int64) error {
	query, args, err := builder().
		Update("requests").
		Set("synced", true).
		Set("cloud_id", cloudID).
		Set("version", version).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build request update: %w", err)
	}
	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "RequestStore.MarkSynced").Msg("error marking request synced")
		return fmt.Errorf("mark request synced: %w", err)
	}
	return nil
}

func (s *RequestStore) selectMany(ctx context.Context, b sq.SelectBuilder) ([]models.HTTPRequest, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build request select: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query requests: %w", err)
	}
	defer rows.Close()

	var requests []models.HTTPRequest
	for rows.Next() {
		r, err := s.scanOne(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

func (s *RequestStore) scanOne(row rowScanner) (models.HTTPRequest, error) {
	var (
		r            models.HTTPRequest
		id           string
		body         sql.NullString
		collectionID sql.NullString
	)
	err := row.Scan(&id, &r.Name, &r.Method, &r.URL, &r.Headers, &body, &collectionID,
		&r.CreatedAt, &r.UpdatedAt, &r.Synced, &r.Version, &r.CloudID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.HTTPRequest{}, ErrNotFound
	}
	if err != nil {
		return models.HTTPRequest{}, fmt.Errorf("scan request: %w", err)
	}

	if r.ID, err = uuid.Parse(id); err != nil {
		return models.HTTPRequest{}, fmt.Errorf("parse request id: %w", err)
	}
	if body.Valid && body.String != "" {
		var rb models.RequestBody
		if err := rb.Scan(body.String); err != nil {
			return models.HTTPRequest{}, fmt.Errorf("decode request body: %w", err)
		}
		r.Body = &rb
	}
	if collectionID.Valid {
		cid, err := uuid.Parse(collectionID.String)
		if err != nil {
			return models.HTTPRequest{}, fmt.Errorf("parse request collection id: %w", err)
		}
		r.CollectionID = &cid
	}
	return r, nil
}
