package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/models"
)

// Tests in this file assert the SQL the repositories emit, against a mocked
// connection. Behavior-level coverage lives in store_test.go on a real
// in-memory database.

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{DB: conn, logger: logger.Nop()}, mock
}

func TestCollectionStore_MarkSyncedSQL(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollectionRepository(db, logger.Nop())

	id := models.NewID()
	mock.ExpectExec("UPDATE collections SET synced = \\?, cloud_id = \\?, version = \\? WHERE id = \\?").
		WithArgs(true, "C1", int64(4), id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkSynced(context.Background(), id, "C1", 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionStore_GetUnsyncedSQL(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollectionRepository(db, logger.Nop())

	id := models.NewID()
	now := time.Now().UTC()
	rows := sqlmock.NewRows(collectionColumns).
		AddRow(id.String(), "pending", "", nil, nil, now, now, false, int64(0), "")

	mock.ExpectQuery("SELECT id, name, description, parent_id, auth, created_at, updated_at, synced, version, cloud_id FROM collections WHERE synced = \\?").
		WithArgs(false).
		WillReturnRows(rows)

	got, err := repo.GetUnsynced(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, id, got[0].ID)
	assert.Equal(t, "pending", got[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionStore_SaveErrorPropagates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollectionRepository(db, logger.Nop())

	boom := errors.New("disk i/o error")
	mock.ExpectExec("INSERT INTO collections").WillReturnError(boom)

	err := repo.Save(context.Background(), models.NewCollection("x", "", nil))
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsStore_UpsertSQL(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSettingsRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO settings \\(key,value\\) VALUES \\(\\?,\\?\\) ON CONFLICT\\(key\\) DO UPDATE SET value = excluded.value").
		WithArgs("last_sync_provider", "drive").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Set(context.Background(), "last_sync_provider", "drive"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
