package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/models"
)

func newTestStorages(t *testing.T) *Storages {
	t.Helper()

	storages, err := NewStorages(context.Background(), ":memory:", logger.Nop())
	require.NoError(t, err)
	return storages
}

func TestCollectionStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t)

	parent := models.NewCollection("parent", "", nil)
	require.NoError(t, storages.Collections.Save(ctx, parent))

	child := models.NewCollection("child", "nested", &parent.ID)
	child.Auth = &models.AuthConfig{
		Type:   models.AuthBearer,
		Bearer: &models.BearerAuth{Token: "secret"},
	}
	require.NoError(t, storages.Collections.Save(ctx, child))

	got, err := storages.Collections.Get(ctx, child.ID)
	require.NoError(t, err)

	assert.Equal(t, "child", got.Name)
	assert.Equal(t, "nested", got.Description)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, parent.ID, *got.ParentID)
	require.NotNil(t, got.Auth)
	assert.Equal(t, models.AuthBearer, got.Auth.Type)
	assert.Equal(t, "secret", got.Auth.Bearer.Token)
	assert.False(t, got.Synced)
	assert.Empty(t, got.CloudID)
}

func TestCollectionStore_SaveOverwritesExisting(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t)

	c := models.NewCollection("first", "", nil)
	require.NoError(t, storages.Collections.Save(ctx, c))

	c.Name = "second"
	require.NoError(t, storages.Collections.Save(ctx, c))

	got, err := storages.Collections.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Name)

	all, err := storages.Collections.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCollectionStore_GetNotFound(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t)

	_, err := storages.Collections.Get(ctx, models.NewID())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = storages.Collections.GetByCloudID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollectionStore_UnsyncedAndMarkSynced(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t)

	c := models.NewCollection("pending", "", nil)
	require.NoError(t, storages.Collections.Save(ctx, c))

	unsynced, err := storages.Collections.GetUnsynced(ctx)
	require.NoError(t, err)
	require.Len(t, unsynced, 1)

	require.NoError(t, storages.Collections.MarkSynced(ctx, c.ID, "C1", 1))

	unsynced, err = storages.Collections.GetUnsynced(ctx)
	require.NoError(t, err)
	assert.Empty(t, unsynced)

	got, err := storages.Collections.GetByCloudID(ctx, "C1")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
	assert.True(t, got.Synced)
	assert.Equal(t, int64(1), got.Version)
}

func TestCollectionStore_Delete(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t)

	c := models.NewCollection("doomed", "", nil)
	require.NoError(t, storages.Collections.Save(ctx, c))
	require.NoError(t, storages.Collections.Delete(ctx, c.ID))

	_, err := storages.Collections.Get(ctx, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRequestStore_Roundtrip(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t)

	col := models.NewCollection("api", "", nil)
	require.NoError(t, storages.Collections.Save(ctx, col))

	r := models.NewHTTPRequest("create pet", models.MethodPost, "https://api.test/pets")
	r.CollectionID = &col.ID
	r.Headers = models.Headers{"Content-Type": "application/json"}
	r.Body = &models.RequestBody{
		Kind: models.BodyJSON,
		JSON: []byte(`{"name":"rex"}`),
	}
	require.NoError(t, storages.Requests.Save(ctx, r))

	got, err := storages.Requests.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MethodPost, got.Method)
	assert.Equal(t, "application/json", got.Headers["Content-Type"])
	require.NotNil(t, got.CollectionID)
	assert.Equal(t, col.ID, *got.CollectionID)
	require.NotNil(t, got.Body)
	assert.Equal(t, models.BodyJSON, got.Body.Kind)
	assert.JSONEq(t, `{"name":"rex"}`, string(got.Body.JSON))
}

func TestRequestStore_NilBodyStaysNil(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t)

	r := models.NewHTTPRequest("plain get", models.MethodGet, "https://api.test")
	require.NoError(t, storages.Requests.Save(ctx, r))

	got, err := storages.Requests.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Body)
	assert.Nil(t, got.CollectionID)
}

func TestEnvironmentStore_SetActiveIsExclusive(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t)

	dev := models.NewEnvironment("dev", map[string]string{"HOST": "dev.local"})
	prod := models.NewEnvironment("prod", map[string]string{"HOST": "prod.local"})
	require.NoError(t, storages.Environments.Save(ctx, dev))
	require.NoError(t, storages.Environments.Save(ctx, prod))

	require.NoError(t, storages.Environments.SetActive(ctx, dev.ID))
	require.NoError(t, storages.Environments.SetActive(ctx, prod.ID))

	active, err := storages.Environments.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, prod.ID, active.ID)

	all, err := storages.Environments.List(ctx)
	require.NoError(t, err)
	activeCount := 0
	for _, e := range all {
		if e.IsActive {
			activeCount++
		}
	}
	assert.Equal(t, 1, activeCount)
}

func TestEnvironmentStore_SetActiveUnknownID(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t)

	err := storages.Environments.SetActive(ctx, models.NewID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnvironmentStore_GetActiveNone(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t)

	_, err := storages.Environments.GetActive(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSettingsStore_Roundtrip(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages(t)

	require.NoError(t, storages.Settings.Set(ctx, "last_sync_provider", "api_server"))

	got, err := storages.Settings.Get(ctx, "last_sync_provider")
	require.NoError(t, err)
	assert.Equal(t, "api_server", got)

	require.NoError(t, storages.Settings.Set(ctx, "last_sync_provider", "drive"))
	got, err = storages.Settings.Get(ctx, "last_sync_provider")
	require.NoError(t, err)
	assert.Equal(t, "drive", got)

	require.NoError(t, storages.Settings.Delete(ctx, "last_sync_provider"))
	_, err = storages.Settings.Get(ctx, "last_sync_provider")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, storages.Settings.Delete(ctx, "never_existed"))
}
