package drive

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apivault/apivault/internal/provider"
	"github.com/apivault/apivault/models"
)

func signedInClient(f *driveFixture) *Client {
	c := f.newClient()
	c.accessToken = "drive-access"
	c.folderID = "folder-1"
	return c
}

func testSnapshot() models.SyncSnapshot {
	col := models.NewCollection("Payments", "", nil)
	col.CloudID = col.ID.String()
	return models.NewSyncSnapshot([]models.Collection{col}, nil, nil)
}

func TestClient_Capabilities(t *testing.T) {
	f := newDriveFixture(t)
	c := f.newClient()

	assert.Equal(t, provider.Drive, c.ID())
	assert.False(t, c.SupportsItemOps())
	assert.False(t, c.IsAuthenticated())
	assert.Nil(t, c.CurrentUser())
}

func TestPullBulk_MissingFileYieldsEmptySnapshot(t *testing.T) {
	f := newDriveFixture(t)
	f.mux.HandleFunc("GET /drive/files", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer drive-access", r.Header.Get("Authorization"))
		assert.Contains(t, r.URL.Query().Get("q"), dataFileName)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(driveFileList{})
	})

	c := signedInClient(f)
	snapshot, err := c.PullBulk(context.Background())
	require.NoError(t, err)

	assert.Empty(t, snapshot.Collections)
	assert.Empty(t, snapshot.Requests)
	assert.Empty(t, snapshot.Environments)
	assert.True(t, snapshot.LastUpdated.IsZero())
}

func TestPullBulk_DownloadsSnapshot(t *testing.T) {
	want := testSnapshot()

	f := newDriveFixture(t)
	f.mux.HandleFunc("GET /drive/files", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(driveFileList{Files: []driveFile{{ID: "file-1", Name: dataFileName}}})
	})
	f.mux.HandleFunc("GET /drive/files/file-1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "media", r.URL.Query().Get("alt"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	})

	c := signedInClient(f)
	got, err := c.PullBulk(context.Background())
	require.NoError(t, err)

	require.Len(t, got.Collections, 1)
	assert.Equal(t, "Payments", got.Collections[0].Name)
	assert.Equal(t, want.Collections[0].CloudID, got.Collections[0].CloudID)
	assert.Equal(t, want.Version, got.Version)
}

func TestPushBulk_CreatesFileWithMultipartUpload(t *testing.T) {
	snapshot := testSnapshot()

	f := newDriveFixture(t)
	f.mux.HandleFunc("GET /drive/files", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(driveFileList{})
	})

	var uploads int
	f.mux.HandleFunc("POST /upload/files", func(w http.ResponseWriter, r *http.Request) {
		uploads++
		assert.Equal(t, "multipart", r.URL.Query().Get("uploadType"))

		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		require.Equal(t, "multipart/related", mediaType)

		mr := multipart.NewReader(r.Body, params["boundary"])

		metaPart, err := mr.NextPart()
		require.NoError(t, err)
		var meta driveFile
		require.NoError(t, json.NewDecoder(metaPart).Decode(&meta))
		assert.Equal(t, dataFileName, meta.Name)
		assert.Equal(t, []string{"folder-1"}, meta.Parents)

		contentPart, err := mr.NextPart()
		require.NoError(t, err)
		raw, err := io.ReadAll(contentPart)
		require.NoError(t, err)
		var got models.SyncSnapshot
		require.NoError(t, json.Unmarshal(raw, &got))
		require.Len(t, got.Collections, 1)
		assert.Equal(t, "Payments", got.Collections[0].Name)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(driveFile{ID: "file-new"})
	})

	c := signedInClient(f)
	require.NoError(t, c.PushBulk(context.Background(), snapshot))
	assert.Equal(t, 1, uploads)
}

func TestPushBulk_OverwritesExistingFile(t *testing.T) {
	snapshot := testSnapshot()

	f := newDriveFixture(t)
	f.mux.HandleFunc("GET /drive/files", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(driveFileList{Files: []driveFile{{ID: "file-1", Name: dataFileName}}})
	})

	var patched bool
	f.mux.HandleFunc("PATCH /upload/files/file-1", func(w http.ResponseWriter, r *http.Request) {
		patched = true
		assert.Equal(t, "media", r.URL.Query().Get("uploadType"))

		var got models.SyncSnapshot
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		require.Len(t, got.Collections, 1)

		w.WriteHeader(http.StatusOK)
	})

	c := signedInClient(f)
	require.NoError(t, c.PushBulk(context.Background(), snapshot))
	assert.True(t, patched)
}

func TestBulkOps_RequireSession(t *testing.T) {
	f := newDriveFixture(t)
	c := f.newClient()

	_, err := c.PullBulk(context.Background())
	require.ErrorIs(t, err, provider.ErrNotAuthenticated)

	err = c.PushBulk(context.Background(), models.SyncSnapshot{})
	require.ErrorIs(t, err, provider.ErrNotAuthenticated)

	assert.Zero(t, f.calls.Load())
}

func TestPullBulk_ExpiredSession(t *testing.T) {
	f := newDriveFixture(t)
	f.mux.HandleFunc("GET /drive/files", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	c := signedInClient(f)
	_, err := c.PullBulk(context.Background())
	require.ErrorIs(t, err, provider.ErrNotAuthenticated)
}

func TestPullBulk_RemoteError(t *testing.T) {
	f := newDriveFixture(t)
	f.mux.HandleFunc("GET /drive/files", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("backend exploded"))
	})

	c := signedInClient(f)
	_, err := c.PullBulk(context.Background())

	var remoteErr *provider.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusInternalServerError, remoteErr.Status)
	assert.Contains(t, remoteErr.Body, "backend exploded")
}

func TestSignOut_DiscardsSessionState(t *testing.T) {
	f := newDriveFixture(t)
	c := signedInClient(f)
	c.refreshToken = "drive-refresh"
	c.user = &models.User{ID: "g-1", Email: "owner@test.io"}
	c.verifiers["pending-state"] = "pending-verifier"

	c.SignOut()

	assert.False(t, c.IsAuthenticated())
	assert.Nil(t, c.CurrentUser())

	c.mu.RLock()
	defer c.mu.RUnlock()
	assert.Empty(t, c.refreshToken)
	assert.Empty(t, c.folderID)
	assert.Empty(t, c.verifiers)
}

func TestNew_DefaultsEndpointsAndTimeout(t *testing.T) {
	c := New(Config{ClientID: "app-id"})

	assert.Equal(t, defaultTokenURL, c.oauth.Endpoint.TokenURL)
	assert.Equal(t, defaultUserInfoURL, c.userInfoURL)
	assert.Equal(t, defaultUploadURL, c.uploadURL)
	assert.Equal(t, 30*time.Second, c.client.GetClient().Timeout)
}
