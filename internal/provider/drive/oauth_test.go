package drive

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apivault/apivault/internal/provider"
	"github.com/apivault/apivault/models"
)

// driveFixture is a fake OAuth2 + file-store backend shared by the tests in
// this package.
type driveFixture struct {
	srv   *httptest.Server
	mux   *http.ServeMux
	calls atomic.Int64
}

func newDriveFixture(t *testing.T) *driveFixture {
	t.Helper()
	f := &driveFixture{mux: http.NewServeMux()}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		f.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *driveFixture) newClient() *Client {
	return New(Config{
		ClientID:     "app-id",
		ClientSecret: "app-secret",
		RedirectURI:  "http://127.0.0.1:9999/callback",
		AuthURL:      f.srv.URL + "/auth",
		TokenURL:     f.srv.URL + "/token",
		APIBaseURL:   f.srv.URL + "/drive",
		UploadURL:    f.srv.URL + "/upload",
		UserInfoURL:  f.srv.URL + "/userinfo",
		Timeout:      5 * time.Second,
	})
}

func (f *driveFixture) serveToken(t *testing.T, check func(form url.Values)) {
	t.Helper()
	f.mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if check != nil {
			check(r.Form)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "drive-access",
			"refresh_token": "drive-refresh",
			"token_type":    "Bearer",
			"expires_in":    3600,
		})
	})
}

func (f *driveFixture) serveUserInfo() {
	f.mux.HandleFunc("/userinfo", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.User{ID: "g-1", Email: "owner@test.io", Name: "Owner"})
	})
}

func TestAuthURL_CarriesPKCEChallengeAndState(t *testing.T) {
	f := newDriveFixture(t)
	c := f.newClient()

	rawURL, state, err := c.AuthURL()
	require.NoError(t, err)
	require.NotEmpty(t, state)

	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)
	q := parsed.Query()

	assert.Equal(t, "app-id", q.Get("client_id"))
	assert.Equal(t, state, q.Get("state"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
	assert.NotEmpty(t, q.Get("code_challenge"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Contains(t, q.Get("scope"), "drive.file")

	// The verifier stays retained until the matching exchange consumes it.
	c.mu.RLock()
	_, retained := c.verifiers[state]
	c.mu.RUnlock()
	assert.True(t, retained)

	// A second authorization attempt gets its own state and verifier.
	_, state2, err := c.AuthURL()
	require.NoError(t, err)
	assert.NotEqual(t, state, state2)
}

func TestExchangeCode_SignsIn(t *testing.T) {
	f := newDriveFixture(t)
	f.serveToken(t, func(form url.Values) {
		assert.Equal(t, "authorization_code", form.Get("grant_type"))
		assert.Equal(t, "auth-code-1", form.Get("code"))
		assert.NotEmpty(t, form.Get("code_verifier"))
	})
	f.serveUserInfo()
	f.mux.HandleFunc("GET /drive/files", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(driveFileList{Files: []driveFile{{ID: "folder-1", Name: rootFolderName}}})
	})

	c := f.newClient()
	_, state, err := c.AuthURL()
	require.NoError(t, err)
	require.False(t, c.IsAuthenticated())

	token, err := c.ExchangeCode(context.Background(), "auth-code-1", state)
	require.NoError(t, err)

	assert.Equal(t, "drive-access", token.AccessToken)
	assert.Equal(t, "drive-refresh", token.RefreshToken)
	assert.Equal(t, "owner@test.io", token.User.Email)

	assert.True(t, c.IsAuthenticated())
	user := c.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "Owner", user.Name)

	c.mu.RLock()
	folderID := c.folderID
	_, retained := c.verifiers[state]
	c.mu.RUnlock()
	assert.Equal(t, "folder-1", folderID)
	assert.False(t, retained, "verifier must be consumed by the exchange")
}

func TestExchangeCode_CreatesRootFolderWhenAbsent(t *testing.T) {
	f := newDriveFixture(t)
	f.serveToken(t, nil)
	f.serveUserInfo()
	f.mux.HandleFunc("GET /drive/files", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(driveFileList{})
	})
	f.mux.HandleFunc("POST /drive/files", func(w http.ResponseWriter, r *http.Request) {
		var file driveFile
		require.NoError(t, json.NewDecoder(r.Body).Decode(&file))
		assert.Equal(t, rootFolderName, file.Name)
		assert.Equal(t, folderMimeType, file.MimeType)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(driveFile{ID: "folder-new"})
	})

	c := f.newClient()
	_, state, err := c.AuthURL()
	require.NoError(t, err)

	_, err = c.ExchangeCode(context.Background(), "code", state)
	require.NoError(t, err)

	c.mu.RLock()
	defer c.mu.RUnlock()
	assert.Equal(t, "folder-new", c.folderID)
}

func TestExchangeCode_UnknownState(t *testing.T) {
	f := newDriveFixture(t)
	c := f.newClient()

	_, err := c.ExchangeCode(context.Background(), "code", "never-issued")
	require.ErrorIs(t, err, provider.ErrAuthenticationFailed)
	assert.False(t, c.IsAuthenticated())
	assert.Zero(t, f.calls.Load(), "no network calls without a retained verifier")
}

func TestExchangeCode_StateConsumedOnce(t *testing.T) {
	f := newDriveFixture(t)
	f.serveToken(t, nil)
	f.serveUserInfo()
	f.mux.HandleFunc("GET /drive/files", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(driveFileList{Files: []driveFile{{ID: "folder-1"}}})
	})

	c := f.newClient()
	_, state, err := c.AuthURL()
	require.NoError(t, err)

	_, err = c.ExchangeCode(context.Background(), "code", state)
	require.NoError(t, err)

	_, err = c.ExchangeCode(context.Background(), "code", state)
	require.ErrorIs(t, err, provider.ErrAuthenticationFailed)
}

func TestRefreshAccessToken(t *testing.T) {
	f := newDriveFixture(t)
	f.serveToken(t, func(form url.Values) {
		assert.Equal(t, "refresh_token", form.Get("grant_type"))
		assert.Equal(t, "old-refresh", form.Get("refresh_token"))
	})

	c := f.newClient()
	c.refreshToken = "old-refresh"

	require.NoError(t, c.RefreshAccessToken(context.Background()))
	assert.True(t, c.IsAuthenticated())

	c.mu.RLock()
	defer c.mu.RUnlock()
	assert.Equal(t, "drive-access", c.accessToken)
	assert.Equal(t, "drive-refresh", c.refreshToken)
}

func TestRefreshAccessToken_NoRefreshToken(t *testing.T) {
	f := newDriveFixture(t)
	c := f.newClient()

	err := c.RefreshAccessToken(context.Background())
	require.ErrorIs(t, err, provider.ErrNoRefreshToken)
	assert.Zero(t, f.calls.Load())
}
