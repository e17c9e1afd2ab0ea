package apiserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apivault/apivault/internal/provider"
	"github.com/apivault/apivault/models"
)

func TestSignIn_StoresSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "dev@test.io", creds["email"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "tok-123",
			"refresh_token": "ref-456",
			"user":          models.User{ID: "u1", Email: "dev@test.io"},
		})
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	require.False(t, c.IsAuthenticated())

	token, err := c.SignIn(context.Background(), "dev@test.io", "pass")
	require.NoError(t, err)

	assert.Equal(t, "tok-123", token.AccessToken)
	assert.Equal(t, "ref-456", token.RefreshToken)
	assert.True(t, c.IsAuthenticated())

	user := c.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "dev@test.io", user.Email)
}

func TestSignIn_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid email or password", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	_, err := c.SignIn(context.Background(), "dev@test.io", "wrong")
	assert.ErrorIs(t, err, provider.ErrAuthenticationFailed)
	assert.False(t, c.IsAuthenticated())
}

func TestSignUp_IdentityFromTokenClaims(t *testing.T) {
	// HS256 token with sub=u7, email=claims@test.io; the backend omits the
	// user object entirely.
	const token = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJzdWIiOiJ1NyIsImVtYWlsIjoiY2xhaW1zQHRlc3QuaW8ifQ." +
		"hC51mBkPVrUV1O9sPGViTqrLJb5dBXYLSnqfJwGrjTk"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": token})
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	resp, err := c.SignUp(context.Background(), "claims@test.io", "pass", "")
	require.NoError(t, err)

	assert.Equal(t, "u7", resp.User.ID)
	assert.Equal(t, "claims@test.io", resp.User.Email)
}

func TestCreateCollection_SendsBearerAndReadsCloudID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/collections", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"cloud_id": "C1"})
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	c.accessToken = "tok"

	cloudID, err := c.CreateCollection(context.Background(), models.NewCollection("pets", "", nil))
	require.NoError(t, err)
	assert.Equal(t, "C1", cloudID)
}

func TestCreateCollection_FallsBackToIDField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "abc"})
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	c.accessToken = "tok"

	cloudID, err := c.CreateCollection(context.Background(), models.NewCollection("pets", "", nil))
	require.NoError(t, err)
	assert.Equal(t, "abc", cloudID)
}

func TestItemOps_NotAuthenticatedWithoutToken(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})

	_, err := c.CreateCollection(context.Background(), models.NewCollection("pets", "", nil))
	assert.ErrorIs(t, err, provider.ErrNotAuthenticated)

	_, err = c.ListRequests(context.Background())
	assert.ErrorIs(t, err, provider.ErrNotAuthenticated)

	assert.Zero(t, calls, "no network call without a session token")
}

func TestMapHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/collections/expired":
			http.Error(w, "token expired", http.StatusUnauthorized)
		default:
			http.Error(w, "record not found", http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	c.accessToken = "tok"

	err := c.DeleteCollection(context.Background(), "expired")
	assert.ErrorIs(t, err, provider.ErrNotAuthenticated)

	err = c.DeleteCollection(context.Background(), "missing")
	var remoteErr *provider.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusNotFound, remoteErr.Status)
	assert.Contains(t, remoteErr.Body, "record not found")
}

func TestListCollections_DecodesRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		col := models.NewCollection("remote", "", nil)
		col.CloudID = "C1"
		col.Version = 2
		_ = json.NewEncoder(w).Encode([]models.Collection{col})
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	c.accessToken = "tok"

	out, err := c.ListCollections(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "remote", out[0].Name)
	assert.Equal(t, "C1", out[0].CloudID)
	assert.Equal(t, int64(2), out[0].Version)
}

func TestSignOut_DiscardsSession(t *testing.T) {
	c := New(Config{BaseURL: "http://localhost"})
	c.accessToken = "tok"
	c.user = &models.User{ID: "u1"}

	c.SignOut()

	assert.False(t, c.IsAuthenticated())
	assert.Nil(t, c.CurrentUser())
}
