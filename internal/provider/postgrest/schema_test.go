package postgrest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apivault/apivault/internal/provider"
)

type fakeExecutor struct {
	execs  []string
	err    error
	closed bool
}

func (f *fakeExecutor) Exec(_ context.Context, sql string) error {
	f.execs = append(f.execs, sql)
	return f.err
}

func (f *fakeExecutor) Close(context.Context) error {
	f.closed = true
	return nil
}

func newClientWithExecutor(exec *fakeExecutor) *Client {
	c := New(Config{URL: "https://proj.test", APIKey: "anon", DBURI: "postgres://direct"})
	c.connect = func(context.Context, string) (schemaExecutor, error) {
		return exec, nil
	}
	return c
}

func TestEnsureSchema_DirectConnectionAppliesDDL(t *testing.T) {
	exec := &fakeExecutor{}
	c := newClientWithExecutor(exec)

	require.NoError(t, c.EnsureSchema(context.Background()))

	require.Len(t, exec.execs, 1, "the whole batch goes in one round trip")
	assert.Equal(t, SchemaDDL, exec.execs[0])
	assert.True(t, exec.closed, "the direct connection is short-lived")
}

func TestEnsureSchema_DuplicateObjectsAreIdempotent(t *testing.T) {
	for _, code := range []string{"42P07", "42710", "42723"} {
		exec := &fakeExecutor{err: &pgconn.PgError{Code: code, Message: "already exists"}}
		c := newClientWithExecutor(exec)

		assert.NoError(t, c.EnsureSchema(context.Background()), "sqlstate %s must be tolerated", code)
	}
}

func TestEnsureSchema_OtherDatabaseErrorsPropagate(t *testing.T) {
	exec := &fakeExecutor{err: &pgconn.PgError{Code: "42501", Message: "permission denied"}}
	c := newClientWithExecutor(exec)

	err := c.EnsureSchema(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "42501")
}

func TestEnsureSchema_ConnectFailurePropagates(t *testing.T) {
	c := New(Config{URL: "https://proj.test", APIKey: "anon", DBURI: "postgres://direct"})
	boom := errors.New("connection refused")
	c.connect = func(context.Context, string) (schemaExecutor, error) {
		return nil, boom
	}

	assert.ErrorIs(t, c.EnsureSchema(context.Background()), boom)
}

func TestEnsureSchema_ProbeMissingRelation(t *testing.T) {
	writes := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writes++
		}
		require.Equal(t, "/rest/v1/collections", r.URL.Path)
		assert.Equal(t, "id", r.URL.Query().Get("select"))

		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"PGRST205","message":"Could not find the table 'public.collections' in the schema cache"}`))
	}))
	defer srv.Close()

	c := New(Config{URL: srv.URL, APIKey: "anon"})

	err := c.EnsureSchema(context.Background())
	var schemaErr *provider.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, SchemaDDL, schemaErr.DDL, "the error carries the literal remediation DDL")
	assert.Contains(t, schemaErr.Error(), "CREATE TABLE IF NOT EXISTS collections")
	assert.Zero(t, writes, "probe never attempts a write")
}

func TestEnsureSchema_ProbeHealthySchema(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(Config{URL: srv.URL, APIKey: "anon"})
	assert.NoError(t, c.EnsureSchema(context.Background()))
}

func TestEnsureSchema_ProbeOtherError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(Config{URL: srv.URL, APIKey: "anon"})

	err := c.EnsureSchema(context.Background())
	var remoteErr *provider.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusServiceUnavailable, remoteErr.Status)
}

func TestMissingRelationSignature(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"postgrest missing column cache", `{"code":"PGRST204"}`, true},
		{"postgrest missing table cache", `{"code":"PGRST205"}`, true},
		{"raw undefined_table sqlstate", `{"code":"42P01"}`, true},
		{"plain postgres message", `relation "collections" does not exist`, true},
		{"healthy body", `[]`, false},
		{"unrelated error", `{"message":"permission denied"}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, missingRelationSignature(tt.body))
		})
	}
}
