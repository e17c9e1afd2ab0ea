package postgrest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/apivault/apivault/internal/provider"
)

// SchemaDDL is the complete remote schema: three entity tables, cloud_id
// indexes and updated_at triggers. Every statement is safe to repeat, so the
// whole batch is idempotent.
const SchemaDDL = `-- apivault sync schema
CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

CREATE TABLE IF NOT EXISTS collections (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    name TEXT NOT NULL,
    description TEXT,
    parent_id UUID REFERENCES collections(id) ON DELETE CASCADE,
    auth JSONB,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
    updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
    synced BOOLEAN DEFAULT false,
    version BIGINT DEFAULT 0,
    cloud_id TEXT
);

CREATE TABLE IF NOT EXISTS requests (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    name TEXT NOT NULL,
    method TEXT NOT NULL,
    url TEXT NOT NULL,
    headers JSONB DEFAULT '{}'::jsonb,
    body JSONB,
    collection_id UUID REFERENCES collections(id) ON DELETE CASCADE,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
    updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
    synced BOOLEAN DEFAULT false,
    version BIGINT DEFAULT 0,
    cloud_id TEXT
);

CREATE TABLE IF NOT EXISTS environments (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    name TEXT NOT NULL,
    variables JSONB DEFAULT '{}'::jsonb,
    is_active BOOLEAN DEFAULT false,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
    updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
    synced BOOLEAN DEFAULT false,
    version BIGINT DEFAULT 0,
    cloud_id TEXT
);

CREATE INDEX IF NOT EXISTS idx_collections_parent_id ON collections(parent_id);
CREATE INDEX IF NOT EXISTS idx_collections_cloud_id ON collections(cloud_id);
CREATE INDEX IF NOT EXISTS idx_requests_collection_id ON requests(collection_id);
CREATE INDEX IF NOT EXISTS idx_requests_cloud_id ON requests(cloud_id);
CREATE INDEX IF NOT EXISTS idx_environments_is_active ON environments(is_active);
CREATE INDEX IF NOT EXISTS idx_environments_cloud_id ON environments(cloud_id);

ALTER TABLE collections DISABLE ROW LEVEL SECURITY;
ALTER TABLE requests DISABLE ROW LEVEL SECURITY;
ALTER TABLE environments DISABLE ROW LEVEL SECURITY;

CREATE OR REPLACE FUNCTION update_updated_at_column()
RETURNS TRIGGER AS $$
BEGIN
    NEW.updated_at = NOW();
    RETURN NEW;
END;
$$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS update_collections_updated_at ON collections;
CREATE TRIGGER update_collections_updated_at
    BEFORE UPDATE ON collections
    FOR EACH ROW
    EXECUTE FUNCTION update_updated_at_column();

DROP TRIGGER IF EXISTS update_requests_updated_at ON requests;
CREATE TRIGGER update_requests_updated_at
    BEFORE UPDATE ON requests
    FOR EACH ROW
    EXECUTE FUNCTION update_updated_at_column();

DROP TRIGGER IF EXISTS update_environments_updated_at ON environments;
CREATE TRIGGER update_environments_updated_at
    BEFORE UPDATE ON environments
    FOR EACH ROW
    EXECUTE FUNCTION update_updated_at_column();`

// schemaExecutor runs the DDL batch over a short-lived direct connection.
type schemaExecutor interface {
	Exec(ctx context.Context, sql string) error
	Close(ctx context.Context) error
}

type schemaConnectFunc func(ctx context.Context, dbURI string) (schemaExecutor, error)

type pgxExecutor struct {
	conn *pgx.Conn
}

func (e *pgxExecutor) Exec(ctx context.Context, sql string) error {
	// No arguments means pgx uses the simple query protocol, which accepts
	// the whole multi-statement batch in one round trip.
	_, err := e.conn.Exec(ctx, sql)
	return err
}

func (e *pgxExecutor) Close(ctx context.Context) error {
	return e.conn.Close(ctx)
}

func pgxSchemaConnect(ctx context.Context, dbURI string) (schemaExecutor, error) {
	conn, err := pgx.Connect(ctx, dbURI)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return &pgxExecutor{conn: conn}, nil
}

// EnsureSchema implements provider.SchemaProvisioner.
//
// With a direct connection string configured, the DDL batch is applied
// unconditionally; it is idempotent, so repeating it is the self-healing
// path. Without one, the first table is probed through PostgREST; a missing
// relation yields a *provider.SchemaError carrying the full remediation DDL,
// and no write is ever attempted.
func (c *Client) EnsureSchema(ctx context.Context) error {
	if c.dbURI != "" {
		return c.applySchema(ctx)
	}
	return c.probeSchema(ctx)
}

func (c *Client) applySchema(ctx context.Context) error {
	exec, err := c.connect(ctx, c.dbURI)
	if err != nil {
		return err
	}
	defer exec.Close(ctx)

	if err := exec.Exec(ctx, SchemaDDL); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// A concurrent bootstrap can race the trigger/function
			// statements; an already-present object means the schema is in
			// place.
			switch pgErr.Code {
			case pgerrcode.DuplicateTable, pgerrcode.DuplicateObject, pgerrcode.DuplicateFunction:
				return nil
			}
			return fmt.Errorf("apply schema (sqlstate %s): %w", pgErr.Code, err)
		}
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (c *Client) probeSchema(ctx context.Context) error {
	resp, err := c.restRequest(ctx).
		SetQueryParam("select", "id").
		SetQueryParam("limit", "1").
		Get("/rest/v1/" + tableCollections)
	if err != nil {
		return fmt.Errorf("schema probe: %w", err)
	}

	body := string(resp.Body())
	if missingRelationSignature(body) {
		return &provider.SchemaError{DDL: SchemaDDL}
	}
	if resp.IsError() {
		return &provider.RemoteError{
			Status: resp.StatusCode(),
			Body:   strings.TrimSpace(body),
		}
	}
	return nil
}

// missingRelationSignature recognizes the backend-specific error shapes that
// mean "the table does not exist": PostgREST PGRST2xx schema-cache codes and
// the raw PostgreSQL undefined_table message.
func missingRelationSignature(body string) bool {
	if strings.Contains(body, "PGRST204") || strings.Contains(body, "PGRST205") {
		return true
	}
	if strings.Contains(body, pgerrcode.UndefinedTable) {
		return true
	}
	return strings.Contains(body, "relation") && strings.Contains(body, "does not exist")
}
