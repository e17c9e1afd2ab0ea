// Package provider defines the capability surface shared by all remote sync
// backends and the error taxonomy they map transport failures onto.
//
// Three implementations ship in sub-packages: apiserver (bespoke REST CRUD),
// postgrest (relational store behind PostgREST) and drive (OAuth2-gated
// single-file blob store). The first two are item-level providers, the last
// is a bulk provider; SupportsItemOps tells the sync client which protocol
// to drive without switching on concrete types.
package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/apivault/apivault/models"
)

//go:generate mockgen -source=provider.go -destination=../mock/provider_mock.go -package=mock

// ID names one pluggable remote backend.
type ID string

const (
	// APIServer is the bespoke REST CRUD backend.
	APIServer ID = "api_server"
	// Postgrest is the PostgREST-fronted relational backend.
	Postgrest ID = "postgrest"
	// Drive is the OAuth2-gated file-blob backend.
	Drive ID = "drive"
)

// ParseID normalizes a user-supplied provider name. Legacy aliases from
// earlier releases are accepted.
func ParseID(s string) (ID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "api_server", "apiserver", "api":
		return APIServer, nil
	case "postgrest", "supabase", "relational":
		return Postgrest, nil
	case "drive", "google_drive", "googledrive", "blob":
		return Drive, nil
	default:
		return "", fmt.Errorf("unknown sync provider %q", s)
	}
}

// Provider is the capability surface common to every remote backend.
type Provider interface {
	// ID reports which backend this provider talks to.
	ID() ID

	// SupportsItemOps reports the capability class: true for per-record
	// CRUD providers, false for bulk (whole-document) providers.
	SupportsItemOps() bool

	// IsAuthenticated reports whether the provider holds a usable session.
	IsAuthenticated() bool

	// CurrentUser returns the authenticated account, or nil if none.
	CurrentUser() *models.User

	// SignOut discards all in-memory session state.
	SignOut()
}

// ItemProvider is implemented by backends with per-record CRUD endpoints,
// one set per entity type.
type ItemProvider interface {
	Provider

	CreateCollection(ctx context.Context, c models.Collection) (string, error)
	UpdateCollection(ctx context.Context, cloudID string, c models.Collection) error
	DeleteCollection(ctx context.Context, cloudID string) error
	ListCollections(ctx context.Context) ([]models.Collection, error)

	CreateRequest(ctx context.Context, r models.HTTPRequest) (string, error)
	UpdateRequest(ctx context.Context, cloudID string, r models.HTTPRequest) error
	DeleteRequest(ctx context.Context, cloudID string) error
	ListRequests(ctx context.Context) ([]models.HTTPRequest, error)

	CreateEnvironment(ctx context.Context, e models.Environment) (string, error)
	UpdateEnvironment(ctx context.Context, cloudID string, e models.Environment) error
	DeleteEnvironment(ctx context.Context, cloudID string) error
	ListEnvironments(ctx context.Context) ([]models.Environment, error)
}

// BulkProvider is implemented by backends whose only sync primitive is
// reading or overwriting the entire dataset as one document.
type BulkProvider interface {
	Provider

	PushBulk(ctx context.Context, snapshot models.SyncSnapshot) error
	PullBulk(ctx context.Context) (models.SyncSnapshot, error)
}

// PasswordAuthenticator is implemented by providers with credential-based
// accounts (api_server, postgrest).
type PasswordAuthenticator interface {
	SignUp(ctx context.Context, email, password, name string) (models.TokenResponse, error)
	SignIn(ctx context.Context, email, password string) (models.TokenResponse, error)
}

// CodeAuthenticator is implemented by providers gated behind an OAuth2
// authorization-code flow (drive).
type CodeAuthenticator interface {
	// AuthURL builds the authorization URL with a PKCE challenge and a CSRF
	// state token. The caller directs the user through the browser flow and
	// returns the resulting code to ExchangeCode.
	AuthURL() (url string, state string, err error)

	// ExchangeCode trades the authorization code for tokens, fetches the
	// user identity and prepares remote storage. state must be the value
	// returned by AuthURL; it selects the PKCE verifier for the exchange.
	ExchangeCode(ctx context.Context, code, state string) (models.TokenResponse, error)

	// RefreshAccessToken mints a new access token from the stored refresh
	// token. Fails with ErrNoRefreshToken if none was issued.
	RefreshAccessToken(ctx context.Context) error
}

// SchemaProvisioner is implemented by providers that need remote structures
// created before first use (postgrest).
type SchemaProvisioner interface {
	// EnsureSchema is idempotent: with a direct database connection it
	// applies the DDL unconditionally; without one it probes and returns a
	// *SchemaError carrying the remediation DDL when tables are missing.
	EnsureSchema(ctx context.Context) error
}
