// Package postgrest implements the item-level sync provider backed by a
// PostgREST-fronted relational database (Supabase-compatible), including the
// idempotent remote-schema bootstrap.
package postgrest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/apivault/apivault/internal/provider"
	"github.com/apivault/apivault/models"
)

const (
	tableCollections  = "collections"
	tableRequests     = "requests"
	tableEnvironments = "environments"
)

// Config holds the connection settings for the PostgREST provider.
type Config struct {
	// URL is the project base URL; REST calls go to URL/rest/v1 and auth
	// calls to URL/auth/v1.
	URL string
	// APIKey is the anon/service API key sent on every request.
	APIKey string
	// DBURI is an optional direct PostgreSQL connection string used only by
	// EnsureSchema. When empty, schema provisioning can probe but not heal.
	DBURI   string
	Timeout time.Duration
}

// Client talks to the relational backend through PostgREST. Safe for
// concurrent use.
type Client struct {
	client *resty.Client
	url    string
	apiKey string
	dbURI  string

	// connect opens the direct database connection for EnsureSchema.
	// Replaced in tests.
	connect schemaConnectFunc

	mu          sync.RWMutex
	accessToken string
	user        *models.User
}

// New constructs a Client from cfg.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	url := strings.TrimRight(cfg.URL, "/")
	cli := resty.New().
		SetBaseURL(url).
		SetTimeout(cfg.Timeout).
		SetHeader("apikey", cfg.APIKey)

	return &Client{
		client:  cli,
		url:     url,
		apiKey:  cfg.APIKey,
		dbURI:   cfg.DBURI,
		connect: pgxSchemaConnect,
	}
}

// ID implements provider.Provider.
func (c *Client) ID() provider.ID { return provider.Postgrest }

// SupportsItemOps implements provider.Provider.
func (c *Client) SupportsItemOps() bool { return true }

// IsAuthenticated implements provider.Provider. The API key alone authorizes
// database access, so a configured key counts as authenticated even before
// any user sign-in.
func (c *Client) IsAuthenticated() bool {
	return c.apiKey != ""
}

// CurrentUser implements provider.Provider. Without a signed-in user a
// synthetic identity is reported so the UI can show the connection.
func (c *Client) CurrentUser() *models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user != nil {
		u := *c.user
		return &u
	}
	if c.apiKey == "" {
		return nil
	}
	return &models.User{
		ID:    "postgrest",
		Email: "connected to " + c.url,
		Name:  "API key connection",
	}
}

// SignOut implements provider.Provider.
func (c *Client) SignOut() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = ""
	c.user = nil
}

type gotrueUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Metadata struct {
		Name string `json:"name"`
	} `json:"user_metadata"`
}

type gotrueAuthResponse struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token,omitempty"`
	User         gotrueUser `json:"user"`
}

// SignUp registers a user against the auth endpoint.
func (c *Client) SignUp(ctx context.Context, email, password, name string) (models.TokenResponse, error) {
	body := map[string]any{"email": email, "password": password}
	if name != "" {
		body["data"] = map[string]string{"name": name}
	}
	return c.authenticate(ctx, "/auth/v1/signup", body)
}

// SignIn authenticates with the password grant.
func (c *Client) SignIn(ctx context.Context, email, password string) (models.TokenResponse, error) {
	body := map[string]any{"email": email, "password": password}
	return c.authenticate(ctx, "/auth/v1/token?grant_type=password", body)
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (models.TokenResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("auth request: %w", err)
	}
	if resp.IsError() {
		detail := strings.TrimSpace(string(resp.Body()))
		if detail == "" {
			detail = http.StatusText(resp.StatusCode())
		}
		return models.TokenResponse{}, fmt.Errorf("%w: %s", provider.ErrAuthenticationFailed, detail)
	}

	var ar gotrueAuthResponse
	if err = json.Unmarshal(resp.Body(), &ar); err != nil {
		return models.TokenResponse{}, fmt.Errorf("decode auth response: %w", err)
	}

	user := models.User{
		ID:    ar.User.ID,
		Email: ar.User.Email,
		Name:  ar.User.Metadata.Name,
	}

	c.mu.Lock()
	c.accessToken = ar.AccessToken
	u := user
	c.user = &u
	c.mu.Unlock()

	return models.TokenResponse{
		AccessToken:  ar.AccessToken,
		RefreshToken: ar.RefreshToken,
		User:         user,
	}, nil
}

// CreateCollection implements provider.ItemProvider.
func (c *Client) CreateCollection(ctx context.Context, col models.Collection) (string, error) {
	// A record being created has never been pushed, so the row adopts the
	// local id as its cloud id. Other devices match on cloud_id after a pull.
	if col.CloudID == "" {
		col.CloudID = col.ID.String()
	}
	return c.insertRow(ctx, tableCollections, col)
}

// UpdateCollection implements provider.ItemProvider.
func (c *Client) UpdateCollection(ctx context.Context, cloudID string, col models.Collection) error {
	return c.updateRow(ctx, tableCollections, cloudID, col)
}

// DeleteCollection implements provider.ItemProvider.
func (c *Client) DeleteCollection(ctx context.Context, cloudID string) error {
	return c.deleteRow(ctx, tableCollections, cloudID)
}

// ListCollections implements provider.ItemProvider.
func (c *Client) ListCollections(ctx context.Context) ([]models.Collection, error) {
	var out []models.Collection
	if err := c.selectRows(ctx, tableCollections, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRequest implements provider.ItemProvider.
func (c *Client) CreateRequest(ctx context.Context, r models.HTTPRequest) (string, error) {
	if r.CloudID == "" {
		r.CloudID = r.ID.String()
	}
	return c.insertRow(ctx, tableRequests, r)
}

// UpdateRequest implements provider.ItemProvider.
func (c *Client) UpdateRequest(ctx context.Context, cloudID string, r models.HTTPRequest) error {
	return c.updateRow(ctx, tableRequests, cloudID, r)
}

// DeleteRequest implements provider.ItemProvider.
func (c *Client) DeleteRequest(ctx context.Context, cloudID string) error {
	return c.deleteRow(ctx, tableRequests, cloudID)
}

// ListRequests implements provider.ItemProvider.
func (c *Client) ListRequests(ctx context.Context) ([]models.HTTPRequest, error) {
	var out []models.HTTPRequest
	if err := c.selectRows(ctx, tableRequests, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateEnvironment implements provider.ItemProvider.
func (c *Client) CreateEnvironment(ctx context.Context, e models.Environment) (string, error) {
	if e.CloudID == "" {
		e.CloudID = e.ID.String()
	}
	return c.insertRow(ctx, tableEnvironments, e)
}

// UpdateEnvironment implements provider.ItemProvider.
func (c *Client) UpdateEnvironment(ctx context.Context, cloudID string, e models.Environment) error {
	return c.updateRow(ctx, tableEnvironments, cloudID, e)
}

// DeleteEnvironment implements provider.ItemProvider.
func (c *Client) DeleteEnvironment(ctx context.Context, cloudID string) error {
	return c.deleteRow(ctx, tableEnvironments, cloudID)
}

// ListEnvironments implements provider.ItemProvider.
func (c *Client) ListEnvironments(ctx context.Context) ([]models.Environment, error) {
	var out []models.Environment
	if err := c.selectRows(ctx, tableEnvironments, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// restRequest builds a request against /rest/v1 with the bearer set to the
// user access token when one exists, the API key otherwise.
func (c *Client) restRequest(ctx context.Context) *resty.Request {
	bearer := c.apiKey
	c.mu.RLock()
	if c.accessToken != "" {
		bearer = c.accessToken
	}
	c.mu.RUnlock()

	return c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+bearer)
}

func (c *Client) insertRow(ctx context.Context, table string, row any) (string, error) {
	// PostgREST inserts expect an array and return the created rows when
	// asked for representation.
	resp, err := c.restRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=representation").
		SetBody([]any{row}).
		Post("/rest/v1/" + table)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var created []struct {
		ID string `json:"id"`
	}
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return "", fmt.Errorf("decode %s insert response: %w", table, err)
	}
	if len(created) == 0 || created[0].ID == "" {
		return "", fmt.Errorf("no id returned for %s insert", table)
	}
	return created[0].ID, nil
}

func (c *Client) updateRow(ctx context.Context, table, cloudID string, row any) error {
	resp, err := c.restRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("id", "eq."+cloudID).
		SetBody(row).
		Patch("/rest/v1/" + table)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	return mapHTTPError(resp)
}

func (c *Client) deleteRow(ctx context.Context, table, cloudID string) error {
	resp, err := c.restRequest(ctx).
		SetQueryParam("id", "eq."+cloudID).
		Delete("/rest/v1/" + table)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	return mapHTTPError(resp)
}

func (c *Client) selectRows(ctx context.Context, table string, out any) error {
	resp, err := c.restRequest(ctx).
		SetQueryParam("select", "*").
		Get("/rest/v1/" + table)
	if err != nil {
		return fmt.Errorf("select from %s: %w", table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s rows: %w", table, err)
	}
	return nil
}

func mapHTTPError(resp *resty.Response) error {
	if !resp.IsError() {
		return nil
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return provider.ErrNotAuthenticated
	}
	return &provider.RemoteError{
		Status: resp.StatusCode(),
		Body:   strings.TrimSpace(string(resp.Body())),
	}
}
