// Package apiserver implements the item-level sync provider backed by the
// bespoke apivault REST API.
package apiserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/apivault/apivault/internal/provider"
	"github.com/apivault/apivault/models"
)

// Config holds the transport settings for the API-server provider.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the bespoke REST backend. Safe for concurrent use; the
// session token is guarded by a read-write mutex.
type Client struct {
	client *resty.Client

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	user         *models.User
}

type authResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token,omitempty"`
	User         models.User `json:"user"`
}

// New constructs a Client for the given base URL.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{client: cli}
}

// ID implements provider.Provider.
func (c *Client) ID() provider.ID { return provider.APIServer }

// SupportsItemOps implements provider.Provider.
func (c *Client) SupportsItemOps() bool { return true }

// IsAuthenticated implements provider.Provider.
func (c *Client) IsAuthenticated() bool {
	return c.token() != ""
}

// CurrentUser implements provider.Provider.
func (c *Client) CurrentUser() *models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// SignOut implements provider.Provider.
func (c *Client) SignOut() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = ""
	c.refreshToken = ""
	c.user = nil
}

// SignUp registers a new account and stores the returned session.
func (c *Client) SignUp(ctx context.Context, email, password, name string) (models.TokenResponse, error) {
	body := map[string]string{"email": email, "password": password}
	if name != "" {
		body["name"] = name
	}
	return c.authenticate(ctx, "/api/auth/register", body)
}

// SignIn authenticates an existing account and stores the returned session.
func (c *Client) SignIn(ctx context.Context, email, password string) (models.TokenResponse, error) {
	body := map[string]string{"email": email, "password": password}
	return c.authenticate(ctx, "/api/auth/login", body)
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

	var ar authResponse
	if err = json.Unmarshal(resp.Body(), &ar); err != nil {
		return models.TokenResponse{}, fmt.Errorf("decode auth response: %w", err)
	}
	if ar.User.ID == "" {
		// Backends that omit the user object still identify the account in
		// the token claims.
		ar.User = userFromClaims(ar.AccessToken)
	}

	c.mu.Lock()
	c.accessToken = ar.AccessToken
	c.refreshToken = ar.RefreshToken
	u := ar.User
	c.user = &u
	c.mu.Unlock()

	return models.TokenResponse{
		AccessToken:  ar.AccessToken,
		RefreshToken: ar.RefreshToken,
		User:         ar.User,
	}, nil
}

// userFromClaims extracts the account identity from unverified JWT claims.
// The token was just received over TLS from the issuer, so signature
// verification is the server's job, not ours.
func userFromClaims(tokenString string) models.User {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return models.User{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.User{}
	}

	var u models.User
	if sub, err := claims.GetSubject(); err == nil {
		u.ID = sub
	}
	if email, ok := claims["email"].(string); ok {
		u.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		u.Name = name
	}
	return u
}

// CreateCollection implements provider.ItemProvider.
func (c *Client) CreateCollection(ctx context.Context, col models.Collection) (string, error) {
	return c.createItem(ctx, "/api/collections", col)
}

// UpdateCollection implements provider.ItemProvider.
func (c *Client) UpdateCollection(ctx context.Context, cloudID string, col models.Collection) error {
	return c.updateItem(ctx, "/api/collections/"+cloudID, col)
}

// DeleteCollection implements provider.ItemProvider.
func (c *Client) DeleteCollection(ctx context.Context, cloudID string) error {
	return c.deleteItem(ctx, "/api/collections/"+cloudID)
}

// ListCollections implements provider.ItemProvider.
func (c *Client) ListCollections(ctx context.Context) ([]models.Collection, error) {
	var out []models.Collection
	if err := c.listItems(ctx, "/api/collections", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRequest implements provider.ItemProvider.
func (c *Client) CreateRequest(ctx context.Context, r models.HTTPRequest) (string, error) {
	return c.createItem(ctx, "/api/requests", r)
}

// UpdateRequest implements provider.ItemProvider.
func (c *Client) UpdateRequest(ctx context.Context, cloudID string, r models.HTTPRequest) error {
	return c.updateItem(ctx, "/api/requests/"+cloudID, r)
}

// DeleteRequest implements provider.ItemProvider.
func (c *Client) DeleteRequest(ctx context.Context, cloudID string) error {
	return c.deleteItem(ctx, "/api/requests/"+cloudID)
}

// ListRequests implements provider.ItemProvider.
func (c *Client) ListRequests(ctx context.Context) ([]models.HTTPRequest, error) {
	var out []models.HTTPRequest
	if err := c.listItems(ctx, "/api/requests", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateEnvironment implements provider.ItemProvider.
func (c *Client) CreateEnvironment(ctx context.Context, e models.Environment) (string, error) {
	return c.createItem(ctx, "/api/environments", e)
}

// UpdateEnvironment implements provider.ItemProvider.
func (c *Client) UpdateEnvironment(ctx context.Context, cloudID string, e models.Environment) error {
	return c.updateItem(ctx, "/api/environments/"+cloudID, e)
}

// DeleteEnvironment implements provider.ItemProvider.
func (c *Client) DeleteEnvironment(ctx context.Context, cloudID string) error {
	return c.deleteItem(ctx, "/api/environments/"+cloudID)
}

// ListEnvironments implements provider.ItemProvider.
func (c *Client) ListEnvironments(ctx context.Context) ([]models.Environment, error) {
	var out []models.Environment
	if err := c.listItems(ctx, "/api/environments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

type createdResponse struct {
	CloudID string `json:"cloud_id"`
	ID      string `json:"id"`
}

func (c *Client) createItem(ctx context.Context, path string, item any) (string, error) {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return "", err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var created createdResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return "", fmt.Errorf("decode create response: %w", err)
	}
	if created.CloudID != "" {
		return created.CloudID, nil
	}
	return created.ID, nil
}

func (c *Client) updateItem(ctx context.Context, path string, item any) error {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		Put(path)
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}
	return mapHTTPError(resp)
}

func (c *Client) deleteItem(ctx context.Context, path string) error {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete(path)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	return mapHTTPError(resp)
}

func (c *Client) listItems(ctx context.Context, path string, out any) error {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode list response: %w", err)
	}
	return nil
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

func (c *Client) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := c.token()
	if token == "" {
		return nil, provider.ErrNotAuthenticated
	}
	return c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
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
