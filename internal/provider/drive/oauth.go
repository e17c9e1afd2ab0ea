package drive

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/apivault/apivault/internal/provider"
	"github.com/apivault/apivault/models"
)

// AuthURL implements provider.CodeAuthenticator. It generates a PKCE
// verifier, retains it keyed by a fresh CSRF state token, and returns the
// authorization URL carrying the S256 challenge.
func (c *Client) AuthURL() (string, string, error) {
	verifier := oauth2.GenerateVerifier()
	state := uuid.NewString()

	c.mu.Lock()
	c.verifiers[state] = verifier
	c.mu.Unlock()

	url := c.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.S256ChallengeOption(verifier),
	)
	return url, state, nil
}

// ExchangeCode implements provider.CodeAuthenticator. The verifier stored
// under state is sent with the code; on success the user identity is fetched
// and the root storage folder is ensured.
func (c *Client) ExchangeCode(ctx context.Context, code, state string) (models.TokenResponse, error) {
	c.mu.Lock()
	verifier, ok := c.verifiers[state]
	if ok {
		delete(c.verifiers, state)
	}
	c.mu.Unlock()
	if !ok {
		return models.TokenResponse{}, fmt.Errorf("%w: unknown authorization state", provider.ErrAuthenticationFailed)
	}

	token, err := c.oauth.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("%w: exchange code: %v", provider.ErrAuthenticationFailed, err)
	}

	c.mu.Lock()
	c.accessToken = token.AccessToken
	c.refreshToken = token.RefreshToken
	c.mu.Unlock()

	user, err := c.fetchUserInfo(ctx)
	if err != nil {
		return models.TokenResponse{}, err
	}

	c.mu.Lock()
	u := user
	c.user = &u
	c.mu.Unlock()

	if err := c.ensureRootFolder(ctx); err != nil {
		return models.TokenResponse{}, err
	}

	return models.TokenResponse{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		User:         user,
	}, nil
}

// RefreshAccessToken implements provider.CodeAuthenticator.
func (c *Client) RefreshAccessToken(ctx context.Context) error {
	c.mu.RLock()
	refresh := c.refreshToken
	c.mu.RUnlock()
	if refresh == "" {
		return provider.ErrNoRefreshToken
	}

	token, err := c.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refresh}).Token()
	if err != nil {
		return fmt.Errorf("refresh access token: %w", err)
	}

	c.mu.Lock()
	c.accessToken = token.AccessToken
	if token.RefreshToken != "" {
		c.refreshToken = token.RefreshToken
	}
	c.mu.Unlock()
	return nil
}

func (c *Client) fetchUserInfo(ctx context.Context) (models.User, error) {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return models.User{}, err
	}

	resp, err := req.Get(c.userInfoURL)
	if err != nil {
		return models.User{}, fmt.Errorf("fetch user info: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode user info: %w", err)
	}
	return user, nil
}
