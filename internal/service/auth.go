package service

import (
	"context"
	"fmt"

	"github.com/apivault/apivault/internal/provider"
	"github.com/apivault/apivault/models"
)

// SignUp registers a new account on the active provider. Only providers with
// credential-based accounts support it.
func (s *SyncService) SignUp(ctx context.Context, email, password, name string) (models.TokenResponse, error) {
	client, err := s.passwordAuthenticator()
	if err != nil {
		return models.TokenResponse{}, err
	}
	return client.SignUp(ctx, email, password, name)
}

// SignIn authenticates against the active provider with credentials.
func (s *SyncService) SignIn(ctx context.Context, email, password string) (models.TokenResponse, error) {
	client, err := s.passwordAuthenticator()
	if err != nil {
		return models.TokenResponse{}, err
	}
	return client.SignIn(ctx, email, password)
}

// AuthURL starts the OAuth2 authorization-code flow on the active provider.
func (s *SyncService) AuthURL() (string, string, error) {
	client, err := s.codeAuthenticator()
	if err != nil {
		return "", "", err
	}
	return client.AuthURL()
}

// ExchangeCode completes the OAuth2 flow started by AuthURL.
func (s *SyncService) ExchangeCode(ctx context.Context, code, state string) (models.TokenResponse, error) {
	client, err := s.codeAuthenticator()
	if err != nil {
		return models.TokenResponse{}, err
	}
	return client.ExchangeCode(ctx, code, state)
}

// RefreshToken renews the active provider's access token.
func (s *SyncService) RefreshToken(ctx context.Context) error {
	client, err := s.codeAuthenticator()
	if err != nil {
		return err
	}
	return client.RefreshAccessToken(ctx)
}

// EnsureRemoteSchema provisions remote structures on providers that need
// them before first use.
func (s *SyncService) EnsureRemoteSchema(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := s.facade()
	if err != nil {
		return err
	}
	sp, ok := client.Provider().(provider.SchemaProvisioner)
	if !ok {
		return fmt.Errorf("%w (provider %s)", provider.ErrUnsupportedOperation, client.ProviderID())
	}
	return sp.EnsureSchema(ctx)
}

func (s *SyncService) passwordAuthenticator() (provider.PasswordAuthenticator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := s.facade()
	if err != nil {
		return nil, err
	}
	pa, ok := client.Provider().(provider.PasswordAuthenticator)
	if !ok {
		return nil, fmt.Errorf("%w (provider %s)", provider.ErrUnsupportedOperation, client.ProviderID())
	}
	return pa, nil
}

func (s *SyncService) codeAuthenticator() (provider.CodeAuthenticator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := s.facade()
	if err != nil {
		return nil, err
	}
	ca, ok := client.Provider().(provider.CodeAuthenticator)
	if !ok {
		return nil, fmt.Errorf("%w (provider %s)", provider.ErrUnsupportedOperation, client.ProviderID())
	}
	return ca, nil
}
