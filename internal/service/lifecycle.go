package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/apivault/apivault/internal/provider"
	"github.com/apivault/apivault/internal/provider/apiserver"
	"github.com/apivault/apivault/internal/provider/drive"
	"github.com/apivault/apivault/internal/provider/postgrest"
	"github.com/apivault/apivault/internal/store"
	"github.com/apivault/apivault/internal/syncclient"
	"github.com/apivault/apivault/models"
)

// Settings keys for persisted provider selection. Each provider's serialized
// config lives under its own key so switching providers keeps the previous
// configuration around.
const (
	settingLastProvider   = "last_sync_provider"
	settingProviderPrefix = "sync_provider_"
)

// Initialize selects and configures a sync provider, persists the
// configuration, and replaces any previously active façade. The previous
// provider's in-memory session is discarded; pending unsynced state is
// unaffected because it lives in the local store.
func (s *SyncService) Initialize(ctx context.Context, id provider.ID, cfg models.ProviderConfig) error {
	p, err := buildProvider(id, cfg)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("serialize provider config: %w", err)
	}
	if err := s.storages.Settings.Set(ctx, settingProviderPrefix+string(id), string(raw)); err != nil {
		return fmt.Errorf("persist provider config: %w", err)
	}
	if err := s.storages.Settings.Set(ctx, settingLastProvider, string(id)); err != nil {
		return fmt.Errorf("persist provider selection: %w", err)
	}

	s.mu.Lock()
	s.client = syncclient.New(p, s.logger)
	s.mu.Unlock()

	s.logger.Info().Str("provider", string(id)).Msg("sync provider initialized")
	return nil
}

// Restore reattaches the provider used in the previous run, if any. A clean
// first start (no persisted selection) is not an error.
func (s *SyncService) Restore(ctx context.Context) error {
	last, err := s.storages.Settings.Get(ctx, settingLastProvider)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read provider selection: %w", err)
	}

	id, err := provider.ParseID(last)
	if err != nil {
		return fmt.Errorf("restore provider selection: %w", err)
	}

	raw, err := s.storages.Settings.Get(ctx, settingProviderPrefix+string(id))
	if err != nil {
		return fmt.Errorf("read provider config: %w", err)
	}
	var cfg models.ProviderConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return fmt.Errorf("decode provider config: %w", err)
	}

	p, err := buildProvider(id, cfg)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.client = syncclient.New(p, s.logger)
	s.mu.Unlock()

	s.logger.Info().Str("provider", string(id)).Msg("sync provider restored")
	return nil
}

// Logout signs out of the active provider, detaches it, and wipes all
// persisted provider configuration including the last-provider pointer.
func (s *SyncService) Logout(ctx context.Context) error {
	s.mu.Lock()
	if s.client != nil {
		s.client.SignOut()
		s.client = nil
	}
	s.lastSync = nil
	s.mu.Unlock()

	for _, id := range []provider.ID{provider.APIServer, provider.Postgrest, provider.Drive} {
		if err := s.storages.Settings.Delete(ctx, settingProviderPrefix+string(id)); err != nil {
			return fmt.Errorf("clear provider config %s: %w", id, err)
		}
	}
	if err := s.storages.Settings.Delete(ctx, settingLastProvider); err != nil {
		return fmt.Errorf("clear provider selection: %w", err)
	}

	s.logger.Info().Msg("logged out of sync provider")
	return nil
}

// ActiveProvider reports the currently attached provider id, or false when
// none is configured.
func (s *SyncService) ActiveProvider() (provider.ID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return "", false
	}
	return s.client.ProviderID(), true
}

func buildProvider(id provider.ID, cfg models.ProviderConfig) (provider.Provider, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	switch id {
	case provider.APIServer:
		return apiserver.New(apiserver.Config{
			BaseURL: cfg.BaseURL,
			Timeout: timeout,
		}), nil
	case provider.Postgrest:
		return postgrest.New(postgrest.Config{
			URL:     cfg.URL,
			APIKey:  cfg.APIKey,
			DBURI:   cfg.DBURI,
			Timeout: timeout,
		}), nil
	case provider.Drive:
		return drive.New(drive.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURI:  cfg.RedirectURI,
			Timeout:      timeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown sync provider %q", id)
	}
}
