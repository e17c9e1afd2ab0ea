// Package service hosts the application-facing operations: the sync
// orchestrator, provider lifecycle, authentication passthroughs and local
// workspace CRUD. The UI layer talks only to this package.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/internal/store"
	"github.com/apivault/apivault/models"
)

// SyncService drives the push/pull/full-sync protocol against the active
// provider. It is a single shared resource: the mutex admits one in-flight
// sync operation at a time, and callers block until the lock is free.
type SyncService struct {
	storages *store.Storages
	logger   *logger.Logger

	mu       sync.Mutex
	client   RemoteFacade
	merger   SnapshotMerger
	lastSync *time.Time
}

// NewSyncService creates an orchestrator with no active provider. A provider
// is attached via Initialize or Restore.
func NewSyncService(storages *store.Storages, merger SnapshotMerger, log *logger.Logger) *SyncService {
	if log == nil {
		log = logger.Nop()
	}
	return &SyncService{storages: storages, merger: merger, logger: log}
}

func (s *SyncService) facade() (RemoteFacade, error) {
	if s.client == nil {
		return nil, ErrNoProvider
	}
	return s.client, nil
}

// PushOnce uploads all unsynced local records to the active provider.
func (s *SyncService) PushOnce(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.push(ctx)
}

// PullOnce downloads the full remote state and merges it into the local
// store.
func (s *SyncService) PullOnce(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pull(ctx)
}

// FullSync performs push then pull under one lock acquisition. The order
// matters: pull must observe the server state after this device's pending
// writes have landed, otherwise the pull would re-download and discard what
// was just uploaded.
func (s *SyncService) FullSync(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.push(ctx); err != nil {
		return fmt.Errorf("full sync push phase: %w", err)
	}
	if err := s.pull(ctx); err != nil {
		return fmt.Errorf("full sync pull phase: %w", err)
	}
	return nil
}

// Status reports provider authentication state and pending local changes.
func (s *SyncService) Status(ctx context.Context) (models.SyncStatus, error) {
	s.mu.Lock()
	authenticated := s.client != nil && s.client.IsAuthenticated()
	lastSync := s.lastSync
	s.mu.Unlock()

	collections, err := s.storages.Collections.GetUnsynced(ctx)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("count unsynced collections: %w", err)
	}
	requests, err := s.storages.Requests.GetUnsynced(ctx)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("count unsynced requests: %w", err)
	}
	environments, err := s.storages.Environments.GetUnsynced(ctx)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("count unsynced environments: %w", err)
	}

	return models.SyncStatus{
		IsAuthenticated:      authenticated,
		UnsyncedCollections:  len(collections),
		UnsyncedRequests:     len(requests),
		UnsyncedEnvironments: len(environments),
		LastSync:             lastSync,
	}, nil
}

// push uploads unsynced records. Callers must hold s.mu.
//
// The loop is resumable, not atomic: a failure on record N leaves records
// 1..N-1 marked synced and aborts the rest, and the next push skips the
// already-synced prefix.
func (s *SyncService) push(ctx context.Context) error {
	client, err := s.facade()
	if err != nil {
		return err
	}

	if !client.SupportsItemOps() {
		return s.pushBulk(ctx, client)
	}

	collections, err := s.storages.Collections.GetUnsynced(ctx)
	if err != nil {
		return fmt.Errorf("load unsynced collections: %w", err)
	}
	for _, col := range collections {
		col.Version++
		cloudID, err := client.PushCollection(ctx, col)
		if err != nil {
			return fmt.Errorf("push collection %s: %w", col.ID, err)
		}
		if err := s.storages.Collections.MarkSynced(ctx, col.ID, cloudID, col.Version); err != nil {
			return fmt.Errorf("mark collection %s synced: %w", col.ID, err)
		}
	}

	requests, err := s.storages.Requests.GetUnsynced(ctx)
	if err != nil {
		return fmt.Errorf("load unsynced requests: %w", err)
	}
	for _, req := range requests {
		req.Version++
		cloudID, err := client.PushRequest(ctx, req)
		if err != nil {
			return fmt.Errorf("push request %s: %w", req.ID, err)
		}
		if err := s.storages.Requests.MarkSynced(ctx, req.ID, cloudID, req.Version); err != nil {
			return fmt.Errorf("mark request %s synced: %w", req.ID, err)
		}
	}

	environments, err := s.storages.Environments.GetUnsynced(ctx)
	if err != nil {
		return fmt.Errorf("load unsynced environments: %w", err)
	}
	for _, env := range environments {
		env.Version++
		cloudID, err := client.PushEnvironment(ctx, env)
		if err != nil {
			return fmt.Errorf("push environment %s: %w", env.ID, err)
		}
		if err := s.storages.Environments.MarkSynced(ctx, env.ID, cloudID, env.Version); err != nil {
			return fmt.Errorf("mark environment %s synced: %w", env.ID, err)
		}
	}

	return nil
}

// pushBulk writes the whole workspace as one snapshot. Bulk backends never
// assign identifiers, so records that were never pushed adopt their local id
// as cloud id; that keeps merge matching working across devices.
func (s *SyncService) pushBulk(ctx context.Context, client RemoteFacade) error {
	collections, err := s.storages.Collections.List(ctx)
	if err != nil {
		return fmt.Errorf("load collections: %w", err)
	}
	requests, err := s.storages.Requests.List(ctx)
	if err != nil {
		return fmt.Errorf("load requests: %w", err)
	}
	environments, err := s.storages.Environments.List(ctx)
	if err != nil {
		return fmt.Errorf("load environments: %w", err)
	}

	for i := range collections {
		if !collections[i].Synced {
			collections[i].Version++
		}
		if collections[i].CloudID == "" {
			collections[i].CloudID = collections[i].ID.String()
		}
	}
	for i := range requests {
		if !requests[i].Synced {
			requests[i].Version++
		}
		if requests[i].CloudID == "" {
			requests[i].CloudID = requests[i].ID.String()
		}
	}
	for i := range environments {
		if !environments[i].Synced {
			environments[i].Version++
		}
		if environments[i].CloudID == "" {
			environments[i].CloudID = environments[i].ID.String()
		}
	}

	if err := client.PushSync(ctx, collections, requests, environments); err != nil {
		return fmt.Errorf("push snapshot: %w", err)
	}

	for _, col := range collections {
		if col.Synced {
			continue
		}
		if err := s.storages.Collections.MarkSynced(ctx, col.ID, col.CloudID, col.Version); err != nil {
			return fmt.Errorf("mark collection %s synced: %w", col.ID, err)
		}
	}
	for _, req := range requests {
		if req.Synced {
			continue
		}
		if err := s.storages.Requests.MarkSynced(ctx, req.ID, req.CloudID, req.Version); err != nil {
			return fmt.Errorf("mark request %s synced: %w", req.ID, err)
		}
	}
	for _, env := range environments {
		if env.Synced {
			continue
		}
		if err := s.storages.Environments.MarkSynced(ctx, env.ID, env.CloudID, env.Version); err != nil {
			return fmt.Errorf("mark environment %s synced: %w", env.ID, err)
		}
	}

	return nil
}

// pull downloads remote state and merges it. Callers must hold s.mu.
func (s *SyncService) pull(ctx context.Context) error {
	client, err := s.facade()
	if err != nil {
		return err
	}

	snapshot, err := client.PullSync(ctx)
	if err != nil {
		return fmt.Errorf("pull remote state: %w", err)
	}

	if err := s.merger.MergeAll(ctx, snapshot); err != nil {
		return fmt.Errorf("merge remote state: %w", err)
	}

	now := time.Now().UTC()
	s.lastSync = &now
	return nil
}
