// Package merge reconciles remote records into the local store after a pull.
//
// Matching is by cloud identifier only. A remote record with no local match
// is inserted under a fresh local id; a matched record overwrites the local
// copy only when the recency rule says the remote side is newer. Merges never
// touch local creation timestamps or local ids.
package merge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/internal/store"
	"github.com/apivault/apivault/models"
)

// RemoteWins reports whether the remote side should overwrite a matched
// local record. Last write wins on the whole record: the remote copy is
// taken when its update time is strictly later or its version counter is
// strictly higher. Equal records on both axes keep the local copy, which
// makes repeated pulls idempotent.
func RemoteWins(remoteUpdated, localUpdated time.Time, remoteVersion, localVersion int64) bool {
	return remoteUpdated.After(localUpdated) || remoteVersion > localVersion
}

// Merger applies pulled snapshots to the local repositories.
type Merger struct {
	collections  store.CollectionRepository
	requests     store.RequestRepository
	environments store.EnvironmentRepository
	logger       *logger.Logger
}

// New creates a Merger over the given repositories.
func New(storages *store.Storages, log *logger.Logger) *Merger {
	if log == nil {
		log = logger.Nop()
	}
	return &Merger{
		collections:  storages.Collections,
		requests:     storages.Requests,
		environments: storages.Environments,
		logger:       log,
	}
}

// MergeAll merges every entity set of the snapshot, collections first so
// that parent references exist before requests arrive. Each record merges
// independently: a failure on one record never blocks the rest, and the
// failures are joined into the returned error.
func (m *Merger) MergeAll(ctx context.Context, snapshot models.SyncSnapshot) error {
	var errs []error
	for _, c := range snapshot.Collections {
		if err := m.MergeCollection(ctx, c); err != nil {
			errs = append(errs, fmt.Errorf("merge collection %q: %w", c.Name, err))
		}
	}
	for _, r := range snapshot.Requests {
		if err := m.MergeRequest(ctx, r); err != nil {
			errs = append(errs, fmt.Errorf("merge request %q: %w", r.Name, err))
		}
	}
	for _, e := range snapshot.Environments {
		if err := m.MergeEnvironment(ctx, e); err != nil {
			errs = append(errs, fmt.Errorf("merge environment %q: %w", e.Name, err))
		}
	}
	return errors.Join(errs...)
}

// MergeCollection reconciles one remote collection into the local store.
func (m *Merger) MergeCollection(ctx context.Context, remote models.Collection) error {
	if remote.CloudID == "" {
		m.logger.Warn().Str("func", "Merger.MergeCollection").
			Str("name", remote.Name).Msg("skipping remote collection without cloud id")
		return nil
	}

	local, err := m.collections.GetByCloudID(ctx, remote.CloudID)
	if errors.Is(err, store.ErrNotFound) {
		remote.ID = models.NewID()
		remote.Synced = true
		return m.collections.Save(ctx, remote)
	}
	if err != nil {
		return err
	}

	if !RemoteWins(remote.UpdatedAt, local.UpdatedAt, remote.Version, local.Version) {
		return nil
	}

	local.Name = remote.Name
	local.Description = remote.Description
	local.ParentID = remote.ParentID
	local.Auth = remote.Auth
	local.UpdatedAt = remote.UpdatedAt
	local.Version = remote.Version
	local.CloudID = remote.CloudID
	local.Synced = true
	return m.collections.Save(ctx, local)
}

// MergeRequest reconciles one remote request into the local store.
func (m *Merger) MergeRequest(ctx context.Context, remote models.HTTPRequest) error {
	if remote.CloudID == "" {
		m.logger.Warn().Str("func", "Merger.MergeRequest").
			Str("name", remote.Name).Msg("skipping remote request without cloud id")
		return nil
	}

	local, err := m.requests.GetByCloudID(ctx, remote.CloudID)
	if errors.Is(err, store.ErrNotFound) {
		remote.ID = models.NewID()
		remote.Synced = true
		return m.requests.Save(ctx, remote)
	}
	if err != nil {
		return err
	}

	if !RemoteWins(remote.UpdatedAt, local.UpdatedAt, remote.Version, local.Version) {
		return nil
	}

	local.Name = remote.Name
	local.Method = remote.Method
	local.URL = remote.URL
	local.Headers = remote.Headers
	local.Body = remote.Body
	local.CollectionID = remote.CollectionID
	local.UpdatedAt = remote.UpdatedAt
	local.Version = remote.Version
	local.CloudID = remote.CloudID
	local.Synced = true
	return m.requests.Save(ctx, local)
}

// MergeEnvironment reconciles one remote environment into the local store.
// Activation never crosses devices: inserted environments arrive inactive
// and overwrites keep the local activation flag.
func (m *Merger) MergeEnvironment(ctx context.Context, remote models.Environment) error {
	if remote.CloudID == "" {
		m.logger.Warn().Str("func", "Merger.MergeEnvironment").
			Str("name", remote.Name).Msg("skipping remote environment without cloud id")
		return nil
	}

	local, err := m.environments.GetByCloudID(ctx, remote.CloudID)
	if errors.Is(err, store.ErrNotFound) {
		remote.ID = models.NewID()
		remote.IsActive = false
		remote.Synced = true
		return m.environments.Save(ctx, remote)
	}
	if err != nil {
		return err
	}

	if !RemoteWins(remote.UpdatedAt, local.UpdatedAt, remote.Version, local.Version) {
		return nil
	}

	local.Name = remote.Name
	local.Variables = remote.Variables
	local.UpdatedAt = remote.UpdatedAt
	local.Version = remote.Version
	local.CloudID = remote.CloudID
	local.Synced = true
	return m.environments.Save(ctx, local)
}
