package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/internal/store"
	"github.com/apivault/apivault/models"
)

// WorkspaceService is the local CRUD surface for collections, requests and
// environments. Every mutation clears the record's synced flag and refreshes
// updated_at so the next push picks it up.
type WorkspaceService struct {
	storages *store.Storages
	logger   *logger.Logger
}

// NewWorkspaceService creates a workspace service over the local store.
func NewWorkspaceService(storages *store.Storages, log *logger.Logger) *WorkspaceService {
	if log == nil {
		log = logger.Nop()
	}
	return &WorkspaceService{storages: storages, logger: log}
}

// CreateCollection stores a new collection.
func (w *WorkspaceService) CreateCollection(ctx context.Context, name, description string, parentID *uuid.UUID) (models.Collection, error) {
	c := models.NewCollection(name, description, parentID)
	if err := w.storages.Collections.Save(ctx, c); err != nil {
		return models.Collection{}, err
	}
	return c, nil
}

// UpdateCollection saves local edits to a collection.
func (w *WorkspaceService) UpdateCollection(ctx context.Context, c models.Collection) error {
	c.Synced = false
	c.UpdatedAt = time.Now().UTC()
	return w.storages.Collections.Save(ctx, c)
}

// DeleteCollection removes a collection locally. The delete is not
// propagated to the remote during push; see the sync protocol notes in
// DESIGN.md.
func (w *WorkspaceService) DeleteCollection(ctx context.Context, id uuid.UUID) error {
	return w.storages.Collections.Delete(ctx, id)
}

// GetCollection returns one collection.
func (w *WorkspaceService) GetCollection(ctx context.Context, id uuid.UUID) (models.Collection, error) {
	return w.storages.Collections.Get(ctx, id)
}

// ListCollections returns all collections.
func (w *WorkspaceService) ListCollections(ctx context.Context) ([]models.Collection, error) {
	return w.storages.Collections.List(ctx)
}

// CreateRequest stores a new saved request.
func (w *WorkspaceService) CreateRequest(ctx context.Context, name, method, url string, collectionID *uuid.UUID) (models.HTTPRequest, error) {
	r := models.NewHTTPRequest(name, method, url)
	r.CollectionID = collectionID
	if err := w.storages.Requests.Save(ctx, r); err != nil {
		return models.HTTPRequest{}, err
	}
	return r, nil
}

// UpdateRequest saves local edits to a request.
func (w *WorkspaceService) UpdateRequest(ctx context.Context, r models.HTTPRequest) error {
	r.Synced = false
	r.UpdatedAt = time.Now().UTC()
	return w.storages.Requests.Save(ctx, r)
}

// DeleteRequest removes a request locally.
func (w *WorkspaceService) DeleteRequest(ctx context.Context, id uuid.UUID) error {
	return w.storages.Requests.Delete(ctx, id)
}

// GetRequest returns one saved request.
func (w *WorkspaceService) GetRequest(ctx context.Context, id uuid.UUID) (models.HTTPRequest, error) {
	return w.storages.Requests.Get(ctx, id)
}

// ListRequests returns all saved requests.
func (w *WorkspaceService) ListRequests(ctx context.Context) ([]models.HTTPRequest, error) {
	return w.storages.Requests.List(ctx)
}

// CreateEnvironment stores a new, inactive environment.
func (w *WorkspaceService) CreateEnvironment(ctx context.Context, name string, variables map[string]string) (models.Environment, error) {
	e := models.NewEnvironment(name, variables)
	if err := w.storages.Environments.Save(ctx, e); err != nil {
		return models.Environment{}, err
	}
	return e, nil
}

// UpdateEnvironment saves local edits to an environment.
func (w *WorkspaceService) UpdateEnvironment(ctx context.Context, e models.Environment) error {
	e.Synced = false
	e.UpdatedAt = time.Now().UTC()
	return w.storages.Environments.Save(ctx, e)
}

// DeleteEnvironment removes an environment locally.
func (w *WorkspaceService) DeleteEnvironment(ctx context.Context, id uuid.UUID) error {
	return w.storages.Environments.Delete(ctx, id)
}

// ListEnvironments returns all environments.
func (w *WorkspaceService) ListEnvironments(ctx context.Context) ([]models.Environment, error) {
	return w.storages.Environments.List(ctx)
}

// ActivateEnvironment makes the given environment the single active one.
// Activation is a local concept and does not mark the record for push.
func (w *WorkspaceService) ActivateEnvironment(ctx context.Context, id uuid.UUID) error {
	if err := w.storages.Environments.SetActive(ctx, id); err != nil {
		return fmt.Errorf("activate environment %s: %w", id, err)
	}
	return nil
}

// ActiveEnvironment returns the active environment, or nil when none is
// active.
func (w *WorkspaceService) ActiveEnvironment(ctx context.Context) (*models.Environment, error) {
	e, err := w.storages.Environments.GetActive(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}
