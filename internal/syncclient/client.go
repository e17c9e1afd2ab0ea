// Package syncclient provides the polymorphic façade over one active remote
// provider. It exposes the union of push/pull operations regardless of the
// provider's capability class: per-item calls are dispatched to item-level
// providers and rejected with provider.ErrUnsupportedOperation on bulk
// providers before any network activity.
package syncclient

import (
	"context"
	"fmt"

	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/internal/provider"
	"github.com/apivault/apivault/models"
)

// Client wraps exactly one provider instance. Reconfiguration replaces the
// whole Client; no session state survives a provider switch.
type Client struct {
	provider provider.Provider
	log      *logger.Logger
}

// New wraps p in a façade.
func New(p provider.Provider, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{provider: p, log: log}
}

// Provider returns the wrapped provider.
func (c *Client) Provider() provider.Provider { return c.provider }

// ProviderID reports the active backend.
func (c *Client) ProviderID() provider.ID { return c.provider.ID() }

// SupportsItemOps reports the active provider's capability class.
func (c *Client) SupportsItemOps() bool { return c.provider.SupportsItemOps() }

// IsAuthenticated reports whether the active provider holds a session.
func (c *Client) IsAuthenticated() bool { return c.provider.IsAuthenticated() }

// CurrentUser returns the authenticated account, or nil.
func (c *Client) CurrentUser() *models.User { return c.provider.CurrentUser() }

// SignOut discards the provider's session state.
func (c *Client) SignOut() { c.provider.SignOut() }

func (c *Client) itemProvider() (provider.ItemProvider, error) {
	ip, ok := c.provider.(provider.ItemProvider)
	if !ok {
		return nil, fmt.Errorf("%w (provider %s)", provider.ErrUnsupportedOperation, c.provider.ID())
	}
	return ip, nil
}

// PushSync uploads all given records. Item-level providers get one
// create-or-update call per record keyed on the presence of a cloud id; bulk
// providers get a single whole-snapshot write.
func (c *Client) PushSync(ctx context.Context, collections []models.Collection, requests []models.HTTPRequest, environments []models.Environment) error {
	if bp, ok := c.provider.(provider.BulkProvider); ok {
		snapshot := models.NewSyncSnapshot(collections, requests, environments)
		if err := bp.PushBulk(ctx, snapshot); err != nil {
			return fmt.Errorf("push bulk snapshot: %w", err)
		}
		return nil
	}

	ip, err := c.itemProvider()
	if err != nil {
		return err
	}

	for _, col := range collections {
		if _, err := pushItem(ctx, col.CloudID, col, ip.CreateCollection, ip.UpdateCollection); err != nil {
			return fmt.Errorf("push collection %s: %w", col.ID, err)
		}
	}
	for _, req := range requests {
		if _, err := pushItem(ctx, req.CloudID, req, ip.CreateRequest, ip.UpdateRequest); err != nil {
			return fmt.Errorf("push request %s: %w", req.ID, err)
		}
	}
	for _, env := range environments {
		if _, err := pushItem(ctx, env.CloudID, env, ip.CreateEnvironment, ip.UpdateEnvironment); err != nil {
			return fmt.Errorf("push environment %s: %w", env.ID, err)
		}
	}
	return nil
}

// PullSync downloads the full remote state: three list calls for item-level
// providers, one document read for bulk providers.
func (c *Client) PullSync(ctx context.Context) (models.SyncSnapshot, error) {
	if bp, ok := c.provider.(provider.BulkProvider); ok {
		snapshot, err := bp.PullBulk(ctx)
		if err != nil {
			return models.SyncSnapshot{}, fmt.Errorf("pull bulk snapshot: %w", err)
		}
		return snapshot, nil
	}

	ip, err := c.itemProvider()
	if err != nil {
		return models.SyncSnapshot{}, err
	}

	collections, err := ip.ListCollections(ctx)
	if err != nil {
		return models.SyncSnapshot{}, fmt.Errorf("list remote collections: %w", err)
	}
	requests, err := ip.ListRequests(ctx)
	if err != nil {
		return models.SyncSnapshot{}, fmt.Errorf("list remote requests: %w", err)
	}
	environments, err := ip.ListEnvironments(ctx)
	if err != nil {
		return models.SyncSnapshot{}, fmt.Errorf("list remote environments: %w", err)
	}

	return models.SyncSnapshot{
		Collections:  collections,
		Requests:     requests,
		Environments: environments,
	}, nil
}

// PushCollection create-or-updates a single collection and returns its cloud
// id. Bulk providers reject this with ErrUnsupportedOperation.
func (c *Client) PushCollection(ctx context.Context, col models.Collection) (string, error) {
	ip, err := c.itemProvider()
	if err != nil {
		return "", err
	}
	return pushItem(ctx, col.CloudID, col, ip.CreateCollection, ip.UpdateCollection)
}

// DeleteCollection removes the remote record with the given cloud id.
func (c *Client) DeleteCollection(ctx context.Context, cloudID string) error {
	ip, err := c.itemProvider()
	if err != nil {
		return err
	}
	return ip.DeleteCollection(ctx, cloudID)
}

// PushRequest create-or-updates a single request and returns its cloud id.
func (c *Client) PushRequest(ctx context.Context, req models.HTTPRequest) (string, error) {
	ip, err := c.itemProvider()
	if err != nil {
		return "", err
	}
	return pushItem(ctx, req.CloudID, req, ip.CreateRequest, ip.UpdateRequest)
}

// DeleteRequest removes the remote record with the given cloud id.
func (c *Client) DeleteRequest(ctx context.Context, cloudID string) error {
	ip, err := c.itemProvider()
	if err != nil {
		return err
	}
	return ip.DeleteRequest(ctx, cloudID)
}

// PushEnvironment create-or-updates a single environment and returns its
// cloud id.
func (c *Client) PushEnvironment(ctx context.Context, env models.Environment) (string, error) {
	ip, err := c.itemProvider()
	if err != nil {
		return "", err
	}
	return pushItem(ctx, env.CloudID, env, ip.CreateEnvironment, ip.UpdateEnvironment)
}

// DeleteEnvironment removes the remote record with the given cloud id.
func (c *Client) DeleteEnvironment(ctx context.Context, cloudID string) error {
	ip, err := c.itemProvider()
	if err != nil {
		return err
	}
	return ip.DeleteEnvironment(ctx, cloudID)
}

// pushItem is the create-or-update decision shared by all entity types: an
// empty cloud id means the record was never created remotely, so an update
// must never be attempted on it.
func pushItem[T any](
	ctx context.Context,
	cloudID string,
	item T,
	create func(context.Context, T) (string, error),
	update func(context.Context, string, T) error,
) (string, error) {
	if cloudID != "" {
		if err := update(ctx, cloudID, item); err != nil {
			return "", err
		}
		return cloudID, nil
	}
	return create(ctx, item)
}
