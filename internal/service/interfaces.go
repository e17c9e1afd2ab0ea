package service

import (
	"context"

	"github.com/apivault/apivault/internal/provider"
	"github.com/apivault/apivault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RemoteFacade is what the sync orchestrator needs from the sync client. It
// matches internal/syncclient.Client.
type RemoteFacade interface {
	Provider() provider.Provider
	ProviderID() provider.ID
	SupportsItemOps() bool
	IsAuthenticated() bool
	CurrentUser() *models.User
	SignOut()

	PushSync(ctx context.Context, collections []models.Collection, requests []models.HTTPRequest, environments []models.Environment) error
	PullSync(ctx context.Context) (models.SyncSnapshot, error)

	PushCollection(ctx context.Context, col models.Collection) (string, error)
	PushRequest(ctx context.Context, req models.HTTPRequest) (string, error)
	PushEnvironment(ctx context.Context, env models.Environment) (string, error)
	DeleteCollection(ctx context.Context, cloudID string) error
	DeleteRequest(ctx context.Context, cloudID string) error
	DeleteEnvironment(ctx context.Context, cloudID string) error
}

// SnapshotMerger reconciles pulled remote state into the local store. It
// matches internal/merge.Merger.
type SnapshotMerger interface {
	MergeAll(ctx context.Context, snapshot models.SyncSnapshot) error
	MergeCollection(ctx context.Context, remote models.Collection) error
	MergeRequest(ctx context.Context, remote models.HTTPRequest) error
	MergeEnvironment(ctx context.Context, remote models.Environment) error
}
