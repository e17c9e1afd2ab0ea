package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/apivault/apivault/models"
)

// CollectionRepository is the local persistence surface for collections.
type CollectionRepository interface {
	Save(ctx context.Context, c models.Collection) error
	Get(ctx context.Context, id uuid.UUID) (models.Collection, error)
	List(ctx context.Context) ([]models.Collection, error)
	Delete(ctx context.Context, id uuid.UUID) error

	GetUnsynced(ctx context.Context) ([]models.Collection, error)
	GetByCloudID(ctx context.Context, cloudID string) (models.Collection, error)
	MarkSynced(ctx context.Context, id uuid.UUID, cloudID string, version int64) error
}

// RequestRepository is the local persistence surface for saved requests.
type RequestRepository interface {
	Save(ctx context.Context, r models.HTTPRequest) error
	Get(ctx context.Context, id uuid.UUID) (models.HTTPRequest, error)
	List(ctx context.Context) ([]models.HTTPRequest, error)
	Delete(ctx context.Context, id uuid.UUID) error

	GetUnsynced(ctx context.Context) ([]models.HTTPRequest, error)
	GetByCloudID(ctx context.Context, cloudID string) (models.HTTPRequest, error)
	MarkSynced(ctx context.Context, id uuid.UUID, cloudID string, version int64) error
}

// EnvironmentRepository is the local persistence surface for environments.
type EnvironmentRepository interface {
	Save(ctx context.Context, e models.Environment) error
	Get(ctx context.Context, id uuid.UUID) (models.Environment, error)
	List(ctx context.Context) ([]models.Environment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetActive(ctx context.Context, id uuid.UUID) error
	GetActive(ctx context.Context) (models.Environment, error)

	GetUnsynced(ctx context.Context) ([]models.Environment, error)
	GetByCloudID(ctx context.Context, cloudID string) (models.Environment, error)
	MarkSynced(ctx context.Context, id uuid.UUID, cloudID string, version int64) error
}

// SettingsRepository is the small durable key-value area holding provider
// configuration between runs.
type SettingsRepository interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}
