package models

import (
	"time"

	"github.com/google/uuid"
)

// Environment is a named set of variables substituted into requests before
// execution. Activation is a local-only concept and never synchronized.
type Environment struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Variables Headers   `json:"variables"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SyncMeta
}

// NewEnvironment creates an unsynced, inactive local environment.
func NewEnvironment(name string, variables map[string]string) Environment {
	now := time.Now().UTC()
	if variables == nil {
		variables = map[string]string{}
	}
	return Environment{
		ID:        NewID(),
		Name:      name,
		Variables: variables,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
