package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Auth type discriminators for AuthConfig.
const (
	AuthNone   = "none"
	AuthBasic  = "basic"
	AuthBearer = "bearer"
)

// BasicAuth holds username/password credentials attached to a collection.
type BasicAuth struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// BearerAuth holds a static bearer token attached to a collection.
type BearerAuth struct {
	Token string `json:"token"`
}

// AuthConfig is the authentication setting inherited by requests inside a
// collection. The payload is opaque to the sync engine and copied verbatim
// on merge.
type AuthConfig struct {
	Type   string      `json:"type"`
	Basic  *BasicAuth  `json:"basic,omitempty"`
	Bearer *BearerAuth `json:"bearer,omitempty"`
}

// Value implements driver.Valuer so AuthConfig columns can be stored as JSON.
func (a AuthConfig) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements sql.Scanner for JSON-encoded AuthConfig columns.
func (a *AuthConfig) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("unsupported auth config column type %T", src)
	}
}

// Collection groups saved requests into a tree via ParentID.
type Collection struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	ParentID    *uuid.UUID  `json:"parent_id,omitempty"`
	Auth        *AuthConfig `json:"auth,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	SyncMeta
}

// NewCollection creates an unsynced local collection with a fresh id.
func NewCollection(name, description string, parentID *uuid.UUID) Collection {
	now := time.Now().UTC()
	return Collection{
		ID:          NewID(),
		Name:        name,
		Description: description,
		ParentID:    parentID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
