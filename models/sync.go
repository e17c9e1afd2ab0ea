package models

import "time"

// SyncMeta carries the replication state shared by every syncable record.
// It is embedded into Collection, HTTPRequest and Environment so the sync
// engine can treat all three uniformly.
type SyncMeta struct {
	// CloudID is the identifier assigned by the remote backend on the first
	// successful create. Empty means the record has never been pushed, and
	// the engine must create rather than update it remotely.
	CloudID string `json:"cloud_id,omitempty"`

	// Version is a monotonically non-decreasing counter bumped by the remote
	// on each accepted write. Used as a tie-break during merges.
	Version int64 `json:"version"`

	// Synced is false whenever the record has local changes that have not
	// been confirmed pushed.
	Synced bool `json:"synced"`
}

// SyncSnapshot is the single-document representation of the whole workspace
// used by bulk providers: everything is serialized into one JSON file on the
// remote side.
type SyncSnapshot struct {
	Collections  []Collection  `json:"collections"`
	Requests     []HTTPRequest `json:"requests"`
	Environments []Environment `json:"environments"`
	Version      string        `json:"version"`
	LastUpdated  time.Time     `json:"last_updated"`
}

// NewSyncSnapshot stamps the snapshot envelope around the three entity sets.
func NewSyncSnapshot(collections []Collection, requests []HTTPRequest, environments []Environment) SyncSnapshot {
	return SyncSnapshot{
		Collections:  collections,
		Requests:     requests,
		Environments: environments,
		Version:      "1.0",
		LastUpdated:  time.Now().UTC(),
	}
}

// SyncStatus is the summary reported to the UI layer.
type SyncStatus struct {
	IsAuthenticated      bool       `json:"is_authenticated"`
	UnsyncedCollections  int        `json:"unsynced_collections_count"`
	UnsyncedRequests     int        `json:"unsynced_requests_count"`
	UnsyncedEnvironments int        `json:"unsynced_environments_count"`
	LastSync             *time.Time `json:"last_sync,omitempty"`
}
