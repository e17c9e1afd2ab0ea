package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/apivault/apivault/models"
)

// memStore is the in-memory per-account record set for one entity type.
// meta gives access to the embedded sync fields of the concrete model.
type memStore[T any] struct {
	meta func(*T) *models.SyncMeta

	mu      sync.RWMutex
	records map[string]map[string]T // account id -> cloud id -> record
}

func newMemStore[T any](meta func(*T) *models.SyncMeta) *memStore[T] {
	return &memStore[T]{
		meta:    meta,
		records: make(map[string]map[string]T),
	}
}

// create assigns a cloud id and stores the record. The version floor is 1 so
// a created record always outranks a never-pushed local copy.
func (s *memStore[T]) create(accountID string, item T) string {
	cloudID := uuid.NewString()

	m := s.meta(&item)
	m.CloudID = cloudID
	if m.Version < 1 {
		m.Version = 1
	}
	m.Synced = true

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.records[accountID] == nil {
		s.records[accountID] = make(map[string]T)
	}
	s.records[accountID][cloudID] = item

	return cloudID
}

// update overwrites the stored record. Versions are monotonically
// non-decreasing: an incoming version below the stored one is rejected, an
// equal one is bumped past it.
func (s *memStore[T]) update(accountID, cloudID string, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.records[accountID][cloudID]
	if !ok {
		return ErrRecordNotFound
	}

	m := s.meta(&item)
	storedVersion := s.meta(&stored).Version
	switch {
	case m.Version < storedVersion:
		return ErrStaleVersion
	case m.Version == storedVersion:
		m.Version = storedVersion + 1
	}
	m.CloudID = cloudID
	m.Synced = true

	s.records[accountID][cloudID] = item
	return nil
}

func (s *memStore[T]) delete(accountID, cloudID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[accountID][cloudID]; !ok {
		return ErrRecordNotFound
	}
	delete(s.records[accountID], cloudID)
	return nil
}

func (s *memStore[T]) list(accountID string) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.records[accountID]))
	for _, item := range s.records[accountID] {
		out = append(out, item)
	}
	return out
}

// dataStore groups the three entity stores of the reference server.
type dataStore struct {
	collections  *memStore[models.Collection]
	requests     *memStore[models.HTTPRequest]
	environments *memStore[models.Environment]
}

func newDataStore() *dataStore {
	return &dataStore{
		collections: newMemStore(func(c *models.Collection) *models.SyncMeta {
			return &c.SyncMeta
		}),
		requests: newMemStore(func(r *models.HTTPRequest) *models.SyncMeta {
			return &r.SyncMeta
		}),
		environments: newMemStore(func(e *models.Environment) *models.SyncMeta {
			return &e.SyncMeta
		}),
	}
}

// touch refreshes updated_at the way a database trigger would.
func touch(updatedAt *time.Time) {
	*updatedAt = time.Now().UTC()
}
