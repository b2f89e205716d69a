// Package memory provides in-memory implementations of the storage
// interfaces. State lives only as long as the process.
package memory

import (
	"context"
	"sync"

	"github.com/mmynk/shoppinglist/internal/models"
	"github.com/mmynk/shoppinglist/internal/storage"
)

var (
	_ storage.SnapshotStore = (*SnapshotStore)(nil)
	_ storage.ResourceStore = (*ResourceStore)(nil)
)

// SnapshotStore holds one collection snapshot.
type SnapshotStore struct {
	mu    sync.Mutex
	saved models.Collection
	ok    bool
}

// NewSnapshotStore returns an empty SnapshotStore.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Load returns a copy of the saved collection.
func (s *SnapshotStore) Load(_ context.Context) (models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ok {
		return nil, storage.ErrNoSnapshot
	}
	return s.saved.Clone(), nil
}

// Save keeps a copy of c.
func (s *SnapshotStore) Save(_ context.Context, c models.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = c.Clone()
	s.ok = true
	return nil
}

// ResourceStore keeps lists in insertion order.
type ResourceStore struct {
	mu    sync.Mutex
	lists models.Collection
}

// NewResourceStore returns a ResourceStore holding a copy of initial.
func NewResourceStore(initial models.Collection) *ResourceStore {
	return &ResourceStore{lists: initial.Clone()}
}

// FetchAll returns a copy of every list.
func (s *ResourceStore) FetchAll(_ context.Context) (models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lists.Clone(), nil
}

// FetchOne returns a copy of one list.
func (s *ResourceStore) FetchOne(_ context.Context, id string) (models.ShoppingList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.lists.Index(id)
	if idx < 0 {
		return models.ShoppingList{}, storage.ErrNotFound
	}
	return s.lists[idx].Clone(), nil
}

// Create appends a list.
func (s *ResourceStore) Create(_ context.Context, l models.ShoppingList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lists.Index(l.ID) >= 0 {
		return storage.ErrExists
	}
	s.lists = append(s.lists, l.Clone())
	return nil
}

// Patch merges p into a list.
func (s *ResourceStore) Patch(_ context.Context, id string, p storage.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.lists.Index(id)
	if idx < 0 {
		return storage.ErrNotFound
	}
	s.lists[idx] = p.Apply(s.lists[idx])
	return nil
}

// Delete removes a list.
func (s *ResourceStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.lists.Index(id)
	if idx < 0 {
		return storage.ErrNotFound
	}
	s.lists = append(s.lists[:idx], s.lists[idx+1:]...)
	return nil
}
