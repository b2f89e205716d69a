// Package storage provides abstractions for persisting shopping lists.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/shoppinglist/internal/models"
)

var (
	// ErrNoSnapshot is returned by SnapshotStore.Load when nothing was saved yet.
	ErrNoSnapshot = errors.New("no snapshot stored")

	// ErrNotFound is returned by a ResourceStore when a list does not exist.
	ErrNotFound = errors.New("list not found")

	// ErrExists is returned by ResourceStore.Create for a duplicate ID.
	ErrExists = errors.New("list already exists")
)

// SnapshotKey is the fixed name the whole collection is stored under.
const SnapshotKey = "shoppingLists"

// SnapshotStore keeps the entire collection as one serialized unit.
type SnapshotStore interface {
	// Load returns the saved collection, or ErrNoSnapshot if there is none.
	Load(ctx context.Context) (models.Collection, error)

	// Save replaces the stored collection.
	Save(ctx context.Context, c models.Collection) error
}

// ResourceStore exposes lists as individually addressable resources.
// This abstraction allows swapping between SQLite, in-memory and remote
// HTTP backends without changing the gateway.
type ResourceStore interface {
	// FetchAll returns every list in creation order.
	FetchAll(ctx context.Context) (models.Collection, error)

	// FetchOne returns a single list or ErrNotFound.
	FetchOne(ctx context.Context, id string) (models.ShoppingList, error)

	// Create stores a new list. Returns ErrExists if the ID is taken.
	Create(ctx context.Context, l models.ShoppingList) error

	// Patch replaces only the fields set in p. Returns ErrNotFound if the
	// list does not exist.
	Patch(ctx context.Context, id string, p Patch) error

	// Delete removes a list. Returns ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error
}

// Patch is a field-level merge patch for a list. Nil fields are left alone;
// an empty, non-nil slice clears the sequence.
type Patch struct {
	Name     *string         `json:"name,omitempty"`
	Archived *bool           `json:"archived,omitempty"`
	Members  []models.Member `json:"members"`
	Items    []models.Item   `json:"items"`
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Archived == nil && p.Members == nil && p.Items == nil
}

// Apply returns l with the patch merged in.
func (p Patch) Apply(l models.ShoppingList) models.ShoppingList {
	out := l.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Archived != nil {
		out.Archived = *p.Archived
	}
	if p.Members != nil {
		out.Members = append([]models.Member{}, p.Members...)
	}
	if p.Items != nil {
		out.Items = append([]models.Item{}, p.Items...)
	}
	return out
}
