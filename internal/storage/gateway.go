package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/shoppinglist/internal/models"
)

// Gateway persists the collection on behalf of the list store.
type Gateway interface {
	// Load returns the persisted collection, or ErrNoSnapshot if nothing
	// has been persisted yet.
	Load(ctx context.Context) (models.Collection, error)

	// Save makes next durable. prev is the collection next was computed
	// from, letting incremental backends write only what changed.
	Save(ctx context.Context, prev, next models.Collection) error
}

// SnapshotGateway writes the whole collection on every save.
type SnapshotGateway struct {
	store SnapshotStore
}

// NewSnapshotGateway wraps a SnapshotStore.
func NewSnapshotGateway(store SnapshotStore) *SnapshotGateway {
	return &SnapshotGateway{store: store}
}

// Load returns the stored snapshot.
func (g *SnapshotGateway) Load(ctx context.Context) (models.Collection, error) {
	return g.store.Load(ctx)
}

// Save stores next, ignoring prev.
func (g *SnapshotGateway) Save(ctx context.Context, _, next models.Collection) error {
	return g.store.Save(ctx, next)
}

// ResourceGateway translates collection changes into per-list create, patch
// and delete calls. It never re-fetches after a write: next is trusted as
// the new state once every call succeeds.
type ResourceGateway struct {
	store ResourceStore
}

// NewResourceGateway wraps a ResourceStore.
func NewResourceGateway(store ResourceStore) *ResourceGateway {
	return &ResourceGateway{store: store}
}

// Load fetches every list. An empty backend is a valid, empty collection.
func (g *ResourceGateway) Load(ctx context.Context) (models.Collection, error) {
	c, err := g.store.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lists: %w", err)
	}
	return c, nil
}

// Save applies the difference between prev and next. The first failing call
// aborts the save.
func (g *ResourceGateway) Save(ctx context.Context, prev, next models.Collection) error {
	for _, op := range Diff(prev, next) {
		var err error
		switch op.Kind {
		case OpCreate:
			err = g.store.Create(ctx, op.List)
		case OpPatch:
			err = g.store.Patch(ctx, op.ID, op.Patch)
		case OpDelete:
			err = g.store.Delete(ctx, op.ID)
			if errors.Is(err, ErrNotFound) {
				err = nil
			}
		}
		if err != nil {
			return fmt.Errorf("failed to %s list %s: %w", op.Kind, op.ID, err)
		}
	}
	return nil
}

// OpKind is the kind of a resource write.
type OpKind string

const (
	OpCreate OpKind = "create"
	OpPatch  OpKind = "patch"
	OpDelete OpKind = "delete"
)

// Op is one resource write needed to turn one collection into another.
type Op struct {
	Kind  OpKind
	ID    string
	List  models.ShoppingList
	Patch Patch
}

// Diff returns the writes that turn prev into next: deletes first, then
// patches and creates in next's order.
func Diff(prev, next models.Collection) []Op {
	var ops []Op
	for _, p := range prev {
		if next.Index(p.ID) < 0 {
			ops = append(ops, Op{Kind: OpDelete, ID: p.ID})
		}
	}
	for _, n := range next {
		idx := prev.Index(n.ID)
		if idx < 0 {
			ops = append(ops, Op{Kind: OpCreate, ID: n.ID, List: n.Clone()})
			continue
		}
		if patch := diffList(prev[idx], n); !patch.IsEmpty() {
			ops = append(ops, Op{Kind: OpPatch, ID: n.ID, Patch: patch})
		}
	}
	return ops
}

func diffList(prev, next models.ShoppingList) Patch {
	var p Patch
	if prev.Name != next.Name {
		name := next.Name
		p.Name = &name
	}
	if prev.Archived != next.Archived {
		archived := next.Archived
		p.Archived = &archived
	}
	if !models.MembersEqual(prev.Members, next.Members) {
		p.Members = append([]models.Member{}, next.Members...)
	}
	if !models.ItemsEqual(prev.Items, next.Items) {
		p.Items = append([]models.Item{}, next.Items...)
	}
	return p
}
