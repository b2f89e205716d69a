package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/shoppinglist/internal/models"
	"github.com/mmynk/shoppinglist/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "shoppinglist-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "nested", "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSnapshot(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("Load before Save reports no snapshot", func(t *testing.T) {
		_, err := store.Load(ctx)
		if !errors.Is(err, storage.ErrNoSnapshot) {
			t.Errorf("Expected ErrNoSnapshot, got %v", err)
		}
	})

	t.Run("Save then Load round trips", func(t *testing.T) {
		want := models.DefaultCollection()
		if err := store.Save(ctx, want); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		got, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if !got.Equal(want) {
			t.Errorf("Snapshot mismatch:\n got %+v\nwant %+v", got, want)
		}
	})

	t.Run("Save replaces previous snapshot", func(t *testing.T) {
		want := models.DefaultCollection()[:1]
		if err := store.Save(ctx, want); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		got, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("Expected 1 list, got %d", len(got))
		}
	})

	t.Run("Empty collection is a valid snapshot", func(t *testing.T) {
		if err := store.Save(ctx, nil); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		got, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("Expected empty collection, got %+v", got)
		}
	})
}

func TestResources(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, l := range models.DefaultCollection() {
		if err := store.Create(ctx, l); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	t.Run("FetchAll keeps order and nested sequences", func(t *testing.T) {
		got, err := store.FetchAll(ctx)
		if err != nil {
			t.Fatalf("FetchAll failed: %v", err)
		}
		if !got.Equal(models.DefaultCollection()) {
			t.Errorf("Collection mismatch:\n got %+v\nwant %+v", got, models.DefaultCollection())
		}
	})

	t.Run("Create rejects duplicate IDs", func(t *testing.T) {
		err := store.Create(ctx, models.ShoppingList{ID: "1", Name: "Dup", Owner: "Me"})
		if !errors.Is(err, storage.ErrExists) {
			t.Errorf("Expected ErrExists, got %v", err)
		}
	})

	t.Run("Patch merges only provided fields", func(t *testing.T) {
		archived := true
		items := []models.Item{{ID: "9", Name: "Coffee"}, {ID: "1", Name: "Milk", Done: true}}
		if err := store.Patch(ctx, "1", storage.Patch{Archived: &archived, Items: items}); err != nil {
			t.Fatalf("Patch failed: %v", err)
		}

		got, err := store.FetchOne(ctx, "1")
		if err != nil {
			t.Fatalf("FetchOne failed: %v", err)
		}
		if !got.Archived {
			t.Error("Expected list to be archived")
		}
		if got.Name != "Weekend Shopping" {
			t.Errorf("Name should be unchanged, got %q", got.Name)
		}
		if !models.ItemsEqual(got.Items, items) {
			t.Errorf("Items mismatch: %+v", got.Items)
		}
		if len(got.Members) != 3 {
			t.Errorf("Members should be unchanged, got %+v", got.Members)
		}
	})

	t.Run("Patch with empty items clears them", func(t *testing.T) {
		if err := store.Patch(ctx, "2", storage.Patch{Items: []models.Item{}}); err != nil {
			t.Fatalf("Patch failed: %v", err)
		}
		got, err := store.FetchOne(ctx, "2")
		if err != nil {
			t.Fatalf("FetchOne failed: %v", err)
		}
		if len(got.Items) != 0 {
			t.Errorf("Expected no items, got %+v", got.Items)
		}
	})

	t.Run("Missing lists report ErrNotFound", func(t *testing.T) {
		if _, err := store.FetchOne(ctx, "nope"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("FetchOne: expected ErrNotFound, got %v", err)
		}
		if err := store.Patch(ctx, "nope", storage.Patch{}); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Patch: expected ErrNotFound, got %v", err)
		}
		if err := store.Delete(ctx, "nope"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Delete: expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Delete cascades", func(t *testing.T) {
		if err := store.Delete(ctx, "1"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		got, err := store.FetchAll(ctx)
		if err != nil {
			t.Fatalf("FetchAll failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != "2" {
			t.Errorf("Expected only list 2, got %+v", got)
		}

		var n int
		if err := store.db.QueryRow("SELECT COUNT(*) FROM list_items WHERE list_id = '1'").Scan(&n); err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if n != 0 {
			t.Errorf("Expected items of deleted list to be removed, found %d", n)
		}
	})
}
