package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mmynk/shoppinglist/internal/models"
	"github.com/mmynk/shoppinglist/internal/storage"
	"github.com/mmynk/shoppinglist/internal/storage/memory"
)

func TestDiff(t *testing.T) {
	prev := models.DefaultCollection()

	t.Run("no changes", func(t *testing.T) {
		if ops := storage.Diff(prev, models.DefaultCollection()); len(ops) != 0 {
			t.Errorf("expected no ops, got %+v", ops)
		}
	})

	t.Run("create, patch and delete", func(t *testing.T) {
		next := models.DefaultCollection()
		next[0].Name = "Renamed"
		next[0].Items = []models.Item{}
		next = append(next[:1], models.ShoppingList{ID: "3", Name: "New", Owner: "Me"})

		ops := storage.Diff(prev, next)
		if len(ops) != 3 {
			t.Fatalf("expected 3 ops, got %+v", ops)
		}
		if ops[0].Kind != storage.OpDelete || ops[0].ID != "2" {
			t.Errorf("op 0: expected delete of 2, got %+v", ops[0])
		}
		if ops[1].Kind != storage.OpPatch || ops[1].ID != "1" {
			t.Fatalf("op 1: expected patch of 1, got %+v", ops[1])
		}
		patch := ops[1].Patch
		if patch.Name == nil || *patch.Name != "Renamed" {
			t.Errorf("patch name: expected 'Renamed', got %v", patch.Name)
		}
		if patch.Items == nil || len(patch.Items) != 0 {
			t.Errorf("patch items: expected empty non-nil slice, got %#v", patch.Items)
		}
		if patch.Members != nil || patch.Archived != nil {
			t.Errorf("patch should only carry changed fields: %+v", patch)
		}
		if ops[2].Kind != storage.OpCreate || ops[2].List.Name != "New" {
			t.Errorf("op 2: expected create of New, got %+v", ops[2])
		}
	})
}

func TestResourceGateway(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewResourceStore(models.DefaultCollection())
	gw := storage.NewResourceGateway(backend)

	prev, err := gw.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	next := prev.Clone()
	next[1].Archived = true
	next = append(next, models.ShoppingList{ID: "3", Name: "Party", Owner: "Anna"})

	if err := gw.Save(ctx, prev, next); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	stored, err := backend.FetchAll(ctx)
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if !stored.Equal(next) {
		t.Errorf("backend state differs:\n got %+v\nwant %+v", stored, next)
	}
}

func TestResourceGatewayReportsFailures(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewResourceStore(nil)
	gw := storage.NewResourceGateway(backend)

	// Patching a list the backend never saw must fail.
	prev := models.Collection{{ID: "ghost", Name: "Ghost"}}
	next := models.Collection{{ID: "ghost", Name: "Renamed"}}
	err := gw.Save(ctx, prev, next)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSnapshotGateway(t *testing.T) {
	ctx := context.Background()
	gw := storage.NewSnapshotGateway(memory.NewSnapshotStore())

	if _, err := gw.Load(ctx); !errors.Is(err, storage.ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}
	if err := gw.Save(ctx, nil, models.DefaultCollection()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := gw.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !got.Equal(models.DefaultCollection()) {
		t.Errorf("snapshot mismatch: %+v", got)
	}
}

func TestPatchApply(t *testing.T) {
	l := models.DefaultCollection()[0]
	archived := true

	got := storage.Patch{Archived: &archived}.Apply(l)
	if !got.Archived {
		t.Error("expected archived after patch")
	}
	if got.Name != l.Name || len(got.Items) != len(l.Items) {
		t.Errorf("unpatched fields changed: %+v", got)
	}
}
