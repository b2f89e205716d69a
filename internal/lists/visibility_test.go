package lists

import (
	"testing"

	"github.com/mmynk/shoppinglist/internal/models"
)

func TestVisibleLists(t *testing.T) {
	c := models.Collection{
		{ID: "a", Owner: "Me", Members: []models.Member{{ID: "1", Name: "Me"}}},
		{ID: "b", Owner: "John", Members: []models.Member{{ID: "2", Name: "John"}, {ID: "3", Name: "Me"}}},
		{ID: "c", Owner: "John", Members: []models.Member{{ID: "4", Name: "John"}}},
		{ID: "d", Owner: "Me", Archived: true},
		{ID: "e", Owner: "Anna", Members: []models.Member{{ID: "5", Name: "me"}}},
	}

	tests := []struct {
		name            string
		viewer          string
		includeArchived bool
		want            []string
	}{
		{name: "owner and member lists", viewer: "Me", want: []string{"a", "b"}},
		{name: "include archived", viewer: "Me", includeArchived: true, want: []string{"a", "b", "d"}},
		{name: "other viewer", viewer: "John", want: []string{"b", "c"}},
		{name: "member names match exactly", viewer: "me", want: []string{"e"}},
		{name: "stranger", viewer: "Eve", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleLists(c, tt.viewer, tt.includeArchived)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %d lists", tt.want, len(got))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestPartitions(t *testing.T) {
	c := models.DefaultCollection()
	c[1].Archived = true

	overview := Overview(c, "Me")
	if len(overview) != 1 || overview[0].ID != "1" {
		t.Errorf("overview: expected [1], got %+v", overview)
	}

	archived := Archived(c, "Me")
	if len(archived) != 1 || archived[0].ID != "2" {
		t.Errorf("archived: expected [2], got %+v", archived)
	}

	if len(Archived(c, "Eve")) != 0 {
		t.Error("archived lists should be hidden from strangers")
	}
}

func TestFind(t *testing.T) {
	c := models.DefaultCollection()

	l, err := Find(c, "2")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if l.Name != "Office Supplies" {
		t.Errorf("name: expected 'Office Supplies', got %q", l.Name)
	}

	if _, err := Find(c, "42"); err == nil {
		t.Error("expected error for missing list")
	}
}

func TestPendingItems(t *testing.T) {
	l := models.DefaultCollection()[0]

	pending := PendingItems(l, false)
	if len(pending) != 2 {
		t.Errorf("pending: expected 2, got %d", len(pending))
	}
	for _, it := range pending {
		if it.Done {
			t.Errorf("unexpected done item %q", it.Name)
		}
	}

	if all := PendingItems(l, true); len(all) != 3 {
		t.Errorf("all: expected 3, got %d", len(all))
	}
}
