package lists

import "github.com/mmynk/shoppinglist/internal/models"

// IsOwner reports whether viewer owns the list. The comparison is exact and
// case-sensitive, unlike duplicate detection for member names.
func IsOwner(l models.ShoppingList, viewer string) bool {
	return l.Owner == viewer
}

// IsMember reports whether a member of the list is named exactly viewer.
func IsMember(l models.ShoppingList, viewer string) bool {
	for _, m := range l.Members {
		if m.Name == viewer {
			return true
		}
	}
	return false
}

// CanView reports whether viewer may see the list at all.
func CanView(l models.ShoppingList, viewer string) bool {
	return IsOwner(l, viewer) || IsMember(l, viewer)
}

// VisibleLists returns the lists viewer can see, in collection order.
// Archived lists are included only when includeArchived is set.
func VisibleLists(c models.Collection, viewer string, includeArchived bool) models.Collection {
	return filter(c, func(l models.ShoppingList) bool {
		return CanView(l, viewer) && (includeArchived || !l.Archived)
	})
}

// Overview returns the active lists visible to viewer.
func Overview(c models.Collection, viewer string) models.Collection {
	return VisibleLists(c, viewer, false)
}

// Archived returns the archived lists visible to viewer.
func Archived(c models.Collection, viewer string) models.Collection {
	return filter(c, func(l models.ShoppingList) bool {
		return l.Archived && CanView(l, viewer)
	})
}

// Find returns a copy of the list with the given ID.
func Find(c models.Collection, id string) (models.ShoppingList, error) {
	idx := c.Index(id)
	if idx < 0 {
		return models.ShoppingList{}, newError("Find", id, ErrNotFound)
	}
	return c[idx].Clone(), nil
}

// PendingItems returns the items still to buy, or every item when showAll
// is set.
func PendingItems(l models.ShoppingList, showAll bool) []models.Item {
	out := make([]models.Item, 0, len(l.Items))
	for _, it := range l.Items {
		if showAll || !it.Done {
			out = append(out, it)
		}
	}
	return out
}

func filter(c models.Collection, keep func(models.ShoppingList) bool) models.Collection {
	out := models.Collection{}
	for _, l := range c {
		if keep(l) {
			out = append(out, l.Clone())
		}
	}
	return out
}
