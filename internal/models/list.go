package models

import "strings"

// ShoppingList is a named list of items shared between its owner and members.
type ShoppingList struct {
	// ID is the unique identifier for the list (UUID format for new lists).
	ID string `json:"id"`

	// Name is the display name of the list (e.g., "Weekend Shopping").
	Name string `json:"name"`

	// Owner is the identity that created the list. It never changes.
	Owner string `json:"owner"`

	// Members is the ordered list of identities with access, owner included.
	Members []Member `json:"members"`

	// Items are the entries on the list, in insertion order.
	Items []Item `json:"items"`

	// Archived disables every mutation except unarchiving.
	Archived bool `json:"archived"`
}

// Member is an identity granted access to a list.
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Item is a single entry on a shopping list.
type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Done bool   `json:"done"`
}

// Clone returns a deep copy of the list.
func (l ShoppingList) Clone() ShoppingList {
	out := l
	out.Members = append([]Member{}, l.Members...)
	out.Items = append([]Item{}, l.Items...)
	return out
}

// HasMemberFold reports whether a member with the given name exists,
// ignoring case.
func (l ShoppingList) HasMemberFold(name string) bool {
	for _, m := range l.Members {
		if strings.EqualFold(m.Name, name) {
			return true
		}
	}
	return false
}

// Equal reports whether two lists hold the same state.
func (l ShoppingList) Equal(other ShoppingList) bool {
	if l.ID != other.ID || l.Name != other.Name || l.Owner != other.Owner || l.Archived != other.Archived {
		return false
	}
	return MembersEqual(l.Members, other.Members) && ItemsEqual(l.Items, other.Items)
}

// MembersEqual reports whether two member sequences are identical.
func MembersEqual(a, b []Member) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ItemsEqual reports whether two item sequences are identical.
func ItemsEqual(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
