package models

// Collection is the full ordered set of lists known to the system.
type Collection []ShoppingList

// Clone returns a deep copy of the collection. The result never shares
// backing arrays with c.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	for i, l := range c {
		out[i] = l.Clone()
	}
	return out
}

// Index returns the position of the list with the given ID, or -1.
func (c Collection) Index(id string) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

// Equal reports whether two collections hold the same lists in the same order.
func (c Collection) Equal(other Collection) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if !c[i].Equal(other[i]) {
			return false
		}
	}
	return true
}
