package models

// DefaultCollection returns the built-in lists used when nothing has been
// persisted yet. Each call returns a fresh copy.
func DefaultCollection() Collection {
	return Collection{
		{
			ID:    "1",
			Name:  "Weekend Shopping",
			Owner: "Me",
			Members: []Member{
				{ID: "me", Name: "Me"},
				{ID: "john", Name: "John"},
				{ID: "anna", Name: "Anna"},
			},
			Items: []Item{
				{ID: "1", Name: "Milk", Done: true},
				{ID: "2", Name: "Bread"},
				{ID: "3", Name: "Cheese"},
			},
		},
		{
			ID:    "2",
			Name:  "Office Supplies",
			Owner: "John",
			Members: []Member{
				{ID: "john", Name: "John"},
				{ID: "me", Name: "Me"},
			},
			Items: []Item{
				{ID: "1", Name: "Paper"},
				{ID: "2", Name: "Pens"},
			},
		},
	}
}
