// Package lists implements the mutation and visibility rules for shared
// shopping lists.
//
// Every Engine operation takes the current collection and returns a new
// one; the input is never modified. A rejected command returns the input
// collection unchanged along with a *Error. References to items or members
// that do not exist are no-ops, so repeating a command is harmless.
package lists

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/shoppinglist/internal/models"
)

// Engine applies commands to a collection.
type Engine struct {
	newID func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithIDGenerator overrides how new list, item and member IDs are created.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		e.newID = fn
	}
}

// NewEngine creates an Engine that assigns UUIDs to new entities.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{newID: func() string { return uuid.New().String() }}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// guard rejects a command on the target list before anything changes.
type guard func(l models.ShoppingList, caller string) error

func ownerOnly(l models.ShoppingList, caller string) error {
	if !IsOwner(l, caller) {
		return ErrUnauthorized
	}
	return nil
}

func notOwner(l models.ShoppingList, caller string) error {
	if IsOwner(l, caller) {
		return ErrUnauthorized
	}
	return nil
}

func contributor(l models.ShoppingList, caller string) error {
	if !CanView(l, caller) {
		return ErrUnauthorized
	}
	return nil
}

// viewer hides lists the caller cannot see behind ErrNotFound.
func viewer(l models.ShoppingList, caller string) error {
	if !CanView(l, caller) {
		return ErrNotFound
	}
	return nil
}

func active(l models.ShoppingList, _ string) error {
	if l.Archived {
		return ErrArchived
	}
	return nil
}

// update runs guards in order and then applies mutate to a copy of the
// target list. mutate may itself reject the command.
func update(c models.Collection, op, caller, id string, mutate func(l *models.ShoppingList) error, guards ...guard) (models.Collection, error) {
	idx := c.Index(id)
	if idx < 0 {
		return c, newError(op, id, ErrNotFound)
	}
	for _, g := range guards {
		if err := g(c[idx], caller); err != nil {
			return c, newError(op, id, err)
		}
	}
	out := c.Clone()
	if err := mutate(&out[idx]); err != nil {
		return c, newError(op, id, err)
	}
	return out, nil
}

// CreateList appends a new list owned by caller.
func (e *Engine) CreateList(c models.Collection, caller, name string) (models.Collection, error) {
	const op = "CreateList"
	name = strings.TrimSpace(name)
	if caller == "" {
		return c, newError(op, "", invalid("owner is required"))
	}
	if name == "" {
		return c, newError(op, "", invalid("name is required"))
	}
	for _, l := range c {
		if strings.EqualFold(l.Name, name) {
			return c, newError(op, "", invalid("a list named %q already exists", l.Name))
		}
	}

	out := c.Clone()
	out = append(out, models.ShoppingList{
		ID:      e.newID(),
		Name:    name,
		Owner:   caller,
		Members: []models.Member{{ID: e.newID(), Name: caller}},
		Items:   []models.Item{},
	})
	return out, nil
}

// DeleteList removes a list. Only the owner may delete, archived or not.
func (e *Engine) DeleteList(c models.Collection, caller, id string) (models.Collection, error) {
	const op = "DeleteList"
	idx := c.Index(id)
	if idx < 0 {
		return c, newError(op, id, ErrNotFound)
	}
	if err := ownerOnly(c[idx], caller); err != nil {
		return c, newError(op, id, err)
	}
	out := make(models.Collection, 0, len(c)-1)
	for i, l := range c {
		if i != idx {
			out = append(out, l.Clone())
		}
	}
	return out, nil
}

// RenameList sets a new name on an active list.
func (e *Engine) RenameList(c models.Collection, caller, id, name string) (models.Collection, error) {
	name = strings.TrimSpace(name)
	return update(c, "RenameList", caller, id, func(l *models.ShoppingList) error {
		if name == "" {
			return invalid("name is required")
		}
		l.Name = name
		return nil
	}, ownerOnly, active)
}

// ToggleArchive flips the archived flag. It is the only command allowed on
// an archived list.
func (e *Engine) ToggleArchive(c models.Collection, caller, id string) (models.Collection, error) {
	return update(c, "ToggleArchive", caller, id, func(l *models.ShoppingList) error {
		l.Archived = !l.Archived
		return nil
	}, ownerOnly)
}

// AddItem appends an unchecked item. The owner and members may add items.
func (e *Engine) AddItem(c models.Collection, caller, id, name string) (models.Collection, error) {
	name = strings.TrimSpace(name)
	return update(c, "AddItem", caller, id, func(l *models.ShoppingList) error {
		if name == "" {
			return invalid("item name is required")
		}
		l.Items = append(l.Items, models.Item{ID: e.newID(), Name: name})
		return nil
	}, contributor, active)
}

// ToggleItem flips the done flag of an item.
func (e *Engine) ToggleItem(c models.Collection, caller, id, itemID string) (models.Collection, error) {
	return update(c, "ToggleItem", caller, id, func(l *models.ShoppingList) error {
		for i := range l.Items {
			if l.Items[i].ID == itemID {
				l.Items[i].Done = !l.Items[i].Done
			}
		}
		return nil
	}, viewer, active)
}

// RemoveItem deletes an item from the list.
func (e *Engine) RemoveItem(c models.Collection, caller, id, itemID string) (models.Collection, error) {
	return update(c, "RemoveItem", caller, id, func(l *models.ShoppingList) error {
		kept := l.Items[:0]
		for _, it := range l.Items {
			if it.ID != itemID {
				kept = append(kept, it)
			}
		}
		l.Items = kept
		return nil
	}, viewer, active)
}

// AddMember invites a member. Adding a name that is already present
// (ignoring case) leaves the list unchanged and is not an error.
func (e *Engine) AddMember(c models.Collection, caller, id, name string) (models.Collection, error) {
	name = strings.TrimSpace(name)
	return update(c, "AddMember", caller, id, func(l *models.ShoppingList) error {
		if name == "" {
			return invalid("member name is required")
		}
		if l.HasMemberFold(name) {
			return nil
		}
		l.Members = append(l.Members, models.Member{ID: e.newID(), Name: name})
		return nil
	}, ownerOnly, active)
}

// RemoveMember removes a member by ID. The owner's own entry cannot be removed.
func (e *Engine) RemoveMember(c models.Collection, caller, id, memberID string) (models.Collection, error) {
	return update(c, "RemoveMember", caller, id, func(l *models.ShoppingList) error {
		kept := make([]models.Member, 0, len(l.Members))
		for _, m := range l.Members {
			if m.ID != memberID {
				kept = append(kept, m)
				continue
			}
			if m.Name == l.Owner {
				return ErrOwnerRemoval
			}
		}
		l.Members = kept
		return nil
	}, ownerOnly, active)
}

// LeaveList removes caller from the members of one list. Other lists are
// never touched, even if they become invisible to caller. A list the caller
// cannot see is reported as not found.
func (e *Engine) LeaveList(c models.Collection, caller, id string) (models.Collection, error) {
	return update(c, "LeaveList", caller, id, func(l *models.ShoppingList) error {
		kept := make([]models.Member, 0, len(l.Members))
		for _, m := range l.Members {
			if m.Name != caller {
				kept = append(kept, m)
			}
		}
		l.Members = kept
		return nil
	}, viewer, notOwner, active)
}
