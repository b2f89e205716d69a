// Package models defines the core domain models for shared shopping lists.
//
// # Models
//
//   - ShoppingList: a named list owned by one identity and shared with members
//   - Member: an identity granted access to a list
//   - Item: a single entry on a list that can be checked off
//   - Collection: every list known to the system, in display order
//
// Identities are plain name strings (no user accounts). The owner of a list
// is compared with exact string equality; member names are unique within a
// list ignoring case.
//
// # Design Principles
//
// 1. **Values, not pointers**: a Collection is a slice of values so that a
// deep copy (Clone) is a complete snapshot of state
// 2. **Wire-compatible**: JSON tags match the persisted and REST formats
// 3. **Avoid circular references**: relationships use ID strings
package models
