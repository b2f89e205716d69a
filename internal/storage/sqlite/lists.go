package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mmynk/shoppinglist/internal/models"
	"github.com/mmynk/shoppinglist/internal/storage"
)

// FetchAll returns every list, with members and items, in creation order.
func (s *SQLiteStore) FetchAll(ctx context.Context) (models.Collection, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, owner, archived FROM lists ORDER BY created_at, rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get lists: %w", err)
	}

	c := models.Collection{}
	for rows.Next() {
		l := models.ShoppingList{Members: []models.Member{}, Items: []models.Item{}}
		if err := rows.Scan(&l.ID, &l.Name, &l.Owner, &l.Archived); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		c = append(c, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lists: %w", err)
	}

	members, err := s.members(ctx, "")
	if err != nil {
		return nil, err
	}
	items, err := s.items(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range c {
		if m, ok := members[c[i].ID]; ok {
			c[i].Members = m
		}
		if it, ok := items[c[i].ID]; ok {
			c[i].Items = it
		}
	}
	return c, nil
}

// FetchOne returns a single list with its members and items.
func (s *SQLiteStore) FetchOne(ctx context.Context, id string) (models.ShoppingList, error) {
	l := models.ShoppingList{Members: []models.Member{}, Items: []models.Item{}}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, owner, archived FROM lists WHERE id = ?",
		id,
	).Scan(&l.ID, &l.Name, &l.Owner, &l.Archived)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ShoppingList{}, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return models.ShoppingList{}, fmt.Errorf("failed to get list: %w", err)
	}

	members, err := s.members(ctx, id)
	if err != nil {
		return models.ShoppingList{}, err
	}
	items, err := s.items(ctx, id)
	if err != nil {
		return models.ShoppingList{}, err
	}
	if m, ok := members[id]; ok {
		l.Members = m
	}
	if it, ok := items[id]; ok {
		l.Items = it
	}
	return l, nil
}

// Create inserts a new list with its members and items.
func (s *SQLiteStore) Create(ctx context.Context, l models.ShoppingList) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO lists (id, name, owner, archived, created_at) VALUES (?, ?, ?, ?, ?)",
		l.ID, l.Name, l.Owner, l.Archived, time.Now().UnixNano(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: %s", storage.ErrExists, l.ID)
		}
		return fmt.Errorf("failed to insert list: %w", err)
	}

	if err := insertMembers(ctx, tx, l.ID, l.Members); err != nil {
		return err
	}
	if err := insertItems(ctx, tx, l.ID, l.Items); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Patch replaces the fields set in p. Member and item sequences are
// rewritten whole.
func (s *SQLiteStore) Patch(ctx context.Context, id string, p storage.Patch) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM lists WHERE id = ?", id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to get list: %w", err)
	}

	if p.Name != nil {
		if _, err := tx.ExecContext(ctx, "UPDATE lists SET name = ? WHERE id = ?", *p.Name, id); err != nil {
			return fmt.Errorf("failed to update name: %w", err)
		}
	}
	if p.Archived != nil {
		if _, err := tx.ExecContext(ctx, "UPDATE lists SET archived = ? WHERE id = ?", *p.Archived, id); err != nil {
			return fmt.Errorf("failed to update archived: %w", err)
		}
	}
	if p.Members != nil {
		if _, err := tx.ExecContext(ctx, "DELETE FROM list_members WHERE list_id = ?", id); err != nil {
			return fmt.Errorf("failed to clear members: %w", err)
		}
		if err := insertMembers(ctx, tx, id, p.Members); err != nil {
			return err
		}
	}
	if p.Items != nil {
		if _, err := tx.ExecContext(ctx, "DELETE FROM list_items WHERE list_id = ?", id); err != nil {
			return fmt.Errorf("failed to clear items: %w", err)
		}
		if err := insertItems(ctx, tx, id, p.Items); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Delete removes a list; members and items cascade.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM lists WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	return nil
}

// members returns members grouped by list ID, limited to one list when
// listID is set.
func (s *SQLiteStore) members(ctx context.Context, listID string) (map[string][]models.Member, error) {
	query := "SELECT list_id, id, name FROM list_members"
	var args []any
	if listID != "" {
		query += " WHERE list_id = ?"
		args = append(args, listID)
	}
	query += " ORDER BY list_id, position"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]models.Member)
	for rows.Next() {
		var lid string
		var m models.Member
		if err := rows.Scan(&lid, &m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		out[lid] = append(out[lid], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return out, nil
}

// items returns items grouped by list ID, limited to one list when listID
// is set.
func (s *SQLiteStore) items(ctx context.Context, listID string) (map[string][]models.Item, error) {
	query := "SELECT list_id, id, name, done FROM list_items"
	var args []any
	if listID != "" {
		query += " WHERE list_id = ?"
		args = append(args, listID)
	}
	query += " ORDER BY list_id, position"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]models.Item)
	for rows.Next() {
		var lid string
		var it models.Item
		if err := rows.Scan(&lid, &it.ID, &it.Name, &it.Done); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		out[lid] = append(out[lid], it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return out, nil
}

func insertMembers(ctx context.Context, tx *sql.Tx, listID string, members []models.Member) error {
	for i, m := range members {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO list_members (list_id, id, name, position) VALUES (?, ?, ?, ?)",
			listID, m.ID, m.Name, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert member: %w", err)
		}
	}
	return nil
}

func insertItems(ctx context.Context, tx *sql.Tx, listID string, items []models.Item) error {
	for i, it := range items {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO list_items (list_id, id, name, done, position) VALUES (?, ?, ?, ?, ?)",
			listID, it.ID, it.Name, it.Done, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert item: %w", err)
		}
	}
	return nil
}
