// Category table operations: list, get, create, merge-update, cascade
// delete, and derived note counts.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/xenomorphXX121/NoteVault/pkg/types"
)

// ListCategories returns all categories ordered by creation time
// ascending. Ties within the same second keep insert order. NoteCount is
// left zero; callers needing counts combine with NoteCountsByCategory.
func (s *Store) ListCategories() ([]*types.Category, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT category_id, name, color, created_at FROM categories ORDER BY created_at ASC, rowid ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	categories := []*types.Category{}
	for rows.Next() {
		cat, err := hydrateCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating category: %w", err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	return categories, nil
}

// GetCategory retrieves a category by ID. Returns ErrNotFound if no
// category has the given ID.
func (s *Store) GetCategory(id string) (*types.Category, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(
		"SELECT category_id, name, color, created_at FROM categories WHERE category_id = ?",
		id,
	)

	var c types.Category
	var createdAt int64
	if err := row.Scan(&c.ID, &c.Name, &c.Color, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting category %s: %w", id, err)
	}
	c.CreatedAt = time.Unix(createdAt, 0).UTC()

	return &c, nil
}

// CreateCategory persists a new category with a generated ID and a
// creation stamp. An empty color gets DefaultCategoryColor.
func (s *Store) CreateCategory(name, color string) (*types.Category, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	if color == "" {
		color = types.DefaultCategoryColor
	}

	cat := &types.Category{
		ID:        generateID(),
		Name:      name,
		Color:     color,
		CreatedAt: s.timestamp(),
	}

	_, err = db.Exec(
		"INSERT INTO categories (category_id, name, color, created_at) VALUES (?, ?, ?, ?)",
		cat.ID, cat.Name, cat.Color, cat.CreatedAt.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting category: %w", err)
	}

	return cat, nil
}

// UpdateCategory merges the given patch onto an existing category.
// Absent patch fields keep their stored values. Returns ErrNotFound if
// the ID does not exist.
func (s *Store) UpdateCategory(id string, patch types.CategoryPatch) (*types.Category, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	cat, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		cat.Name = *patch.Name
	}
	if patch.Color != nil {
		cat.Color = *patch.Color
	}

	_, err = db.Exec(
		"UPDATE categories SET name = ?, color = ? WHERE category_id = ?",
		cat.Name, cat.Color, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating category %s: %w", id, err)
	}

	return cat, nil
}

// DeleteCategory deletes a category and every note that references it.
// Both deletes run in a single transaction so a failure leaves neither
// applied. Returns ErrNotFound if the category does not exist; the
// result does not depend on whether any notes existed.
func (s *Store) DeleteCategory(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	db, err := s.conn()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Notes are removed explicitly rather than relying on the
	// referential cascade alone.
	if _, err := tx.Exec("DELETE FROM notes WHERE category_id = ?", id); err != nil {
		return fmt.Errorf("deleting notes for category %s: %w", id, err)
	}

	res, err := tx.Exec("DELETE FROM categories WHERE category_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting category %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking category deletion: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing category deletion: %w", err)
	}

	return nil
}

// NoteCountsByCategory returns a map from category ID to the number of
// notes referencing it. Categories without notes do not appear in the
// map; there is no stored counter.
func (s *Store) NoteCountsByCategory() (map[string]int, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT category_id, COUNT(*) FROM notes GROUP BY category_id")
	if err != nil {
		return nil, fmt.Errorf("counting notes per category: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scanning note count: %w", err)
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating note counts: %w", err)
	}

	return counts, nil
}

// hydrateCategory converts the current row of a categories result set
// into a *types.Category.
func hydrateCategory(rows *sql.Rows) (*types.Category, error) {
	var c types.Category
	var createdAt int64
	if err := rows.Scan(&c.ID, &c.Name, &c.Color, &createdAt); err != nil {
		return nil, err
	}
	c.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &c, nil
}

// categoryExists reports whether a category row with the given ID exists.
func categoryExists(db *sql.DB, id string) (bool, error) {
	var one int
	err := db.QueryRow("SELECT 1 FROM categories WHERE category_id = ?", id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking category existence: %w", err)
	}
	return true, nil
}
