// Note table operations: filtered list with substring search, get,
// create, merge-update, and delete. Tags are stored as a JSON-encoded
// array in a TEXT column and round-trip through encodeTags/decodeTags
// without reordering or loss.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/xenomorphXX121/NoteVault/pkg/types"
)

// ListNotes returns notes matching the filter, most recently updated
// first. CategoryID filters by exact match; Search keeps notes whose
// title, content, or serialized tags contain the substring,
// case-insensitive. Any field matching is enough.
func (s *Store) ListNotes(filter types.NoteFilter) ([]*types.Note, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	query := "SELECT note_id, title, content, category_id, tags, created_at, updated_at FROM notes"
	var conditions []string
	var args []any

	if filter.CategoryID != "" {
		conditions = append(conditions, "category_id = ?")
		args = append(args, filter.CategoryID)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		conditions = append(conditions, "(lower(title) LIKE ? OR lower(content) LIKE ? OR lower(tags) LIKE ?)")
		args = append(args, pattern, pattern, pattern)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY updated_at DESC, rowid DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	notes := []*types.Note{}
	for rows.Next() {
		note, err := hydrateNote(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}

	return notes, nil
}

// GetNote retrieves a note by ID with tags deserialized. Returns
// ErrNotFound if no note has the given ID.
func (s *Store) GetNote(id string) (*types.Note, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(
		"SELECT note_id, title, content, category_id, tags, created_at, updated_at FROM notes WHERE note_id = ?",
		id,
	)

	note, err := scanNote(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting note %s: %w", id, err)
	}
	return note, nil
}

// CreateNote persists a new note with a generated ID. Content defaults
// to empty and tags to an empty sequence; CreatedAt and UpdatedAt are
// stamped to the same instant. Returns ErrCategoryNotFound if the
// category does not exist.
func (s *Store) CreateNote(title, content, categoryID string, tags []string) (*types.Note, error) {
	if categoryID == "" {
		return nil, types.ErrCategoryNotFound
	}

	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	exists, err := categoryExists(db, categoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, types.ErrCategoryNotFound
	}

	if tags == nil {
		tags = []string{}
	}
	encoded, err := encodeTags(tags)
	if err != nil {
		return nil, err
	}

	now := s.timestamp()
	note := &types.Note{
		ID:         generateID(),
		Title:      title,
		Content:    content,
		CategoryID: categoryID,
		Tags:       tags,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err = db.Exec(
		"INSERT INTO notes (note_id, title, content, category_id, tags, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		note.ID, note.Title, note.Content, note.CategoryID, encoded, note.CreatedAt.Unix(), note.UpdatedAt.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting note: %w", err)
	}

	return note, nil
}

// UpdateNote merges the given patch onto an existing note. Each patch
// field is applied independently; absent fields keep their stored
// values. UpdatedAt is always refreshed. Returns ErrNotFound if the ID
// does not exist and ErrCategoryNotFound if the patch moves the note to
// a category that does not exist.
func (s *Store) UpdateNote(id string, patch types.NotePatch) (*types.Note, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	note, err := s.GetNote(id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	if patch.CategoryID != nil {
		exists, err := categoryExists(db, *patch.CategoryID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, types.ErrCategoryNotFound
		}
		note.CategoryID = *patch.CategoryID
	}
	if patch.Tags != nil {
		note.Tags = *patch.Tags
		if note.Tags == nil {
			note.Tags = []string{}
		}
	}
	note.UpdatedAt = s.timestamp()

	encoded, err := encodeTags(note.Tags)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(
		"UPDATE notes SET title = ?, content = ?, category_id = ?, tags = ?, updated_at = ? WHERE note_id = ?",
		note.Title, note.Content, note.CategoryID, encoded, note.UpdatedAt.Unix(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating note %s: %w", id, err)
	}

	return note, nil
}

// DeleteNote deletes a note by ID. Returns ErrNotFound if no row was
// removed.
func (s *Store) DeleteNote(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	db, err := s.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM notes WHERE note_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting note %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking note deletion: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}

	return nil
}

// hydrateNote converts the current row of a notes result set into a
// *types.Note.
func hydrateNote(rows *sql.Rows) (*types.Note, error) {
	return scanNote(rows.Scan)
}

// scanNote scans a notes row through the given scan function and
// deserializes the tags column.
func scanNote(scan func(dest ...any) error) (*types.Note, error) {
	var n types.Note
	var tags string
	var createdAt, updatedAt int64
	if err := scan(&n.ID, &n.Title, &n.Content, &n.CategoryID, &tags, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	decoded, err := decodeTags(tags)
	if err != nil {
		return nil, err
	}
	n.Tags = decoded
	n.CreatedAt = time.Unix(createdAt, 0).UTC()
	n.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return &n, nil
}

// encodeTags serializes tags to the stored JSON-array form. A nil slice
// encodes as an empty array.
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encoding tags: %w", err)
	}
	return string(data), nil
}

// decodeTags deserializes the stored tags column. An empty column reads
// as an empty sequence, never nil.
func decodeTags(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("decoding tags: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}
