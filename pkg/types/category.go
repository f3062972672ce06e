package types

import "time"

// DefaultCategoryColor is applied when a category is created without an
// explicit color.
const DefaultCategoryColor = "#3b82f6"

// Category is a named, colored grouping that owns zero or more notes.
type Category struct {
	ID        string    `json:"id"`        // UUID v7, generated on creation.
	Name      string    `json:"name"`      // Display name (required, non-empty).
	Color     string    `json:"color"`     // Hex display color.
	CreatedAt time.Time `json:"createdAt"` // Set once at creation.

	// NoteCount is derived at read time, never stored.
	NoteCount int `json:"noteCount"`
}

// CategoryPatch describes a partial category update. A nil field means
// "absent": the stored value is kept. Present-but-empty values are
// written as given; the merge does not second-guess them.
type CategoryPatch struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

// Empty reports whether the patch carries no fields.
func (p CategoryPatch) Empty() bool {
	return p.Name == nil && p.Color == nil
}
