package types

import "time"

// Note is a titled document with formatted content, belonging to exactly
// one category. Tags are free-text labels; duplicates are permitted and
// order is preserved.
type Note struct {
	ID         string    `json:"id"`         // UUID v7, generated on creation.
	Title      string    `json:"title"`      // May be empty; callers apply their own "Untitled" policy.
	Content    string    `json:"content"`    // Formatted markup, defaults to empty.
	CategoryID string    `json:"categoryId"` // Owning category (required).
	Tags       []string  `json:"tags"`       // Ordered, duplicates allowed, never nil on read.
	CreatedAt  time.Time `json:"createdAt"`  // Set once at creation.
	UpdatedAt  time.Time `json:"updatedAt"`  // Refreshed on every mutation.
}

// NotePatch describes a partial note update. A nil field means "absent":
// the stored value is kept. Each field is merged independently.
type NotePatch struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	CategoryID *string   `json:"categoryId"`
	Tags       *[]string `json:"tags"`
}

// Empty reports whether the patch carries no fields.
func (p NotePatch) Empty() bool {
	return p.Title == nil && p.Content == nil && p.CategoryID == nil && p.Tags == nil
}

// NoteFilter narrows ListNotes results. Zero values mean "no filtering"
// on that dimension.
type NoteFilter struct {
	// CategoryID restricts results to notes owned by this category.
	CategoryID string

	// Search keeps notes whose title, content, or serialized tags
	// contain this substring, case-insensitive.
	Search string
}
