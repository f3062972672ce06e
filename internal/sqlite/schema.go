// Package sqlite implements the SQLite storage layer for NoteVault.
// It is the sole access point to persisted state: categories and notes
// live in two tables inside a single database file, and every caller
// goes through the typed Store methods.
package sqlite

// Schema DDL. Creation is idempotent so the full set runs on every open.
const (
	createCategories = `CREATE TABLE IF NOT EXISTS categories (
    category_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    color TEXT NOT NULL,
    created_at INTEGER NOT NULL
);`

	createNotes = `CREATE TABLE IF NOT EXISTS notes (
    note_id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    category_id TEXT NOT NULL,
    tags TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    FOREIGN KEY (category_id) REFERENCES categories(category_id) ON DELETE CASCADE
);`
)

// Index DDL for the common query paths: notes filtered by category and
// notes ordered by last update.
const (
	idxNotesCategory = `CREATE INDEX IF NOT EXISTS idx_notes_category ON notes(category_id);`
	idxNotesUpdated  = `CREATE INDEX IF NOT EXISTS idx_notes_updated ON notes(updated_at);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createCategories,
	createNotes,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxNotesCategory,
	idxNotesUpdated,
}
