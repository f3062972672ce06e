package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/xenomorphXX121/NoteVault/pkg/types"
)

// dbFileName is the database file created inside the data directory.
const dbFileName = "notevault.db"

// Store provides typed access to the categories and notes tables backed
// by a single SQLite file. A Store is created with NewStore, initialized
// with Open, and released with Close. All methods are safe for
// concurrent use; the embedded engine serializes writes.
type Store struct {
	mu     sync.RWMutex
	opened bool
	db     *sql.DB
	config types.Config
	log    zerolog.Logger

	// now supplies timestamps for creation and mutation stamps.
	// Overridden in tests to control tick granularity.
	now func() time.Time
}

// NewStore creates a Store. The store is not opened; call Open with a
// Config to initialize it.
func NewStore(log zerolog.Logger) *Store {
	return &Store{
		log: log,
		now: time.Now,
	}
}

// Open initializes the store: creates the data directory if needed,
// opens the database file, applies the idempotent schema, and seeds the
// default categories if the categories table is empty. Open on an
// already-open store is an error.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opened {
		return fmt.Errorf("store already open")
	}

	if err := config.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(config.DataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return fmt.Errorf("enable foreign keys: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("apply indexes: %w", err)
		}
	}

	s.db = db
	s.config = config
	s.opened = true

	seeded, err := s.seedDefaultCategories()
	if err != nil {
		db.Close()
		s.db = nil
		s.opened = false
		return fmt.Errorf("seed default categories: %w", err)
	}

	s.log.Info().
		Str("path", dbPath).
		Bool("seeded", seeded).
		Msg("store opened")

	return nil
}

// Close releases the database connection. Idempotent: closing a closed
// store succeeds. After Close, all operations return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened {
		return nil
	}

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	s.db = nil
	s.opened = false

	s.log.Info().Msg("store closed")
	return nil
}

// conn returns the database handle, or ErrStoreClosed if the store is
// not open. Callers hold no lock afterwards; database/sql handles are
// safe for concurrent use.
func (s *Store) conn() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.opened {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}

// timestamp returns the current time truncated to whole seconds, the
// granularity of the persisted epoch columns.
func (s *Store) timestamp() time.Time {
	return time.Unix(s.now().Unix(), 0).UTC()
}

// generateID generates a UUID v7 entity ID, falling back to v4 if v7
// generation fails.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
