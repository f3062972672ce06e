// First-run seeding of the default categories.
package sqlite

import "fmt"

// defaultCategory describes a category seeded on first startup.
type defaultCategory struct {
	name  string
	color string
}

// defaultCategories are created exactly once, only when the categories
// table is empty.
var defaultCategories = []defaultCategory{
	{"Work Notes", "#3b82f6"},
	{"Personal", "#10b981"},
	{"Ideas", "#f59e0b"},
	{"Prompts", "#8b5cf6"},
}

// seedDefaultCategories inserts the default categories if no categories
// exist. Returns whether seeding happened. The caller holds s.mu.
func (s *Store) seedDefaultCategories() (bool, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return false, fmt.Errorf("counting categories: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	now := s.timestamp().Unix()
	for _, dc := range defaultCategories {
		_, err := s.db.Exec(
			"INSERT INTO categories (category_id, name, color, created_at) VALUES (?, ?, ?, ?)",
			generateID(), dc.name, dc.color, now,
		)
		if err != nil {
			return false, fmt.Errorf("seeding category %s: %w", dc.name, err)
		}
	}

	s.log.Info().Int("count", len(defaultCategories)).Msg("seeded default categories")
	return true, nil
}
