// Unit tests for category operations.
package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenomorphXX121/NoteVault/pkg/types"
)

func TestCreateCategory(t *testing.T) {
	tests := []struct {
		name      string
		inName    string
		inColor   string
		wantColor string
	}{
		{
			name:      "explicit color is kept",
			inName:    "Recipes",
			inColor:   "#ff0000",
			wantColor: "#ff0000",
		},
		{
			name:      "empty color gets the default",
			inName:    "Journal",
			inColor:   "",
			wantColor: types.DefaultCategoryColor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, clock := newTestStore(t)

			cat, err := store.CreateCategory(tt.inName, tt.inColor)
			require.NoError(t, err)
			assert.NotEmpty(t, cat.ID)
			assert.Equal(t, tt.inName, cat.Name)
			assert.Equal(t, tt.wantColor, cat.Color)
			assert.Equal(t, clock.Now(), cat.CreatedAt)

			// Read back through the store.
			got, err := store.GetCategory(cat.ID)
			require.NoError(t, err)
			assert.Equal(t, cat, got)
		})
	}
}

func TestGetCategoryNotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.GetCategory("no-such-id")
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = store.GetCategory("")
	assert.ErrorIs(t, err, types.ErrInvalidID)
}

func TestListCategoriesOrder(t *testing.T) {
	store, clock := newTestStore(t)

	first, err := store.CreateCategory("First", "")
	require.NoError(t, err)
	clock.Advance(time.Second)
	second, err := store.CreateCategory("Second", "")
	require.NoError(t, err)

	categories, err := store.ListCategories()
	require.NoError(t, err)

	// Four seeded defaults precede the two created here.
	require.Len(t, categories, 6)
	assert.Equal(t, first.ID, categories[4].ID)
	assert.Equal(t, second.ID, categories[5].ID)
}

func TestUpdateCategory(t *testing.T) {
	tests := []struct {
		name      string
		patch     types.CategoryPatch
		wantName  string
		wantColor string
	}{
		{
			name:      "name only keeps color",
			patch:     types.CategoryPatch{Name: strptr("Renamed")},
			wantName:  "Renamed",
			wantColor: "#aabbcc",
		},
		{
			name:      "color only keeps name",
			patch:     types.CategoryPatch{Color: strptr("#000000")},
			wantName:  "Original",
			wantColor: "#000000",
		},
		{
			name:      "empty patch changes nothing",
			patch:     types.CategoryPatch{},
			wantName:  "Original",
			wantColor: "#aabbcc",
		},
		{
			name:      "present but empty name is written as given",
			patch:     types.CategoryPatch{Name: strptr("")},
			wantName:  "",
			wantColor: "#aabbcc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore(t)
			cat, err := store.CreateCategory("Original", "#aabbcc")
			require.NoError(t, err)

			updated, err := store.UpdateCategory(cat.ID, tt.patch)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, updated.Name)
			assert.Equal(t, tt.wantColor, updated.Color)

			got, err := store.GetCategory(cat.ID)
			require.NoError(t, err)
			assert.Equal(t, updated, got)
		})
	}

	t.Run("absent id returns ErrNotFound", func(t *testing.T) {
		store, _ := newTestStore(t)
		_, err := store.UpdateCategory("no-such-id", types.CategoryPatch{Name: strptr("X")})
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestDeleteCategoryCascades(t *testing.T) {
	store, _ := newTestStore(t)

	cat, err := store.CreateCategory("Doomed", "")
	require.NoError(t, err)
	other, err := store.CreateCategory("Survivor", "")
	require.NoError(t, err)

	doomed, err := store.CreateNote("In doomed", "", cat.ID, nil)
	require.NoError(t, err)
	kept, err := store.CreateNote("In survivor", "", other.ID, nil)
	require.NoError(t, err)

	require.NoError(t, store.DeleteCategory(cat.ID))

	// Category and its notes are gone.
	_, err = store.GetCategory(cat.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = store.GetNote(doomed.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	// The other category's note is untouched.
	_, err = store.GetNote(kept.ID)
	assert.NoError(t, err)
}

func TestDeleteCategoryAbsent(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.DeleteCategory("no-such-id")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestNoteCountsByCategory(t *testing.T) {
	store, _ := newTestStore(t)

	a, err := store.CreateCategory("A", "")
	require.NoError(t, err)
	b, err := store.CreateCategory("B", "")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := store.CreateNote("note", "", a.ID, nil)
		require.NoError(t, err)
	}
	_, err = store.CreateNote("note", "", b.ID, nil)
	require.NoError(t, err)

	counts, err := store.NoteCountsByCategory()
	require.NoError(t, err)
	assert.Equal(t, 3, counts[a.ID])
	assert.Equal(t, 1, counts[b.ID])

	// The sum over all categories equals the total note count.
	total := 0
	for _, n := range counts {
		total += n
	}
	notes, err := store.ListNotes(types.NoteFilter{})
	require.NoError(t, err)
	assert.Equal(t, len(notes), total)
}
