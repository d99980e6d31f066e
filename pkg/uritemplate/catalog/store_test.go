package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate/catalog"
)

// storeFactory creates a store instance for testing.
type storeFactory func(t *testing.T) catalog.Store

// storeContractTest runs contract tests against any Store implementation.
func storeContractTest(t *testing.T, name string, factory storeFactory) {
	entry := func(name, template string) catalog.Entry {
		return catalog.Entry{
			ID:        "id-" + name,
			Name:      name,
			Template:  template,
			CreatedAt: time.Now().UTC(),
		}
	}

	t.Run(name+"/Save_and_Get", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		saved := entry("user-repos", "/users/{user}/repos")
		require.NoError(t, store.Save(saved))

		got, err := store.Get("user-repos")
		require.NoError(t, err)
		assert.Equal(t, saved.ID, got.ID)
		assert.Equal(t, saved.Name, got.Name)
		assert.Equal(t, saved.Template, got.Template)
		assert.WithinDuration(t, saved.CreatedAt, got.CreatedAt, time.Second)
	})

	t.Run(name+"/Get_NotFound", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		_, err := store.Get("nonexistent")
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run(name+"/Save_Overwrite", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Save(entry("search", "/search{?q}")))
		require.NoError(t, store.Save(entry("search", "/search{?q,page}")))

		got, err := store.Get("search")
		require.NoError(t, err)
		assert.Equal(t, "/search{?q,page}", got.Template)
	})

	t.Run(name+"/Save_EmptyName", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		err := store.Save(entry("", "{var}"))
		assert.ErrorIs(t, err, catalog.ErrEmptyName)
	})

	t.Run(name+"/List_Empty", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		entries, err := store.List()
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run(name+"/List_OrderedByName", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Save(entry("charlie", "/c/{x}")))
		require.NoError(t, store.Save(entry("alpha", "/a/{x}")))
		require.NoError(t, store.Save(entry("bravo", "/b/{x}")))

		entries, err := store.List()
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "alpha", entries[0].Name)
		assert.Equal(t, "bravo", entries[1].Name)
		assert.Equal(t, "charlie", entries[2].Name)
	})

	t.Run(name+"/Delete", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Save(entry("gone", "/gone/{x}")))
		require.NoError(t, store.Delete("gone"))

		_, err := store.Get("gone")
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run(name+"/Delete_Nonexistent", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		assert.NoError(t, store.Delete("nonexistent"))
	})

	t.Run(name+"/Close_ThenError", func(t *testing.T) {
		store := factory(t)
		require.NoError(t, store.Close())

		err := store.Save(entry("late", "/late/{x}"))
		assert.ErrorIs(t, err, catalog.ErrStoreClosed)

		_, err = store.Get("late")
		assert.ErrorIs(t, err, catalog.ErrStoreClosed)

		_, err = store.List()
		assert.ErrorIs(t, err, catalog.ErrStoreClosed)

		err = store.Delete("late")
		assert.ErrorIs(t, err, catalog.ErrStoreClosed)
	})

	t.Run(name+"/Close_Idempotent", func(t *testing.T) {
		store := factory(t)
		require.NoError(t, store.Close())
		assert.NoError(t, store.Close())
	})
}

// TestMemoryStore runs contract tests against MemoryStore.
func TestMemoryStore(t *testing.T) {
	factory := func(t *testing.T) catalog.Store {
		return catalog.NewMemoryStore()
	}
	storeContractTest(t, "MemoryStore", factory)
}

// TestSQLiteStore runs contract tests against SQLiteStore.
func TestSQLiteStore(t *testing.T) {
	factory := func(t *testing.T) catalog.Store {
		store, err := catalog.NewSQLiteStore(":memory:")
		require.NoError(t, err)
		return store
	}
	storeContractTest(t, "SQLiteStore", factory)
}
