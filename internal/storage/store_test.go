package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreImplementations(t *testing.T) {
	stores := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store {
			return NewMemoryStore()
		},
		"sqlite": func(t *testing.T) Store {
			s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "kv.db"))
			require.NoError(t, err)
			return s
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)
			defer s.Close()

			_, ok, err := s.Get("missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set("cart", `{"1":{"qty":1}}`))
			value, ok, err := s.Get("cart")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `{"1":{"qty":1}}`, value)

			// Overwrite
			require.NoError(t, s.Set("cart", "{}"))
			value, ok, err = s.Get("cart")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "{}", value)

			// Remove is idempotent
			require.NoError(t, s.Remove("cart"))
			require.NoError(t, s.Remove("cart"))
			_, ok, err = s.Get("cart")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "kv.db")

	s, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Set("code", "ADI-123456"))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer s.Close()

	value, ok, err := s.Get("code")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ADI-123456", value)
}
