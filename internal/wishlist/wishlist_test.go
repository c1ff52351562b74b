package wishlist

import (
	"testing"

	"sustainsports-be/internal/catalog"
	"sustainsports-be/internal/localstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mat = catalog.Product{ID: "p1", Name: "Bamboo Yoga Mat", Price: 49.99}

func TestStore_AddIsIdempotent(t *testing.T) {
	s := NewStore(localstore.NewMemStore())

	require.NoError(t, s.Add("alice", mat))
	require.NoError(t, s.Add("alice", mat))

	items, err := s.List("alice")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestStore_HasAndRemove(t *testing.T) {
	s := NewStore(localstore.NewMemStore())
	require.NoError(t, s.Add("alice", mat))

	has, err := s.Has("alice", "p1")
	require.NoError(t, err)
	assert.True(t, has)

	// lists are per user
	has, err = s.Has("bob", "p1")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, s.Remove("alice", "p1"))
	has, _ = s.Has("alice", "p1")
	assert.False(t, has)

	// removing an absent item is a no-op
	require.NoError(t, s.Remove("alice", "ghost"))
}

func TestStore_Clear(t *testing.T) {
	s := NewStore(localstore.NewMemStore())
	require.NoError(t, s.Add("alice", mat))
	require.NoError(t, s.Add("alice", catalog.Product{ID: "p2", Name: "Tee", Price: 25}))

	require.NoError(t, s.Clear("alice"))

	items, err := s.List("alice")
	require.NoError(t, err)
	assert.Empty(t, items)
}
