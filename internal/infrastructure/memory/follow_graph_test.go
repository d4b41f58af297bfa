package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bedlam343/socialgraph/internal/domain"
)

// TestFollowGraph_Add verifies a fresh edge is created and visible from
// both endpoints.
func TestFollowGraph_Add(t *testing.T) {
	g := NewFollowGraph()

	added, err := g.Add("u1", "u2")
	require.NoError(t, err)
	assert.True(t, added)

	assert.Equal(t, []string{"u1"}, g.Followers("u2"))
	assert.Equal(t, []string{"u2"}, g.Following("u1"))
	assert.Equal(t, 1, g.Len())
}

// TestFollowGraph_AddIdempotent verifies inserting the same edge twice
// keeps the edge count at exactly one.
func TestFollowGraph_AddIdempotent(t *testing.T) {
	g := NewFollowGraph()

	added, err := g.Add("u1", "u2")
	require.NoError(t, err)
	require.True(t, added)

	added, err = g.Add("u1", "u2")
	require.NoError(t, err)
	assert.False(t, added, "second insert must report no change")
	assert.Equal(t, 1, g.Len())
}

// TestFollowGraph_AddSelf verifies self-edges are rejected outright.
func TestFollowGraph_AddSelf(t *testing.T) {
	g := NewFollowGraph()

	added, err := g.Add("u1", "u1")
	require.ErrorIs(t, err, domain.ErrSelfFollow)
	assert.False(t, added)
	assert.Equal(t, 0, g.Len())
}

// TestFollowGraph_Remove verifies edge removal updates both adjacency
// directions.
func TestFollowGraph_Remove(t *testing.T) {
	g := NewFollowGraph()
	_, err := g.Add("u1", "u2")
	require.NoError(t, err)

	assert.True(t, g.Remove("u1", "u2"))
	assert.Empty(t, g.Followers("u2"))
	assert.Empty(t, g.Following("u1"))
	assert.Equal(t, 0, g.Len())
}

// TestFollowGraph_RemoveMissing verifies removing an absent edge is a
// reported no-op.
func TestFollowGraph_RemoveMissing(t *testing.T) {
	g := NewFollowGraph()
	_, err := g.Add("u1", "u2")
	require.NoError(t, err)

	assert.False(t, g.Remove("u2", "u1"), "reverse edge does not exist")
	assert.False(t, g.Remove("u3", "u4"))
	assert.Equal(t, 1, g.Len())
}

// TestFollowGraph_Direction verifies the relation is directed: an edge in
// one direction implies nothing about the other.
func TestFollowGraph_Direction(t *testing.T) {
	g := NewFollowGraph()
	_, err := g.Add("u1", "u2")
	require.NoError(t, err)

	assert.Empty(t, g.Followers("u1"))
	assert.Empty(t, g.Following("u2"))

	added, err := g.Add("u2", "u1")
	require.NoError(t, err)
	assert.True(t, added, "reverse edge is a distinct edge")
	assert.Equal(t, 2, g.Len())
}

// TestFollowGraph_Degrees verifies follower and following sets across a
// small star graph.
func TestFollowGraph_Degrees(t *testing.T) {
	g := NewFollowGraph()
	for _, source := range []string{"u1", "u2", "u3"} {
		_, err := g.Add(source, "hub")
		require.NoError(t, err)
	}
	_, err := g.Add("hub", "u1")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"u1", "u2", "u3"}, g.Followers("hub"))
	assert.Equal(t, []string{"u1"}, g.Following("hub"))
	assert.Equal(t, 4, g.Len())
}
