package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bedlam343/socialgraph/internal/domain"
)

// TestFollowLifecycle walks the follow/unfollow scenario end to end:
// follow, observe both directions, unfollow, observe the empty state.
func TestFollowLifecycle(t *testing.T) {
	s := newTestService()
	alice := signUp(t, s, "alice", "alice@x.com")
	bob := signUp(t, s, "bob", "bob@x.com")

	added, err := s.Follow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, added)

	followers, err := s.Followers(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{alice.ID}, followers)

	following, err := s.Following(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{bob.ID}, following)

	assert.True(t, s.Unfollow(alice.ID, bob.ID))

	followers, err = s.Followers(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)
}

// TestFollow_Idempotent verifies a repeat follow reports no change and
// keeps the edge count at one.
func TestFollow_Idempotent(t *testing.T) {
	s := newTestService()
	alice := signUp(t, s, "alice", "alice@x.com")
	bob := signUp(t, s, "bob", "bob@x.com")

	added, err := s.Follow(alice.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, added)

	added, err = s.Follow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 1, s.follows.Len())
}

// TestFollow_UnknownUser verifies either unknown endpoint fails with
// NotFoundError and creates nothing.
func TestFollow_UnknownUser(t *testing.T) {
	s := newTestService()
	alice := signUp(t, s, "alice", "alice@x.com")

	_, err := s.Follow(alice.ID, "ghost")
	assert.True(t, domain.IsNotFound(err))

	_, err = s.Follow("ghost", alice.ID)
	assert.True(t, domain.IsNotFound(err))

	assert.Equal(t, 0, s.follows.Len())
}

// TestFollow_Self verifies self-follow is rejected as a hard invariant.
func TestFollow_Self(t *testing.T) {
	s := newTestService()
	alice := signUp(t, s, "alice", "alice@x.com")

	_, err := s.Follow(alice.ID, alice.ID)
	assert.ErrorIs(t, err, domain.ErrSelfFollow)
	assert.Equal(t, 0, s.follows.Len())
}

// TestUnfollow_Missing verifies unfollowing an absent edge reports false
// and leaves the edge set unchanged.
func TestUnfollow_Missing(t *testing.T) {
	s := newTestService()
	alice := signUp(t, s, "alice", "alice@x.com")
	bob := signUp(t, s, "bob", "bob@x.com")

	assert.False(t, s.Unfollow(alice.ID, bob.ID))
	assert.False(t, s.Unfollow("ghost", "phantom"))
	assert.Equal(t, 0, s.follows.Len())
}

// TestFollowers_UnknownUser verifies the read side reports unknown ids.
func TestFollowers_UnknownUser(t *testing.T) {
	s := newTestService()

	_, err := s.Followers("ghost")
	assert.True(t, domain.IsNotFound(err))
	_, err = s.Following("ghost")
	assert.True(t, domain.IsNotFound(err))
}

// TestFollowers_Sorted verifies follower lists come back in id order.
func TestFollowers_Sorted(t *testing.T) {
	s := newTestService()
	for _, id := range []string{"u3", "u1", "u2", "hub"} {
		seedUser(t, s, id, "name_"+id)
	}
	for _, id := range []string{"u3", "u1", "u2"} {
		_, err := s.Follow(id, "hub")
		require.NoError(t, err)
	}

	followers, err := s.Followers("hub")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2", "u3"}, followers)
}
