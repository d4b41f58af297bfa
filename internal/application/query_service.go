package application

import (
	"sort"

	"github.com/Bedlam343/socialgraph/internal/domain"
	"github.com/Bedlam343/socialgraph/internal/domain/entity"
)

// defaultRankLimit bounds ranked query results when the caller passes a
// non-positive limit.
const defaultRankLimit = 10

// Recommendation pairs a candidate user with the number of shared
// connections that link them to the querying user.
type Recommendation struct {
	UserID      string
	MutualCount int
}

// RankedProfile pairs a user's public projection with their follower
// count. Passwords never appear in ranked output.
type RankedProfile struct {
	Profile   entity.Profile
	Followers int
}

// Mutuals returns the users that both u and v follow, sorted ascending.
// It is symmetric in its arguments, and Mutuals(u, u) is Following(u).
func (s *Service) Mutuals(u, v string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.users.GetByID(u); !ok {
		return nil, domain.NotFoundError{UserID: u}
	}
	if _, ok := s.users.GetByID(v); !ok {
		return nil, domain.NotFoundError{UserID: v}
	}

	vFollows := toSet(s.follows.Following(v))
	var out []string
	for _, id := range s.follows.Following(u) {
		if _, ok := vFollows[id]; ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out, nil
}

// Recommendations suggests users two hops away from userID. The follow
// relation is treated as undirected here: the 1-hop neighborhood is
// following ∪ followers, and each neighbor contributes one mutual count
// to every 2-hop candidate it links to. Candidates already connected to
// userID, and userID itself, are excluded. Results are ranked by mutual
// count descending, ties broken by ascending id, and truncated to limit
// (non-positive means the default of 10).
func (s *Service) Recommendations(userID string, limit int) ([]Recommendation, error) {
	if limit <= 0 {
		limit = defaultRankLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.users.GetByID(userID); !ok {
		return nil, domain.NotFoundError{UserID: userID}
	}

	connections := toSet(s.follows.Following(userID))
	for _, id := range s.follows.Followers(userID) {
		connections[id] = struct{}{}
	}

	counts := make(map[string]int)
	for f := range connections {
		// The inner neighborhood is a set per connection, so each
		// connection contributes at most one count per candidate.
		hop2 := toSet(s.follows.Following(f))
		for _, id := range s.follows.Followers(f) {
			hop2[id] = struct{}{}
		}
		for candidate := range hop2 {
			if candidate == userID {
				continue
			}
			if _, direct := connections[candidate]; direct {
				continue
			}
			counts[candidate]++
		}
	}

	out := make([]Recommendation, 0, len(counts))
	for id, n := range counts {
		out = append(out, Recommendation{UserID: id, MutualCount: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MutualCount != out[j].MutualCount {
			return out[i].MutualCount > out[j].MutualCount
		}
		return out[i].UserID < out[j].UserID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// MostFollowed ranks every user by follower count, descending, ties
// broken by ascending id, truncated to limit (non-positive means the
// default of 10).
func (s *Service) MostFollowed(limit int) []RankedProfile {
	if limit <= 0 {
		limit = defaultRankLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	users := s.users.All()
	out := make([]RankedProfile, 0, len(users))
	for _, u := range users {
		out = append(out, RankedProfile{
			Profile:   u.Profile(),
			Followers: len(s.follows.Followers(u.ID)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Followers != out[j].Followers {
			return out[i].Followers > out[j].Followers
		}
		return out[i].Profile.ID < out[j].Profile.ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
