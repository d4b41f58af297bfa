package memory

import (
	"github.com/Bedlam343/socialgraph/internal/domain"
	"github.com/Bedlam343/socialgraph/internal/domain/repository"
)

// FollowGraph keeps the directed follow relation as a pair of adjacency
// maps updated in lockstep, so followers and following are both O(degree)
// lookups. Edges are a set: inserting twice is a no-op. Not safe for
// concurrent use on its own.
type FollowGraph struct {
	out   map[string]map[string]struct{} // source -> targets
	in    map[string]map[string]struct{} // target -> sources
	edges int
}

// NewFollowGraph creates an empty edge set.
func NewFollowGraph() *FollowGraph {
	return &FollowGraph{
		out: make(map[string]map[string]struct{}),
		in:  make(map[string]map[string]struct{}),
	}
}

// Add inserts the edge (source, target). Self-edges are rejected
// unconditionally. Reports whether the edge was newly created.
func (g *FollowGraph) Add(source, target string) (bool, error) {
	if source == target {
		return false, domain.ErrSelfFollow
	}
	if _, exists := g.out[source][target]; exists {
		return false, nil
	}
	if g.out[source] == nil {
		g.out[source] = make(map[string]struct{})
	}
	if g.in[target] == nil {
		g.in[target] = make(map[string]struct{})
	}
	g.out[source][target] = struct{}{}
	g.in[target][source] = struct{}{}
	g.edges++
	return true, nil
}

// Remove deletes the edge (source, target), reporting whether it existed.
func (g *FollowGraph) Remove(source, target string) bool {
	if _, exists := g.out[source][target]; !exists {
		return false
	}
	delete(g.out[source], target)
	delete(g.in[target], source)
	g.edges--
	return true
}

// Followers returns every source that follows id.
func (g *FollowGraph) Followers(id string) []string {
	return keys(g.in[id])
}

// Following returns every target that id follows.
func (g *FollowGraph) Following(id string) []string {
	return keys(g.out[id])
}

// Len reports the total number of edges.
func (g *FollowGraph) Len() int {
	return g.edges
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

var _ repository.FollowRepository = (*FollowGraph)(nil)
