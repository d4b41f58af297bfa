package repository

// FollowRepository defines the interface for the directed follow relation.
// Edge endpoints are user ids; existence of the endpoints is enforced by
// the application layer, which also serializes all access.
type FollowRepository interface {
	// Add inserts the edge (source, target). It is idempotent: added
	// reports whether the edge was newly created. Returns
	// domain.ErrSelfFollow when source == target.
	Add(source, target string) (added bool, err error)

	// Remove deletes the edge (source, target), reporting whether it
	// existed.
	Remove(source, target string) bool

	// Followers returns every source that follows id.
	Followers(id string) []string

	// Following returns every target that id follows.
	Following(id string) []string

	// Len reports the total number of edges.
	Len() int
}
