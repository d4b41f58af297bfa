package repository

import "github.com/Bedlam343/socialgraph/internal/domain/entity"

// UserRepository defines the interface for user record storage.
//
// Implementations are not required to be safe for concurrent use; the
// application layer serializes all access behind a single lock.
type UserRepository interface {
	// Insert stores a new record, indexing it by id, username and email.
	// Returns domain.ConflictError if the username or email is taken.
	Insert(u *entity.User) error

	// GetByID returns a copy of the record, or ok=false.
	GetByID(id string) (*entity.User, bool)

	// GetByUsername returns a copy of the record, or ok=false.
	GetByUsername(username string) (*entity.User, bool)

	// GetByEmail returns a copy of the record, or ok=false.
	GetByEmail(email string) (*entity.User, bool)

	// Update replaces the record keyed by u.ID, rebinding the username
	// index if it changed. Returns domain.NotFoundError for an unknown id
	// and domain.ConflictError if the new username belongs to another user.
	Update(u *entity.User) error

	// All returns copies of every record, in no particular order.
	All() []*entity.User

	// Len reports the number of stored users.
	Len() int
}
