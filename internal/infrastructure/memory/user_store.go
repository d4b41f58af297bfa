// Package memory provides the in-memory storage backing the social graph.
// The stores hold no locks of their own: the application layer guards the
// user table and the edge set together behind a single RWMutex so that
// cross-store invariants hold at all times.
package memory

import (
	"github.com/Bedlam343/socialgraph/internal/domain"
	"github.com/Bedlam343/socialgraph/internal/domain/entity"
	"github.com/Bedlam343/socialgraph/internal/domain/repository"
)

// UserStore keeps user records indexed by id, username and email.
// Usernames and emails are unique; the indexes are rebound atomically with
// the record they point at. Not safe for concurrent use on its own.
type UserStore struct {
	byID       map[string]*entity.User
	byUsername map[string]string // username -> id
	byEmail    map[string]string // email -> id
}

// NewUserStore creates an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{
		byID:       make(map[string]*entity.User),
		byUsername: make(map[string]string),
		byEmail:    make(map[string]string),
	}
}

// Insert stores a new record. The uniqueness indexes are checked before
// anything is written, so a conflict leaves the store untouched.
func (s *UserStore) Insert(u *entity.User) error {
	if _, taken := s.byUsername[u.Username]; taken {
		return domain.ConflictError{Field: "username", Value: u.Username}
	}
	if _, taken := s.byEmail[u.Email]; taken {
		return domain.ConflictError{Field: "email", Value: u.Email}
	}
	rec := u.Clone()
	s.byID[rec.ID] = rec
	s.byUsername[rec.Username] = rec.ID
	s.byEmail[rec.Email] = rec.ID
	return nil
}

// GetByID returns a copy of the record, or ok=false.
func (s *UserStore) GetByID(id string) (*entity.User, bool) {
	rec, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return rec.Clone(), true
}

// GetByUsername returns a copy of the record, or ok=false.
func (s *UserStore) GetByUsername(username string) (*entity.User, bool) {
	id, ok := s.byUsername[username]
	if !ok {
		return nil, false
	}
	return s.byID[id].Clone(), true
}

// GetByEmail returns a copy of the record, or ok=false.
func (s *UserStore) GetByEmail(email string) (*entity.User, bool) {
	id, ok := s.byEmail[email]
	if !ok {
		return nil, false
	}
	return s.byID[id].Clone(), true
}

// Update replaces the record keyed by u.ID. A username change rebinds the
// username index in the same step; the email index never changes because
// emails are immutable after signup.
func (s *UserStore) Update(u *entity.User) error {
	prev, ok := s.byID[u.ID]
	if !ok {
		return domain.NotFoundError{UserID: u.ID}
	}
	if u.Username != prev.Username {
		if otherID, taken := s.byUsername[u.Username]; taken && otherID != u.ID {
			return domain.ConflictError{Field: "username", Value: u.Username}
		}
		delete(s.byUsername, prev.Username)
		s.byUsername[u.Username] = u.ID
	}
	rec := u.Clone()
	rec.Email = prev.Email
	rec.CreatedAt = prev.CreatedAt
	s.byID[u.ID] = rec
	return nil
}

// All returns copies of every record, in map order.
func (s *UserStore) All() []*entity.User {
	out := make([]*entity.User, 0, len(s.byID))
	for _, rec := range s.byID {
		out = append(out, rec.Clone())
	}
	return out
}

// Len reports the number of stored users.
func (s *UserStore) Len() int {
	return len(s.byID)
}

var _ repository.UserRepository = (*UserStore)(nil)
