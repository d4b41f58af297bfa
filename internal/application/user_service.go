// Package application coordinates every operation over the shared
// in-memory state. A single RWMutex guards the user table and the edge set
// together: each write runs its whole check-then-mutate sequence under the
// write lock, each read-only query under the read lock, so no caller ever
// observes an intermediate state. Critical sections are bounded and free
// of I/O.
package application

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Bedlam343/socialgraph/internal/domain"
	"github.com/Bedlam343/socialgraph/internal/domain/entity"
	repo "github.com/Bedlam343/socialgraph/internal/domain/repository"
	"github.com/Bedlam343/socialgraph/pkg/validation"
)

// Service owns the user directory and the follow graph.
type Service struct {
	mu      sync.RWMutex
	users   repo.UserRepository
	follows repo.FollowRepository
	logger  *logrus.Logger
	now     func() time.Time
}

func NewService(users repo.UserRepository, follows repo.FollowRepository, logger *logrus.Logger) *Service {
	return &Service{
		users:   users,
		follows: follows,
		logger:  logger,
		now:     time.Now,
	}
}

// WithClock overrides the clock used for CreatedAt stamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type SignUpInput struct {
	Name     string `validate:"required"`
	Username string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
	Bio      string
	Location string
}

// SignUp creates a new user. The uniqueness check and the insert run as
// one critical section, so two concurrent signups racing on the same
// username cannot both succeed.
func (s *Service) SignUp(in SignUpInput) (*entity.User, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := &entity.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Username:  in.Username,
		Email:     in.Email,
		Password:  in.Password,
		Bio:       in.Bio,
		Location:  in.Location,
		CreatedAt: s.now(),
	}
	if err := s.users.Insert(u); err != nil {
		if s.logger != nil {
			s.logger.WithError(err).WithField("username", in.Username).Warn("signup rejected")
		}
		return nil, err
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("user created")
	}
	return u, nil
}

// UpdateUsername rebinds the username, failing if the new one already
// belongs to a different user.
func (s *Service) UpdateUsername(userID, username string) error {
	if username == "" {
		return domain.ValidationError{Field: "username"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users.GetByID(userID)
	if !ok {
		return domain.NotFoundError{UserID: userID}
	}
	u.Username = username
	if err := s.users.Update(u); err != nil {
		if s.logger != nil {
			s.logger.WithError(err).WithField("user_id", userID).Warn("username change rejected")
		}
		return err
	}
	return nil
}

// UpdateName replaces the display name; it must not be empty.
func (s *Service) UpdateName(userID, name string) error {
	if name == "" {
		return domain.ValidationError{Field: "name"}
	}
	return s.replaceField(userID, func(u *entity.User) { u.Name = name })
}

// UpdatePassword replaces the password. The empty string is accepted;
// password strength is out of scope here.
func (s *Service) UpdatePassword(userID, password string) error {
	return s.replaceField(userID, func(u *entity.User) { u.Password = password })
}

// UpdateBio replaces the bio; the empty string clears it.
func (s *Service) UpdateBio(userID, bio string) error {
	return s.replaceField(userID, func(u *entity.User) { u.Bio = bio })
}

// UpdateLocation replaces the location; the empty string clears it.
func (s *Service) UpdateLocation(userID, location string) error {
	return s.replaceField(userID, func(u *entity.User) { u.Location = location })
}

func (s *Service) replaceField(userID string, set func(*entity.User)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users.GetByID(userID)
	if !ok {
		return domain.NotFoundError{UserID: userID}
	}
	set(u)
	return s.users.Update(u)
}

// Authenticate checks username and password. Every failure mode returns
// the same error so callers cannot probe which accounts exist.
//
// Comparison is against the stored plaintext, faithful to the behavior
// being modeled; see the User entity note.
func (s *Service) Authenticate(username, password string) (*entity.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users.GetByUsername(username)
	if !ok || u.Password != password {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}

// FindByUsername returns the user, or ok=false.
func (s *Service) FindByUsername(username string) (*entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.GetByUsername(username)
}

// GetProfile returns a copy of the record.
func (s *Service) GetProfile(userID string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users.GetByID(userID)
	if !ok {
		return nil, domain.NotFoundError{UserID: userID}
	}
	return u, nil
}

// Search returns every user whose name or username equals query.
// Matching is exact, not substring. Results are sorted by ascending id.
func (s *Service) Search(query string) []*entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.User
	for _, u := range s.users.All() {
		if u.Name == query || u.Username == query {
			out = append(out, u)
		}
	}
	sortUsersByID(out)
	return out
}
