package application

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/Bedlam343/socialgraph/internal/domain"
	"github.com/Bedlam343/socialgraph/internal/domain/entity"
)

// Follow creates the edge source -> target. Both users must exist and
// must differ; the existence checks and the insert form one critical
// section. Reports whether the edge was newly created — a repeat follow
// is a no-op, not an error.
func (s *Service) Follow(sourceID, targetID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users.GetByID(sourceID); !ok {
		return false, domain.NotFoundError{UserID: sourceID}
	}
	if _, ok := s.users.GetByID(targetID); !ok {
		return false, domain.NotFoundError{UserID: targetID}
	}
	added, err := s.follows.Add(sourceID, targetID)
	if err != nil {
		return false, err
	}
	if added && s.logger != nil {
		s.logger.WithFields(logrus.Fields{"source": sourceID, "target": targetID}).Debug("follow added")
	}
	return added, nil
}

// Unfollow removes the edge source -> target, reporting whether it
// existed. Unknown ids simply report false.
func (s *Service) Unfollow(sourceID, targetID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.follows.Remove(sourceID, targetID)
	if removed && s.logger != nil {
		s.logger.WithFields(logrus.Fields{"source": sourceID, "target": targetID}).Debug("follow removed")
	}
	return removed
}

// Followers returns the ids of every user following userID, sorted
// ascending.
func (s *Service) Followers(userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.users.GetByID(userID); !ok {
		return nil, domain.NotFoundError{UserID: userID}
	}
	ids := s.follows.Followers(userID)
	sort.Strings(ids)
	return ids, nil
}

// Following returns the ids of every user userID follows, sorted
// ascending.
func (s *Service) Following(userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.users.GetByID(userID); !ok {
		return nil, domain.NotFoundError{UserID: userID}
	}
	ids := s.follows.Following(userID)
	sort.Strings(ids)
	return ids, nil
}

func sortUsersByID(users []*entity.User) {
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
}
