package services

import (
	"database/sql"
	"errors"

	"closetcircle/internal/domain"
	"closetcircle/internal/repos"
)

// ProfileService covers user rows and the directed follow graph.
type ProfileService struct {
	Users *repos.UserRepo
}

func NewProfileService(users *repos.UserRepo) *ProfileService {
	return &ProfileService{Users: users}
}

// Get returns nil (not an error) when no profile row exists; callers report
// that as an empty result.
func (s *ProfileService) Get(email string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *ProfileService) Create(u domain.User) error {
	return s.Users.Create(u)
}

func (s *ProfileService) Follow(email, friendID string) error {
	return s.Users.Follow(email, friendID)
}

func (s *ProfileService) Unfollow(email, friendID string) error {
	return s.Users.Unfollow(email, friendID)
}

func (s *ProfileService) Following(email string) ([]domain.User, error) {
	out, err := s.Users.Following(email)
	if out == nil {
		out = []domain.User{}
	}
	return out, err
}

func (s *ProfileService) Followers(email string) ([]domain.User, error) {
	out, err := s.Users.Followers(email)
	if out == nil {
		out = []domain.User{}
	}
	return out, err
}
