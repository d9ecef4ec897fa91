package repos

import (
	"closetcircle/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ db *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{db: db} }

const userCols = `email, first_name, last_name, COALESCE(bio,'') AS bio`

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.Get(&u, `SELECT `+userCols+` FROM users WHERE email = ?`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ByEmails fetches several users in one round trip, keyed by email.
func (r *UserRepo) ByEmails(emails []string) (map[string]domain.User, error) {
	out := make(map[string]domain.User, len(emails))
	if len(emails) == 0 {
		return out, nil
	}
	query, args, err := sqlx.In(`SELECT `+userCols+` FROM users WHERE email IN (?)`, emails)
	if err != nil {
		return nil, err
	}
	var rows []domain.User
	if err := r.db.Select(&rows, query, args...); err != nil {
		return nil, err
	}
	for _, u := range rows {
		out[u.Email] = u
	}
	return out, nil
}

func (r *UserRepo) Create(u domain.User) error {
	_, err := r.db.Exec(`
	  INSERT INTO users(email, first_name, last_name, bio)
	  VALUES(?, ?, ?, ?)`, u.Email, u.FirstName, u.LastName, u.Bio)
	return err
}

// Follow inserts a directed edge; duplicates are rejected by the primary key
// and swallowed.
func (r *UserRepo) Follow(email, friendID string) error {
	_, err := r.db.Exec(`
	  INSERT INTO friends(email, friend_id) VALUES(?, ?)
	  ON CONFLICT(email, friend_id) DO NOTHING`, email, friendID)
	return err
}

// Unfollow removes the edge; idempotent.
func (r *UserRepo) Unfollow(email, friendID string) error {
	_, err := r.db.Exec(`DELETE FROM friends WHERE email = ? AND friend_id = ?`, email, friendID)
	return err
}

// Following lists the users that email follows.
func (r *UserRepo) Following(email string) ([]domain.User, error) {
	var out []domain.User
	err := r.db.Select(&out, `
	  SELECT u.email, u.first_name, u.last_name, COALESCE(u.bio,'') AS bio
	  FROM friends f
	  JOIN users u ON u.email = f.friend_id
	  WHERE f.email = ?
	  ORDER BY u.email`, email)
	return out, err
}

// Followers lists the users following email.
func (r *UserRepo) Followers(email string) ([]domain.User, error) {
	var out []domain.User
	err := r.db.Select(&out, `
	  SELECT u.email, u.first_name, u.last_name, COALESCE(u.bio,'') AS bio
	  FROM friends f
	  JOIN users u ON u.email = f.email
	  WHERE f.friend_id = ?
	  ORDER BY u.email`, email)
	return out, err
}
