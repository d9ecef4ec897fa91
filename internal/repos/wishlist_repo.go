package repos

import (
	"github.com/jmoiron/sqlx"
)

type WishlistRepo struct{ db *sqlx.DB }

func NewWishlistRepo(db *sqlx.DB) *WishlistRepo { return &WishlistRepo{db: db} }

func (r *WishlistRepo) Add(email string, postID int64) error {
	_, err := r.db.Exec(`
	  INSERT INTO wishlist(email, post_id) VALUES(?, ?)
	  ON CONFLICT(email, post_id) DO NOTHING`, email, postID)
	return err
}

func (r *WishlistRepo) Remove(email string, postID int64) error {
	_, err := r.db.Exec(`DELETE FROM wishlist WHERE email = ? AND post_id = ?`, email, postID)
	return err
}

func (r *WishlistRepo) PostIDs(email string) ([]int64, error) {
	var out []int64
	err := r.db.Select(&out, `SELECT post_id FROM wishlist WHERE email = ? ORDER BY post_id`, email)
	return out, err
}

func (r *WishlistRepo) Like(email string, postID int64) error {
	_, err := r.db.Exec(`
	  INSERT INTO post_likes(email, post_id) VALUES(?, ?)
	  ON CONFLICT(email, post_id) DO NOTHING`, email, postID)
	return err
}

func (r *WishlistRepo) Unlike(email string, postID int64) error {
	_, err := r.db.Exec(`DELETE FROM post_likes WHERE email = ? AND post_id = ?`, email, postID)
	return err
}

// TrendingIDs ranks listings by like count, descending, ties in storage order.
func (r *WishlistRepo) TrendingIDs(limit int) ([]int64, error) {
	if limit <= 0 {
		limit = 8
	}
	var out []int64
	err := r.db.Select(&out, `
	  SELECT p.post_id
	  FROM posts p
	  LEFT JOIN post_likes l ON l.post_id = p.post_id
	  GROUP BY p.post_id
	  ORDER BY COUNT(l.post_id) DESC, p.post_id
	  LIMIT ?`, limit)
	return out, err
}
