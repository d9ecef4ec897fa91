package repos

import (
	"closetcircle/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ListingRepo struct{ db *sqlx.DB }

func NewListingRepo(db *sqlx.DB) *ListingRepo { return &ListingRepo{db: db} }

const listingCols = `
  post_id, owner_id, title, COALESCE(description,'') AS description,
  item_condition, size, price, for_sale, for_rent, created_at`

func (r *ListingRepo) ListAll() ([]domain.Listing, error) {
	var out []domain.Listing
	err := r.db.Select(&out, `SELECT `+listingCols+` FROM posts ORDER BY post_id`)
	return out, err
}

func (r *ListingRepo) ListByOwner(owner string) ([]domain.Listing, error) {
	var out []domain.Listing
	err := r.db.Select(&out, `SELECT `+listingCols+` FROM posts WHERE owner_id = ? ORDER BY post_id`, owner)
	return out, err
}

func (r *ListingRepo) Get(id int64) (domain.Listing, error) {
	var l domain.Listing
	err := r.db.Get(&l, `SELECT `+listingCols+` FROM posts WHERE post_id = ?`, id)
	return l, err
}

// ListByIDs fetches specific listings in one round trip.
func (r *ListingRepo) ListByIDs(ids []int64) ([]domain.Listing, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`SELECT `+listingCols+` FROM posts WHERE post_id IN (?) ORDER BY post_id`, ids)
	if err != nil {
		return nil, err
	}
	var out []domain.Listing
	err = r.db.Select(&out, query, args...)
	return out, err
}

type imageRow struct {
	PostID   int64  `db:"post_id"`
	ImageURL string `db:"image_url"`
}

// ImagesByPost returns the ordered image lists for all given posts with a
// single IN query instead of one round trip per listing.
func (r *ListingRepo) ImagesByPost(ids []int64) (map[int64][]string, error) {
	out := make(map[int64][]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query, args, err := sqlx.In(`
	  SELECT post_id, image_url FROM post_images
	  WHERE post_id IN (?) ORDER BY post_id, position`, ids)
	if err != nil {
		return nil, err
	}
	var rows []imageRow
	if err := r.db.Select(&rows, query, args...); err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.PostID] = append(out[row.PostID], row.ImageURL)
	}
	return out, nil
}

type categoryRow struct {
	PostID     int64 `db:"post_id"`
	CategoryID int   `db:"category_id"`
}

// CategoriesByPost returns each post's category-code set, batched.
func (r *ListingRepo) CategoriesByPost(ids []int64) (map[int64][]int, error) {
	out := make(map[int64][]int, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query, args, err := sqlx.In(`
	  SELECT post_id, category_id FROM post_categories
	  WHERE post_id IN (?) ORDER BY post_id, category_id`, ids)
	if err != nil {
		return nil, err
	}
	var rows []categoryRow
	if err := r.db.Select(&rows, query, args...); err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.PostID] = append(out[row.PostID], row.CategoryID)
	}
	return out, nil
}

// NewListing is the creation payload: one post plus its images and codes,
// inserted atomically.
type NewListing struct {
	OwnerID     string
	Title       string
	Description string
	Condition   string
	Size        string
	Price       float64
	ForSale     bool
	ForRent     bool
	Images      []string
	Categories  []int
}

// Create inserts the post, its images and its category associations in one
// database transaction so a failure partway through leaves no orphans.
func (r *ListingRepo) Create(n NewListing) (int64, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
	  INSERT INTO posts(owner_id,title,description,item_condition,size,price,for_sale,for_rent)
	  VALUES(?,?,?,?,?,?,?,?)`,
		n.OwnerID, n.Title, n.Description, n.Condition, n.Size, n.Price, n.ForSale, n.ForRent)
	if err != nil {
		return 0, err
	}
	postID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for i, url := range n.Images {
		if _, err := tx.Exec(`INSERT INTO post_images(post_id,position,image_url) VALUES(?,?,?)`,
			postID, i, url); err != nil {
			return 0, err
		}
	}
	for _, code := range n.Categories {
		if _, err := tx.Exec(`INSERT INTO post_categories(post_id,category_id) VALUES(?,?)`,
			postID, code); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return postID, nil
}

// Delete removes a listing and cascades its images, categories, wishlist
// entries and likes.
func (r *ListingRepo) Delete(id int64) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{
		`DELETE FROM post_images WHERE post_id = ?`,
		`DELETE FROM post_categories WHERE post_id = ?`,
		`DELETE FROM wishlist WHERE post_id = ?`,
		`DELETE FROM post_likes WHERE post_id = ?`,
		`DELETE FROM posts WHERE post_id = ?`,
	} {
		if _, err := tx.Exec(stmt, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}
