package repos

import (
	"closetcircle/internal/domain"

	"github.com/jmoiron/sqlx"
)

type TransactionRepo struct{ db *sqlx.DB }

func NewTransactionRepo(db *sqlx.DB) *TransactionRepo { return &TransactionRepo{db: db} }

// PendingID returns the user's pending transaction id, or sql.ErrNoRows when
// the user has no cart yet.
func (r *TransactionRepo) PendingID(email string) (int64, error) {
	var id int64
	err := r.db.Get(&id, `
	  SELECT transaction_id FROM transactions
	  WHERE email = ? AND status = 'pending'
	  ORDER BY transaction_id LIMIT 1`, email)
	return id, err
}

// Create opens a fresh pending transaction for the user.
func (r *TransactionRepo) Create(email string) (int64, error) {
	res, err := r.db.Exec(`INSERT INTO transactions(email, status) VALUES(?, 'pending')`, email)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// AddItem associates a listing with a transaction. Re-adding the same listing
// is a no-op; ownership and availability are not checked here.
func (r *TransactionRepo) AddItem(txID, postID int64) error {
	_, err := r.db.Exec(`
	  INSERT INTO transaction_listings(transaction_id, post_id)
	  VALUES(?, ?)
	  ON CONFLICT(transaction_id, post_id) DO NOTHING`, txID, postID)
	return err
}

// RemoveItem deletes the association; removing a non-present one succeeds.
func (r *TransactionRepo) RemoveItem(txID, postID int64) error {
	_, err := r.db.Exec(`DELETE FROM transaction_listings WHERE transaction_id = ? AND post_id = ?`, txID, postID)
	return err
}

func (r *TransactionRepo) ItemIDs(txID int64) ([]int64, error) {
	var out []int64
	err := r.db.Select(&out, `
	  SELECT post_id FROM transaction_listings
	  WHERE transaction_id = ? ORDER BY post_id`, txID)
	return out, err
}

// Checkout transitions a pending transaction to purchased and stamps the
// purchase time. The condition on status makes a second call a no-op that
// leaves the original timestamp untouched.
func (r *TransactionRepo) Checkout(txID int64) error {
	_, err := r.db.Exec(`
	  UPDATE transactions
	  SET status = 'purchased', purchased_at = CURRENT_TIMESTAMP
	  WHERE transaction_id = ? AND status = 'pending'`, txID)
	return err
}

func (r *TransactionRepo) Get(txID int64) (domain.Transaction, error) {
	var t domain.Transaction
	err := r.db.Get(&t, `
	  SELECT transaction_id, email, status, purchased_at
	  FROM transactions WHERE transaction_id = ?`, txID)
	return t, err
}

// PurchasedByUser lists the user's completed transactions, oldest first.
func (r *TransactionRepo) PurchasedByUser(email string) ([]domain.Transaction, error) {
	var out []domain.Transaction
	err := r.db.Select(&out, `
	  SELECT transaction_id, email, status, purchased_at
	  FROM transactions
	  WHERE email = ? AND status = 'purchased'
	  ORDER BY transaction_id`, email)
	return out, err
}

// AllPurchased lists every completed transaction; feeds the unavailable set
// and seller history.
func (r *TransactionRepo) AllPurchased() ([]domain.Transaction, error) {
	var out []domain.Transaction
	err := r.db.Select(&out, `
	  SELECT transaction_id, email, status, purchased_at
	  FROM transactions
	  WHERE status = 'purchased'
	  ORDER BY transaction_id`)
	return out, err
}

// PurchasedListingIDs is the set of listings consumed by any completed
// transaction, in one query.
func (r *TransactionRepo) PurchasedListingIDs() (map[int64]bool, error) {
	var ids []int64
	err := r.db.Select(&ids, `
	  SELECT DISTINCT tl.post_id
	  FROM transaction_listings tl
	  JOIN transactions t ON t.transaction_id = tl.transaction_id
	  WHERE t.status = 'purchased'`)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

type txListingRow struct {
	TransactionID int64 `db:"transaction_id"`
	PostID        int64 `db:"post_id"`
}

// ItemsByTransaction returns each transaction's listing ids, batched.
func (r *TransactionRepo) ItemsByTransaction(txIDs []int64) (map[int64][]int64, error) {
	out := make(map[int64][]int64, len(txIDs))
	if len(txIDs) == 0 {
		return out, nil
	}
	query, args, err := sqlx.In(`
	  SELECT transaction_id, post_id FROM transaction_listings
	  WHERE transaction_id IN (?) ORDER BY transaction_id, post_id`, txIDs)
	if err != nil {
		return nil, err
	}
	var rows []txListingRow
	if err := r.db.Select(&rows, query, args...); err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.TransactionID] = append(out[row.TransactionID], row.PostID)
	}
	return out, nil
}
