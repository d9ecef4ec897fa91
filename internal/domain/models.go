package domain

// Condition tags stored on a listing row.
const (
	ConditionNew       = "new"
	ConditionExcellent = "excellent"
	ConditionGood      = "good"
	ConditionWorn      = "worn"
)

// Transaction statuses. A pending transaction is the user's cart; purchased is terminal.
const (
	TxPending   = "pending"
	TxPurchased = "purchased"
)

type Listing struct {
	ID          int64   `db:"post_id" json:"post_id"`
	OwnerID     string  `db:"owner_id" json:"owner_id"`
	Title       string  `db:"title" json:"title"`
	Description string  `db:"description" json:"description,omitempty"`
	Condition   string  `db:"item_condition" json:"item_condition"` // new | excellent | good | worn
	Size        string  `db:"size" json:"size"`
	Price       float64 `db:"price" json:"price"`
	ForSale     bool    `db:"for_sale" json:"for_sale"`
	ForRent     bool    `db:"for_rent" json:"for_rent"`
	CreatedAt   string  `db:"created_at" json:"created_at"`
}

// Lister is the display identity block attached to every denormalized listing.
// Display is "First L." or "Unknown" when no user row exists for the owner.
type Lister struct {
	Display   string  `json:"display"`
	Username  string  `json:"username"`
	AvatarURL *string `json:"avatarUrl"`
}

// DenormalizedListing is a listing joined with its ordered images, category
// codes and owner identity, plus the derived availability flag.
type DenormalizedListing struct {
	Listing
	Images     []string `json:"images"`
	Categories []int    `json:"categories"`
	Lister     Lister   `json:"lister"`
	Available  bool     `json:"available"`
}

type User struct {
	Email     string `db:"email" json:"email"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	Bio       string `db:"bio" json:"bio,omitempty"`
}

type Transaction struct {
	ID          int64   `db:"transaction_id" json:"transaction_id"`
	Email       string  `db:"email" json:"email"`
	Status      string  `db:"status" json:"status"`
	PurchasedAt *string `db:"purchased_at" json:"purchased_at,omitempty"`
}

// OrderItem is one listing inside a completed transaction, as shown in
// purchase and seller history.
type OrderItem struct {
	PostID        int64    `json:"post_id"`
	Title         string   `json:"title"`
	Price         float64  `json:"price"`
	ForSale       bool     `json:"for_sale"`
	ForRent       bool     `json:"for_rent"`
	Images        []string `json:"images"`
	PurchasedDate string   `json:"purchased_date"`
}
