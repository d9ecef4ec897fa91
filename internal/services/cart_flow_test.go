package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"closetcircle/internal/domain"
	"closetcircle/internal/repos"
	"closetcircle/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, repos.EnsureSchema(db))
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
	INSERT INTO users(email,first_name,last_name,bio) VALUES
	  ('ava@test.io','Ava','Nguyen',''),
	  ('ben@test.io','Ben','Ortiz','');
	INSERT INTO posts(post_id,owner_id,title,item_condition,size,price,for_sale,for_rent) VALUES
	  (1,'ava@test.io','Wool Peacoat','excellent','Medium',20,1,0),
	  (2,'ava@test.io','Floral Sundress','good','Small',15,0,1),
	  (3,'ben@test.io','Leather Boots','worn','Large',35,1,0),
	  (4,'ben@test.io','Silk Scarf','new','',12,0,0);
	INSERT INTO post_images(post_id,position,image_url) VALUES
	  (1,0,'/media/1/a.jpg'),(1,1,'/media/1/b.jpg'),
	  (2,0,'/media/2/a.jpg'),
	  (3,0,'/media/3/a.jpg'),
	  (4,0,'/media/4/a.jpg');
	INSERT INTO post_categories(post_id,category_id) VALUES
	  (1,1),(1,6),(1,13),
	  (2,1),(2,7),(2,15),
	  (3,2),(3,8),(3,10),
	  (4,1),(4,9),(4,12);
	`)
	require.NoError(t, err)
	return db
}

func newServices(db *sqlx.DB) (*services.CatalogService, *services.CartService) {
	listingRepo := repos.NewListingRepo(db)
	userRepo := repos.NewUserRepo(db)
	transRepo := repos.NewTransactionRepo(db)
	catalogSvc := services.NewCatalogService(listingRepo, userRepo, transRepo)
	return catalogSvc, services.NewCartService(transRepo, catalogSvc)
}

func TestCartFlow_AddRemoveCheckout(t *testing.T) {
	db := memdb(t)
	_, cartSvc := newServices(db)

	// no pending transaction yet
	_, found, err := cartSvc.PendingID("ava@test.io")
	require.NoError(t, err)
	assert.False(t, found)

	txID, err := cartSvc.GetOrCreatePending("ava@test.io")
	require.NoError(t, err)
	require.NotZero(t, txID)

	// second call resolves the same cart
	again, err := cartSvc.GetOrCreatePending("ava@test.io")
	require.NoError(t, err)
	assert.Equal(t, txID, again)

	require.NoError(t, cartSvc.AddItem(txID, 1))
	require.NoError(t, cartSvc.AddItem(txID, 2))

	cv, err := cartSvc.View("ava@test.io")
	require.NoError(t, err)
	assert.Equal(t, txID, cv.TransactionID)
	require.Len(t, cv.Items, 2)

	// remove is idempotent
	require.NoError(t, cartSvc.RemoveItem(txID, 2))
	require.NoError(t, cartSvc.RemoveItem(txID, 2))
	cv, err = cartSvc.View("ava@test.io")
	require.NoError(t, err)
	assert.Len(t, cv.Items, 1)

	require.NoError(t, cartSvc.Checkout(txID))

	trans := repos.NewTransactionRepo(db)
	tx, err := trans.Get(txID)
	require.NoError(t, err)
	assert.Equal(t, domain.TxPurchased, tx.Status)
	require.NotNil(t, tx.PurchasedAt)

	// after checkout the user has no pending cart again
	_, found, err = cartSvc.PendingID("ava@test.io")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCheckoutTwiceKeepsTimestamp(t *testing.T) {
	db := memdb(t)
	_, cartSvc := newServices(db)

	txID, err := cartSvc.GetOrCreatePending("ben@test.io")
	require.NoError(t, err)
	require.NoError(t, cartSvc.AddItem(txID, 1))
	require.NoError(t, cartSvc.Checkout(txID))

	trans := repos.NewTransactionRepo(db)
	first, err := trans.Get(txID)
	require.NoError(t, err)
	require.NotNil(t, first.PurchasedAt)

	// pin a distinguishable timestamp, then checkout again
	_, err = db.Exec(`UPDATE transactions SET purchased_at='2024-01-01 00:00:00' WHERE transaction_id=?`, txID)
	require.NoError(t, err)

	require.NoError(t, cartSvc.Checkout(txID))

	second, err := trans.Get(txID)
	require.NoError(t, err)
	require.NotNil(t, second.PurchasedAt)
	assert.Equal(t, "2024-01-01 00:00:00", *second.PurchasedAt)
	assert.Equal(t, domain.TxPurchased, second.Status)
}

func TestAddItemTwiceIsNoOp(t *testing.T) {
	db := memdb(t)
	_, cartSvc := newServices(db)

	txID, err := cartSvc.GetOrCreatePending("ava@test.io")
	require.NoError(t, err)
	require.NoError(t, cartSvc.AddItem(txID, 3))
	require.NoError(t, cartSvc.AddItem(txID, 3))

	cv, err := cartSvc.View("ava@test.io")
	require.NoError(t, err)
	assert.Len(t, cv.Items, 1)
}

func TestComputeTotals(t *testing.T) {
	items := []domain.DenormalizedListing{
		{Listing: domain.Listing{Price: 20, ForSale: true}},
		{Listing: domain.Listing{Price: 15, ForRent: true}},
	}
	totals := services.ComputeTotals(items)
	assert.InDelta(t, 20.0, totals.Subtotal, 0.001)
	assert.InDelta(t, 1.86, totals.Tax, 0.001)
	assert.InDelta(t, 5.99, totals.Shipping, 0.001)
	assert.InDelta(t, 27.85, totals.GrandTotal, 0.001)
}

func TestComputeTotalsFreeShipping(t *testing.T) {
	items := []domain.DenormalizedListing{
		{Listing: domain.Listing{Price: 30, ForSale: true}},
	}
	totals := services.ComputeTotals(items)
	assert.InDelta(t, 0.0, totals.Shipping, 0.001)
	assert.InDelta(t, 30+2.79, totals.GrandTotal, 0.001)
}
