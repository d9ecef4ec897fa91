package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"closetcircle/internal/domain"
	"closetcircle/internal/repos"
	"closetcircle/internal/services"
)

func TestListAllAssemblesRelatedRows(t *testing.T) {
	db := memdb(t)
	catalogSvc, _ := newServices(db)

	listings, err := catalogSvc.ListAll()
	require.NoError(t, err)
	require.Len(t, listings, 4)

	byID := map[int64]domain.DenormalizedListing{}
	for _, dl := range listings {
		byID[dl.ID] = dl
	}

	peacoat := byID[1]
	assert.Equal(t, []string{"/media/1/a.jpg", "/media/1/b.jpg"}, peacoat.Images)
	assert.Equal(t, []int{1, 6, 13}, peacoat.Categories)
	assert.Equal(t, "Ava N.", peacoat.Lister.Display)
	assert.Equal(t, "ava@test.io", peacoat.Lister.Username)
}

func TestListerFallsBackToUnknown(t *testing.T) {
	db := memdb(t)
	_, err := db.Exec(`
	  INSERT INTO posts(post_id,owner_id,title,item_condition,size,price,for_sale,for_rent)
	  VALUES (9,'ghost@test.io','Mystery Jacket','good','Medium',10,1,0);
	  INSERT INTO post_images(post_id,position,image_url) VALUES (9,0,'/media/9/a.jpg');
	`)
	require.NoError(t, err)

	catalogSvc, _ := newServices(db)
	listings, err := catalogSvc.ListByIDs([]int64{9})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Unknown", listings[0].Lister.Display)
	assert.Equal(t, "unknown-user", listings[0].Lister.Username)
}

func TestAvailabilityFromFlags(t *testing.T) {
	db := memdb(t)
	catalogSvc, _ := newServices(db)

	// post 4 has for_sale=0 and for_rent=0: unavailable regardless of history
	listings, err := catalogSvc.ListByIDs([]int64{4})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.False(t, listings[0].Available)
}

func TestAvailabilityFromPurchasedTransaction(t *testing.T) {
	db := memdb(t)
	catalogSvc, cartSvc := newServices(db)

	// post 1 keeps its flags but gets consumed by a purchase
	txID, err := cartSvc.GetOrCreatePending("ben@test.io")
	require.NoError(t, err)
	require.NoError(t, cartSvc.AddItem(txID, 1))
	require.NoError(t, cartSvc.Checkout(txID))

	listings, err := catalogSvc.ListByIDs([]int64{1, 3})
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.False(t, listings[0].Available, "purchased listing must be unavailable")
	assert.True(t, listings[1].Available)

	// a listing still sitting in a pending cart stays available
	pending, err := cartSvc.GetOrCreatePending("ava@test.io")
	require.NoError(t, err)
	require.NoError(t, cartSvc.AddItem(pending, 3))
	listings, err = catalogSvc.ListByIDs([]int64{3})
	require.NoError(t, err)
	assert.True(t, listings[0].Available)
}

func TestPurchaseAndSellerHistory(t *testing.T) {
	db := memdb(t)
	catalogSvc, cartSvc := newServices(db)

	// ben buys ava's peacoat and his own-listed boots in one order
	txID, err := cartSvc.GetOrCreatePending("ben@test.io")
	require.NoError(t, err)
	require.NoError(t, cartSvc.AddItem(txID, 1))
	require.NoError(t, cartSvc.AddItem(txID, 3))
	require.NoError(t, cartSvc.Checkout(txID))

	orders, err := catalogSvc.PurchaseHistory("ben@test.io")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.NotEmpty(t, o.PurchasedDate)
		assert.NotEmpty(t, o.Images)
	}

	// ava sold only the peacoat
	sold, err := catalogSvc.SellerHistory("ava@test.io")
	require.NoError(t, err)
	require.Len(t, sold, 1)
	assert.Equal(t, int64(1), sold[0].PostID)
	assert.Equal(t, "Wool Peacoat", sold[0].Title)

	// nothing purchased by ava herself
	none, err := catalogSvc.PurchaseHistory("ava@test.io")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUnavailableOrdersSpanUsers(t *testing.T) {
	db := memdb(t)
	catalogSvc, cartSvc := newServices(db)

	for user, post := range map[string]int64{"ava@test.io": 3, "ben@test.io": 1} {
		txID, err := cartSvc.GetOrCreatePending(user)
		require.NoError(t, err)
		require.NoError(t, cartSvc.AddItem(txID, post))
		require.NoError(t, cartSvc.Checkout(txID))
	}

	orders, err := catalogSvc.UnavailableOrders()
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestTrendingRanksByLikes(t *testing.T) {
	db := memdb(t)
	_, err := db.Exec(`
	  INSERT INTO post_likes(email,post_id) VALUES
	    ('ava@test.io',3),('ben@test.io',3),('ava@test.io',2);
	`)
	require.NoError(t, err)

	listingRepo := repos.NewListingRepo(db)
	userRepo := repos.NewUserRepo(db)
	transRepo := repos.NewTransactionRepo(db)
	wishRepo := repos.NewWishlistRepo(db)
	catalogSvc := services.NewCatalogService(listingRepo, userRepo, transRepo)
	wishSvc := services.NewWishlistService(wishRepo, catalogSvc)

	trending, err := wishSvc.Trending()
	require.NoError(t, err)
	require.Len(t, trending, 4)
	assert.Equal(t, int64(3), trending[0].ID)
	assert.Equal(t, int64(2), trending[1].ID)
	// zero-like listings follow in storage order
	assert.Equal(t, int64(1), trending[2].ID)
	assert.Equal(t, int64(4), trending[3].ID)
}

func TestWishlistRoundTrip(t *testing.T) {
	db := memdb(t)
	listingRepo := repos.NewListingRepo(db)
	userRepo := repos.NewUserRepo(db)
	transRepo := repos.NewTransactionRepo(db)
	wishRepo := repos.NewWishlistRepo(db)
	catalogSvc := services.NewCatalogService(listingRepo, userRepo, transRepo)
	wishSvc := services.NewWishlistService(wishRepo, catalogSvc)

	require.NoError(t, wishSvc.Save("ava@test.io", 3))
	require.NoError(t, wishSvc.Save("ava@test.io", 3)) // duplicate is a no-op

	items, err := wishSvc.List("ava@test.io")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Leather Boots", items[0].Title)

	require.NoError(t, wishSvc.Unsave("ava@test.io", 3))
	items, err = wishSvc.List("ava@test.io")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListingCreateAndDeleteCascade(t *testing.T) {
	db := memdb(t)
	listingRepo := repos.NewListingRepo(db)

	id, err := listingRepo.Create(repos.NewListing{
		OwnerID:    "ava@test.io",
		Title:      "Denim Jacket",
		Condition:  "good",
		Size:       "Large",
		Price:      28,
		ForSale:    true,
		Images:     []string{"/media/x/a.jpg", "/media/x/b.jpg"},
		Categories: []int{1, 6, 13},
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	images, err := listingRepo.ImagesByPost([]int64{id})
	require.NoError(t, err)
	assert.Equal(t, []string{"/media/x/a.jpg", "/media/x/b.jpg"}, images[id])

	cats, err := listingRepo.CategoriesByPost([]int64{id})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 6, 13}, cats[id])

	require.NoError(t, listingRepo.Delete(id))

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM post_images WHERE post_id=?`, id))
	assert.Zero(t, n)
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM post_categories WHERE post_id=?`, id))
	assert.Zero(t, n)
}
