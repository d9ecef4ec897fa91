package handlers

import "github.com/gofiber/fiber/v2"

// Register wires the REST surface under /api/v1. Reads are public; mutating
// routes require a verified session.
func Register(app *fiber.App, deps *Deps) {
	api := app.Group("/api/v1")

	// Catalog
	api.Get("/catalog", deps.CatalogHandler.List)
	api.Get("/catalog/trending", deps.CatalogHandler.Trending)
	api.Get("/catalog/search", deps.CatalogHandler.Search)

	// Account & follow graph
	api.Get("/account/profile", deps.ProfileHandler.Profile)
	api.Post("/account/new", RequireIdentity(), deps.ProfileHandler.New)
	api.Get("/account/closet", deps.ProfileHandler.Closet)
	api.Get("/account/followers", deps.ProfileHandler.Followers)
	api.Get("/account/following", deps.ProfileHandler.Following)
	api.Post("/account/follow", RequireIdentity(), deps.ProfileHandler.Follow)
	api.Delete("/account/follow", RequireIdentity(), deps.ProfileHandler.Unfollow)

	// Cart
	api.Get("/cart", RequireIdentity(), deps.CartHandler.View)
	api.Get("/cart/id", RequireIdentity(), deps.CartHandler.ID)
	api.Put("/cart/items", RequireIdentity(), deps.CartHandler.AddItem)
	api.Delete("/cart/items", RequireIdentity(), deps.CartHandler.RemoveItem)
	api.Put("/cart/checkout", RequireIdentity(), deps.CartHandler.Checkout)

	// Wishlist & likes
	api.Get("/wishlist", deps.WishlistHandler.List)
	api.Post("/wishlist", RequireIdentity(), deps.WishlistHandler.Save)
	api.Delete("/wishlist", RequireIdentity(), deps.WishlistHandler.Unsave)
	api.Post("/listings/like", RequireIdentity(), deps.WishlistHandler.Like)
	api.Delete("/listings/like", RequireIdentity(), deps.WishlistHandler.Unlike)

	// Listings
	api.Post("/listings", RequireIdentity(), deps.ListingHandler.Create)
	api.Post("/listings/delete", RequireIdentity(), deps.ListingHandler.Delete)

	// History
	api.Get("/history/purchased", RequireIdentity(), deps.HistoryHandler.Purchased)
	api.Get("/history/sold", RequireIdentity(), deps.HistoryHandler.Sold)

	// Assistant relay
	api.Post("/assistant", deps.AssistantHandler.Relay)
}
