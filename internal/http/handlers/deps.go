package handlers

import (
	"github.com/jmoiron/sqlx"

	"closetcircle/internal/assistant"
	"closetcircle/internal/config"
	"closetcircle/internal/repos"
	"closetcircle/internal/services"
	"closetcircle/internal/validate"
)

type Deps struct {
	CatalogHandler   *CatalogHandler
	ProfileHandler   *ProfileHandler
	CartHandler      *CartHandler
	WishlistHandler  *WishlistHandler
	ListingHandler   *ListingHandler
	HistoryHandler   *HistoryHandler
	AssistantHandler *AssistantHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	listingRepo := repos.NewListingRepo(db)
	userRepo := repos.NewUserRepo(db)
	transRepo := repos.NewTransactionRepo(db)
	wishRepo := repos.NewWishlistRepo(db)

	catalogSvc := services.NewCatalogService(listingRepo, userRepo, transRepo)
	cartSvc := services.NewCartService(transRepo, catalogSvc)
	profileSvc := services.NewProfileService(userRepo)
	wishSvc := services.NewWishlistService(wishRepo, catalogSvc)

	valid := validate.New()

	return &Deps{
		CatalogHandler:   &CatalogHandler{Catalog: catalogSvc, Wish: wishSvc},
		ProfileHandler:   &ProfileHandler{Profiles: profileSvc, Catalog: catalogSvc, Valid: valid},
		CartHandler:      &CartHandler{Cart: cartSvc},
		WishlistHandler:  &WishlistHandler{Wish: wishSvc},
		ListingHandler:   &ListingHandler{Listings: listingRepo, Valid: valid},
		HistoryHandler:   &HistoryHandler{Catalog: catalogSvc},
		AssistantHandler: &AssistantHandler{Client: assistant.New(cfg.AssistantURL)},
	}
}
