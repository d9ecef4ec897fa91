package services

import (
	"closetcircle/internal/domain"
	"closetcircle/internal/repos"
)

const trendingLimit = 8

// WishlistService covers favorites and the like-driven trending ranking.
type WishlistService struct {
	Wish    *repos.WishlistRepo
	Catalog *CatalogService
}

func NewWishlistService(wish *repos.WishlistRepo, catalog *CatalogService) *WishlistService {
	return &WishlistService{Wish: wish, Catalog: catalog}
}

func (s *WishlistService) Save(email string, postID int64) error {
	return s.Wish.Add(email, postID)
}

func (s *WishlistService) Unsave(email string, postID int64) error {
	return s.Wish.Remove(email, postID)
}

func (s *WishlistService) List(email string) ([]domain.DenormalizedListing, error) {
	ids, err := s.Wish.PostIDs(email)
	if err != nil {
		return nil, err
	}
	out, err := s.Catalog.ListByIDs(ids)
	if out == nil {
		out = []domain.DenormalizedListing{}
	}
	return out, err
}

func (s *WishlistService) Like(email string, postID int64) error {
	return s.Wish.Like(email, postID)
}

func (s *WishlistService) Unlike(email string, postID int64) error {
	return s.Wish.Unlike(email, postID)
}

// Trending returns the top listings by like count, assembled for display.
func (s *WishlistService) Trending() ([]domain.DenormalizedListing, error) {
	ids, err := s.Wish.TrendingIDs(trendingLimit)
	if err != nil {
		return nil, err
	}
	out, err := s.Catalog.ListByIDs(ids)
	if out == nil {
		out = []domain.DenormalizedListing{}
	}
	return out, err
}
