package services

import (
	"fmt"

	"closetcircle/internal/domain"
	"closetcircle/internal/repos"
)

// CatalogService materializes denormalized listings: each post joined with its
// ordered images, category codes and owner display identity, plus derived
// availability. Related rows are fetched with one batched query per table.
type CatalogService struct {
	Listings *repos.ListingRepo
	Users    *repos.UserRepo
	Trans    *repos.TransactionRepo
}

func NewCatalogService(listings *repos.ListingRepo, users *repos.UserRepo, trans *repos.TransactionRepo) *CatalogService {
	return &CatalogService{Listings: listings, Users: users, Trans: trans}
}

func (s *CatalogService) ListAll() ([]domain.DenormalizedListing, error) {
	rows, err := s.Listings.ListAll()
	if err != nil {
		return nil, err
	}
	return s.assemble(rows)
}

func (s *CatalogService) ListByOwner(owner string) ([]domain.DenormalizedListing, error) {
	rows, err := s.Listings.ListByOwner(owner)
	if err != nil {
		return nil, err
	}
	return s.assemble(rows)
}

// ListByIDs assembles a specific id set, preserving the given order.
func (s *CatalogService) ListByIDs(ids []int64) ([]domain.DenormalizedListing, error) {
	rows, err := s.Listings.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	assembled, err := s.assemble(rows)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]domain.DenormalizedListing, len(assembled))
	for _, dl := range assembled {
		byID[dl.ID] = dl
	}
	out := make([]domain.DenormalizedListing, 0, len(ids))
	for _, id := range ids {
		if dl, ok := byID[id]; ok {
			out = append(out, dl)
		}
	}
	return out, nil
}

// assemble attaches images, categories, lister identity and availability to
// raw listing rows. Any related-row failure aborts the whole batch.
func (s *CatalogService) assemble(rows []domain.Listing) ([]domain.DenormalizedListing, error) {
	ids := make([]int64, len(rows))
	for i, l := range rows {
		ids[i] = l.ID
	}

	images, err := s.Listings.ImagesByPost(ids)
	if err != nil {
		return nil, fmt.Errorf("fetch images: %w", err)
	}
	categories, err := s.Listings.CategoriesByPost(ids)
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}

	ownerSet := make(map[string]bool, len(rows))
	owners := make([]string, 0, len(rows))
	for _, l := range rows {
		if !ownerSet[l.OwnerID] {
			ownerSet[l.OwnerID] = true
			owners = append(owners, l.OwnerID)
		}
	}
	users, err := s.Users.ByEmails(owners)
	if err != nil {
		return nil, fmt.Errorf("fetch owners: %w", err)
	}

	purchased, err := s.Trans.PurchasedListingIDs()
	if err != nil {
		return nil, fmt.Errorf("fetch purchased set: %w", err)
	}

	out := make([]domain.DenormalizedListing, len(rows))
	for i, l := range rows {
		dl := domain.DenormalizedListing{
			Listing:    l,
			Images:     images[l.ID],
			Categories: categories[l.ID],
			Lister:     listerFor(users, l.OwnerID),
			Available:  isAvailable(l, purchased),
		}
		if dl.Images == nil {
			dl.Images = []string{}
		}
		if dl.Categories == nil {
			dl.Categories = []int{}
		}
		out[i] = dl
	}
	return out, nil
}

// listerFor builds the display identity block, falling back to the placeholder
// when no user row exists for the owner.
func listerFor(users map[string]domain.User, ownerID string) domain.Lister {
	u, ok := users[ownerID]
	if !ok {
		return domain.Lister{Display: "Unknown", Username: "unknown-user"}
	}
	display := u.FirstName
	if u.LastName != "" {
		display = fmt.Sprintf("%s %c.", u.FirstName, u.LastName[0])
	}
	return domain.Lister{Display: display, Username: ownerID}
}

// isAvailable: a listing consumed by a completed transaction, or offered
// neither for sale nor for rent, cannot enter a new cart.
func isAvailable(l domain.Listing, purchased map[int64]bool) bool {
	if purchased[l.ID] {
		return false
	}
	return l.ForSale || l.ForRent
}

// UnavailableOrders flattens every purchased transaction into its listing
// details with purchase dates; the caller's view of globally consumed stock.
func (s *CatalogService) UnavailableOrders() ([]domain.OrderItem, error) {
	txs, err := s.Trans.AllPurchased()
	if err != nil {
		return nil, err
	}
	return s.flattenOrders(txs, "")
}

// PurchaseHistory flattens the user's own purchased transactions.
func (s *CatalogService) PurchaseHistory(email string) ([]domain.OrderItem, error) {
	txs, err := s.Trans.PurchasedByUser(email)
	if err != nil {
		return nil, err
	}
	return s.flattenOrders(txs, "")
}

// SellerHistory flattens all purchased transactions down to the items owned by
// seller.
func (s *CatalogService) SellerHistory(seller string) ([]domain.OrderItem, error) {
	txs, err := s.Trans.AllPurchased()
	if err != nil {
		return nil, err
	}
	return s.flattenOrders(txs, seller)
}

func (s *CatalogService) flattenOrders(txs []domain.Transaction, ownerFilter string) ([]domain.OrderItem, error) {
	txIDs := make([]int64, len(txs))
	for i, t := range txs {
		txIDs[i] = t.ID
	}
	itemsByTx, err := s.Trans.ItemsByTransaction(txIDs)
	if err != nil {
		return nil, err
	}

	postSet := make(map[int64]bool)
	var postIDs []int64
	for _, ids := range itemsByTx {
		for _, id := range ids {
			if !postSet[id] {
				postSet[id] = true
				postIDs = append(postIDs, id)
			}
		}
	}
	listings, err := s.Listings.ListByIDs(postIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]domain.Listing, len(listings))
	for _, l := range listings {
		byID[l.ID] = l
	}
	images, err := s.Listings.ImagesByPost(postIDs)
	if err != nil {
		return nil, err
	}

	out := []domain.OrderItem{}
	for _, t := range txs {
		date := ""
		if t.PurchasedAt != nil {
			date = *t.PurchasedAt
		}
		for _, id := range itemsByTx[t.ID] {
			l, ok := byID[id]
			if !ok {
				continue // listing deleted since purchase
			}
			if ownerFilter != "" && l.OwnerID != ownerFilter {
				continue
			}
			imgs := images[id]
			if imgs == nil {
				imgs = []string{}
			}
			out = append(out, domain.OrderItem{
				PostID:        id,
				Title:         l.Title,
				Price:         l.Price,
				ForSale:       l.ForSale,
				ForRent:       l.ForRent,
				Images:        imgs,
				PurchasedDate: date,
			})
		}
	}
	return out, nil
}
