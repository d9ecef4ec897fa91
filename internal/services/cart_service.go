package services

import (
	"database/sql"
	"errors"
	"math"

	"closetcircle/internal/domain"
	"closetcircle/internal/repos"
)

// Order summary constants. Rentals are excluded from the subtotal and shown
// separately with a request-to-rent label.
const (
	TaxRate         = 0.093
	ShippingFlat    = 5.99
	FreeShippingMin = 30.0
)

// CartService drives the pending-to-purchased transaction state machine.
type CartService struct {
	Trans   *repos.TransactionRepo
	Catalog *CatalogService
}

func NewCartService(trans *repos.TransactionRepo, catalog *CatalogService) *CartService {
	return &CartService{Trans: trans, Catalog: catalog}
}

// PendingID reports the user's cart id; ok is false when the user has never
// added an item (no pending transaction).
func (s *CartService) PendingID(email string) (int64, bool, error) {
	id, err := s.Trans.PendingID(email)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// GetOrCreatePending resolves the user's cart, opening a fresh pending
// transaction on first use.
func (s *CartService) GetOrCreatePending(email string) (int64, error) {
	id, ok, err := s.PendingID(email)
	if err != nil {
		return 0, err
	}
	if ok {
		return id, nil
	}
	return s.Trans.Create(email)
}

// AddItem associates a listing with the transaction. Availability is the
// caller's concern; the same listing may sit in another user's pending cart.
func (s *CartService) AddItem(txID, postID int64) error {
	return s.Trans.AddItem(txID, postID)
}

// RemoveItem is idempotent.
func (s *CartService) RemoveItem(txID, postID int64) error {
	return s.Trans.RemoveItem(txID, postID)
}

// Checkout transitions pending to purchased. A second call on the same id is
// a successful no-op and the original purchase timestamp stays put.
func (s *CartService) Checkout(txID int64) error {
	return s.Trans.Checkout(txID)
}

// CartView is the assembled cart: the transaction id, the denormalized items
// and the computed order summary.
type CartView struct {
	TransactionID int64                        `json:"transactionId"`
	Items         []domain.DenormalizedListing `json:"items"`
	Totals        Totals                       `json:"totals"`
}

// View loads the user's cart contents. A user without a pending transaction
// gets an empty view with TransactionID 0.
func (s *CartService) View(email string) (CartView, error) {
	id, ok, err := s.PendingID(email)
	if err != nil {
		return CartView{}, err
	}
	if !ok {
		return CartView{Items: []domain.DenormalizedListing{}}, nil
	}

	postIDs, err := s.Trans.ItemIDs(id)
	if err != nil {
		return CartView{}, err
	}
	items, err := s.Catalog.ListByIDs(postIDs)
	if err != nil {
		return CartView{}, err
	}
	return CartView{TransactionID: id, Items: items, Totals: ComputeTotals(items)}, nil
}

type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	Shipping   float64 `json:"shipping"`
	GrandTotal float64 `json:"grandTotal"`
}

// ComputeTotals derives the order summary from the current association set.
// Only sale-type items count toward the subtotal; shipping is waived at the
// free-shipping threshold. Never persisted.
func ComputeTotals(items []domain.DenormalizedListing) Totals {
	subtotal := 0.0
	for _, it := range items {
		if it.ForSale {
			subtotal += it.Price
		}
	}
	tax := round2(subtotal * TaxRate)
	shipping := ShippingFlat
	if subtotal >= FreeShippingMin {
		shipping = 0
	}
	return Totals{
		Subtotal:   round2(subtotal),
		Tax:        tax,
		Shipping:   shipping,
		GrandTotal: round2(subtotal + tax + shipping),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
