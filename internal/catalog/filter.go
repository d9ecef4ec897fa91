package catalog

import (
	"regexp"
	"sort"
	"strconv"

	"closetcircle/internal/domain"
)

// Price bounds used when the corresponding filter input is blank.
const (
	DefaultPriceFloor   = 0
	DefaultPriceCeiling = 80
)

// DefaultPageSize matches the explore grid.
const DefaultPageSize = 9

// Product is the in-memory view the filter engine operates on: one listing
// with its codes already resolved to display labels.
type Product struct {
	ID        int64
	Price     float64
	Types     []string
	Audiences []string
	Colors    []string
	Sizes     []string
	Condition string
	ForSale   bool
	ForRent   bool
}

// ProductOf resolves a denormalized listing's category codes and condition tag
// into a filterable view.
func ProductOf(dl domain.DenormalizedListing) Product {
	return Product{
		ID:        dl.ID,
		Price:     dl.Price,
		Types:     Types.Labels(dl.Categories),
		Audiences: Audience.Labels(dl.Categories),
		Colors:    Colors.Labels(dl.Categories),
		Sizes:     []string{dl.Size},
		Condition: ConditionLabel(dl.Condition),
		ForSale:   dl.ForSale,
		ForRent:   dl.ForRent,
	}
}

// Filters is one set of facet selections. Empty groups pass vacuously; within
// a group any match suffices, across groups every active group must match.
type Filters struct {
	Types      []string
	Audiences  []string
	Colors     []string
	Sizes      []string
	Conditions []string
	ForRent    bool // "For Rent" box
	ForSale    bool // "For Sale" box
	PriceMin   float64
	PriceMax   float64
}

// NewFilters returns an empty selection with the default price range.
func NewFilters() Filters {
	return Filters{PriceMin: DefaultPriceFloor, PriceMax: DefaultPriceCeiling}
}

var reDigits = regexp.MustCompile(`^\d*$`)

// PriceBound parses one price input. Only digit strings are accepted; a blank
// input falls back to def. ok is false for non-numeric input, which callers
// reject at the edit site.
func PriceBound(s string, def float64) (v float64, ok bool) {
	if !reDigits.MatchString(s) {
		return 0, false
	}
	if s == "" {
		return def, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return float64(n), true
}

func intersects(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

// Match reports whether p passes every active facet group.
func (f Filters) Match(p Product) bool {
	if len(f.Types) > 0 && !intersects(p.Types, f.Types) {
		return false
	}
	if len(f.Audiences) > 0 && !intersects(p.Audiences, f.Audiences) {
		return false
	}
	if f.ForRent || f.ForSale {
		rentMatch := f.ForRent && p.ForRent
		saleMatch := f.ForSale && p.ForSale
		if !rentMatch && !saleMatch {
			return false
		}
	}
	if len(f.Conditions) > 0 && !intersects([]string{p.Condition}, f.Conditions) {
		return false
	}
	if len(f.Sizes) > 0 && !intersects(p.Sizes, f.Sizes) {
		return false
	}
	if len(f.Colors) > 0 && !intersects(p.Colors, f.Colors) {
		return false
	}
	if p.Price < f.PriceMin || p.Price > f.PriceMax {
		return false
	}
	return true
}

// Sort keys supported by the explore view.
type Sort string

const (
	SortPopular   Sort = "Most Popular"       // recency proxy: descending id
	SortPriceAsc  Sort = "Price: Low to High" //
	SortPriceDesc Sort = "Price: High to Low" //
)

// Page is one page of filtered, sorted results.
type Page struct {
	Items      []Product
	TotalPages int
}

// Apply filters, sorts and pages products. It is pure: the input slice is not
// mutated and ties keep input order (stable sort). The page argument is taken
// as-is; callers clamp it into [1, TotalPages].
func Apply(products []Product, f Filters, s Sort, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			filtered = append(filtered, p)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		switch s {
		case SortPriceAsc:
			return filtered[i].Price < filtered[j].Price
		case SortPriceDesc:
			return filtered[i].Price > filtered[j].Price
		default:
			return filtered[i].ID > filtered[j].ID
		}
	})

	total := (len(filtered) + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	if start < 0 || start >= len(filtered) {
		return Page{Items: []Product{}, TotalPages: total}
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return Page{Items: filtered[start:end], TotalPages: total}
}

// State is the browsing state behind an explore view: current selections, sort
// key and page. Any change to a filter or to the sort key resets the page to 1.
type State struct {
	Filters  Filters
	Sort     Sort
	PageNum  int
	PageSize int
}

// NewState starts at page 1 with default filters and "Most Popular".
func NewState() *State {
	return &State{Filters: NewFilters(), Sort: SortPopular, PageNum: 1, PageSize: DefaultPageSize}
}

// SetFilters replaces the active selections and resets the page.
func (s *State) SetFilters(f Filters) {
	s.Filters = f
	s.PageNum = 1
}

// SetSort replaces the sort key and resets the page.
func (s *State) SetSort(k Sort) {
	s.Sort = k
	s.PageNum = 1
}

// SetPage moves to page n, floored at 1; upper clamping happens against the
// result in Results.
func (s *State) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	s.PageNum = n
}

// Results applies the current state to products, clamping the page into range.
func (s *State) Results(products []Product) Page {
	pg := Apply(products, s.Filters, s.Sort, s.PageNum, s.PageSize)
	if pg.TotalPages > 0 && s.PageNum > pg.TotalPages {
		s.PageNum = pg.TotalPages
		pg = Apply(products, s.Filters, s.Sort, s.PageNum, s.PageSize)
	}
	return pg
}
