package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []Product {
	return []Product{
		{ID: 1, Price: 48, Types: []string{"Outerwear"}, Audiences: []string{"Women's"}, Colors: []string{"Blue"}, Sizes: []string{"Medium"}, Condition: "Used – Like New", ForSale: true},
		{ID: 2, Price: 22, Types: []string{"Dresses"}, Audiences: []string{"Women's"}, Colors: []string{"Pink"}, Sizes: []string{"Small"}, Condition: "Used – Good", ForSale: true, ForRent: true},
		{ID: 3, Price: 35, Types: []string{"Shoes"}, Audiences: []string{"Men's"}, Colors: []string{"Black"}, Sizes: []string{"Large"}, Condition: "Used – Fair", ForSale: true},
		{ID: 4, Price: 12, Types: []string{"Accessories"}, Audiences: []string{"Women's"}, Colors: []string{"Red"}, Sizes: []string{""}, Condition: "Brand New", ForRent: true},
	}
}

func TestApplyResultIsFilteredSubset(t *testing.T) {
	products := sampleProducts()
	f := NewFilters()
	f.Audiences = []string{"Women's"}
	f.ForSale = true

	pg := Apply(products, f, SortPopular, 1, DefaultPageSize)
	require.Len(t, pg.Items, 2)
	for _, p := range pg.Items {
		assert.True(t, f.Match(p))
	}
	// descending id is the recency proxy
	assert.Equal(t, int64(2), pg.Items[0].ID)
	assert.Equal(t, int64(1), pg.Items[1].ID)
}

func TestVacuousGroupsPassEverything(t *testing.T) {
	products := sampleProducts()
	pg := Apply(products, NewFilters(), SortPopular, 1, DefaultPageSize)
	assert.Len(t, pg.Items, len(products))
}

func TestRentSaleGroup(t *testing.T) {
	products := sampleProducts()

	f := NewFilters()
	f.ForRent = true
	pg := Apply(products, f, SortPopular, 1, DefaultPageSize)
	require.Len(t, pg.Items, 2)
	for _, p := range pg.Items {
		assert.True(t, p.ForRent)
	}

	// both boxes: sale OR rent
	f.ForSale = true
	pg = Apply(products, f, SortPopular, 1, DefaultPageSize)
	assert.Len(t, pg.Items, 4)
}

func TestPriceRangeInclusive(t *testing.T) {
	products := sampleProducts()
	f := NewFilters()
	f.PriceMin, f.PriceMax = 22, 35

	pg := Apply(products, f, SortPriceAsc, 1, DefaultPageSize)
	require.Len(t, pg.Items, 2)
	assert.Equal(t, 22.0, pg.Items[0].Price)
	assert.Equal(t, 35.0, pg.Items[1].Price)
}

func TestSortReversal(t *testing.T) {
	products := sampleProducts()
	asc := Apply(products, NewFilters(), SortPriceAsc, 1, DefaultPageSize)
	desc := Apply(products, NewFilters(), SortPriceDesc, 1, DefaultPageSize)

	require.Equal(t, len(asc.Items), len(desc.Items))
	n := len(asc.Items)
	for i := range asc.Items {
		assert.Equal(t, asc.Items[i].ID, desc.Items[n-1-i].ID)
	}
}

func TestStableSortKeepsInputOrderOnTies(t *testing.T) {
	products := []Product{
		{ID: 7, Price: 10, Sizes: []string{""}},
		{ID: 3, Price: 10, Sizes: []string{""}},
		{ID: 9, Price: 10, Sizes: []string{""}},
	}
	pg := Apply(products, NewFilters(), SortPriceAsc, 1, DefaultPageSize)
	require.Len(t, pg.Items, 3)
	assert.Equal(t, []int64{7, 3, 9}, []int64{pg.Items[0].ID, pg.Items[1].ID, pg.Items[2].ID})
}

func TestPaginationTotals(t *testing.T) {
	var products []Product
	for i := 1; i <= 20; i++ {
		products = append(products, Product{ID: int64(i), Price: 10, Sizes: []string{""}})
	}

	pg := Apply(products, NewFilters(), SortPopular, 1, 9)
	assert.Equal(t, 3, pg.TotalPages)
	assert.Len(t, pg.Items, 9)

	pg = Apply(products, NewFilters(), SortPopular, 3, 9)
	assert.Len(t, pg.Items, 2)

	// out-of-range page yields no items; callers clamp
	pg = Apply(products, NewFilters(), SortPopular, 4, 9)
	assert.Empty(t, pg.Items)
	assert.Equal(t, 3, pg.TotalPages)
}

func TestFilterChangeResetsPage(t *testing.T) {
	var products []Product
	for i := 1; i <= 30; i++ {
		p := Product{ID: int64(i), Price: 10, Sizes: []string{""}, ForSale: i%2 == 0}
		products = append(products, p)
	}

	st := NewState()
	st.SetPage(3)
	pg := st.Results(products)
	require.Equal(t, 4, pg.TotalPages)
	require.Equal(t, 3, st.PageNum)

	f := st.Filters
	f.ForSale = true
	st.SetFilters(f)
	assert.Equal(t, 1, st.PageNum)

	pg = st.Results(products)
	require.NotEmpty(t, pg.Items)
	assert.Equal(t, int64(30), pg.Items[0].ID)

	st.SetPage(2)
	st.SetSort(SortPriceAsc)
	assert.Equal(t, 1, st.PageNum)
}

func TestPriceBound(t *testing.T) {
	v, ok := PriceBound("", 80)
	require.True(t, ok)
	assert.Equal(t, 80.0, v)

	v, ok = PriceBound("25", 0)
	require.True(t, ok)
	assert.Equal(t, 25.0, v)

	_, ok = PriceBound("2a", 0)
	assert.False(t, ok)
	_, ok = PriceBound("-5", 0)
	assert.False(t, ok)
	_, ok = PriceBound("1.50", 0)
	assert.False(t, ok)
}
