package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestSearch_NoCriteriaReturnsWholeCatalog(t *testing.T) {
	c := Default()

	result := c.Search(Criteria{})
	assert.Len(t, result, c.Len())
}

func TestSearch_CategoryFilter(t *testing.T) {
	c := Default()

	result := c.Search(Criteria{Categories: []string{"women"}})
	require.NotEmpty(t, result)
	for _, p := range result {
		assert.Equal(t, CategoryWomen, p.Category)
	}
}

func TestSearch_SizeFilterMatchesAnySelectedSize(t *testing.T) {
	c := Default()

	result := c.Search(Criteria{Sizes: []string{"XS"}})
	require.NotEmpty(t, result)
	for _, p := range result {
		assert.Contains(t, p.Sizes, "XS")
	}
}

func TestSearch_ColorFilter(t *testing.T) {
	c := Default()

	result := c.Search(Criteria{Colors: []string{"White"}})
	require.NotEmpty(t, result)
	for _, p := range result {
		assert.Contains(t, p.Colors, "White")
	}
}

func TestSearch_PriceRangeInclusive(t *testing.T) {
	c := Default()

	min, max := dec("94.99"), dec("129.99")
	result := c.Search(Criteria{MinPrice: min, MaxPrice: max})
	require.NotEmpty(t, result)
	for _, p := range result {
		assert.True(t, p.Price.GreaterThanOrEqual(*min), "%s priced %s below min", p.Name, p.Price)
		assert.True(t, p.Price.LessThanOrEqual(*max), "%s priced %s above max", p.Name, p.Price)
	}

	// Boundary values are included.
	found := false
	for _, p := range result {
		if p.Price.Equal(*min) {
			found = true
		}
	}
	assert.True(t, found, "product priced exactly at min should match")
}

func TestSearch_QueryMatchesNameDescriptionCategorySubcategory(t *testing.T) {
	c := Default()

	byName := c.Search(Criteria{Query: "snake"})
	require.Len(t, byName, 1)
	assert.Equal(t, "Snake Tee", byName[0].Name)

	byDescription := c.Search(Criteria{Query: "red dragon"})
	require.Len(t, byDescription, 1)
	assert.Equal(t, "Dragon Fire Tee", byDescription[0].Name)

	bySubcategory := c.Search(Criteria{Query: "t-shirts"})
	assert.Len(t, bySubcategory, c.Len())
}

func TestSearch_QueryCombinesWithOtherClauses(t *testing.T) {
	c := Default()

	// "mystic" matches a men's and a women's tee; the category clause must
	// still apply alongside the query.
	result := c.Search(Criteria{Query: "mystic", Categories: []string{"women"}})
	require.Len(t, result, 1)
	assert.Equal(t, "15", result[0].ID)

	// A price clause the match fails must exclude it even with a query hit.
	result = c.Search(Criteria{Query: "mystic", MaxPrice: dec("50")})
	assert.Empty(t, result)
}

func TestSearch_ResultIsSubsetSatisfyingAllClauses(t *testing.T) {
	c := Default()

	crit := Criteria{
		Categories: []string{"men"},
		Sizes:      []string{"XXL"},
		Colors:     []string{"Black", "White"},
		MinPrice:   dec("90"),
		MaxPrice:   dec("600"),
		Query:      "cotton",
	}
	result := c.Search(crit)
	require.NotEmpty(t, result)
	for _, p := range result {
		assert.Equal(t, CategoryMen, p.Category)
		assert.Contains(t, p.Sizes, "XXL")
		assert.True(t, containsFold(p.Colors, "Black") || containsFold(p.Colors, "White"))
		assert.True(t, p.Price.GreaterThanOrEqual(*crit.MinPrice))
		assert.True(t, p.Price.LessThanOrEqual(*crit.MaxPrice))
	}
	assert.LessOrEqual(t, len(result), c.Len())
}

func TestSearch_SortPriceLowAndHighAreReverses(t *testing.T) {
	c := Default()

	// A slice of the catalog with no price ties, so the orders are exact
	// reverses.
	crit := Criteria{Categories: []string{"men"}, MinPrice: dec("99.00"), MaxPrice: dec("130.00")}

	low := c.Search(Criteria{Categories: crit.Categories, MinPrice: crit.MinPrice, MaxPrice: crit.MaxPrice, SortBy: SortPriceLow})
	high := c.Search(Criteria{Categories: crit.Categories, MinPrice: crit.MinPrice, MaxPrice: crit.MaxPrice, SortBy: SortPriceHigh})
	require.Equal(t, len(low), len(high))

	for i := range low {
		assert.Equal(t, low[i].ID, high[len(high)-1-i].ID)
	}
	for i := 1; i < len(low); i++ {
		assert.True(t, low[i-1].Price.LessThanOrEqual(low[i].Price))
	}
}

func TestSearch_SortName(t *testing.T) {
	c := Default()

	result := c.Search(Criteria{SortBy: SortName})
	for i := 1; i < len(result); i++ {
		assert.LessOrEqual(t, result[i-1].Name, result[i].Name)
	}
}

func TestSearch_SortRatingDescending(t *testing.T) {
	c := Default()

	result := c.Search(Criteria{SortBy: SortRating})
	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i-1].Rating, result[i].Rating)
	}
}

func TestSearch_SortStableForEqualKeys(t *testing.T) {
	products := []Product{
		{ID: "a", Name: "Same", Price: decimal.RequireFromString("10"), Rating: 4},
		{ID: "b", Name: "Same", Price: decimal.RequireFromString("10"), Rating: 4},
		{ID: "c", Name: "Same", Price: decimal.RequireFromString("10"), Rating: 4},
	}
	c := New(products)

	for _, key := range []SortKey{SortFeatured, SortName, SortPriceLow, SortPriceHigh, SortRating} {
		result := c.Search(Criteria{SortBy: key})
		require.Len(t, result, 3)
		assert.Equal(t, "a", result[0].ID, "sort %s must keep catalog order for ties", key)
		assert.Equal(t, "b", result[1].ID)
		assert.Equal(t, "c", result[2].ID)
	}
}

func TestSearch_SortFeaturedPartialOrder(t *testing.T) {
	products := []Product{
		{ID: "plain"},
		{ID: "arrival", NewArrival: true},
		{ID: "feat", Featured: true},
		{ID: "feat2", Featured: true, NewArrival: true},
	}
	c := New(products)

	result := c.Search(Criteria{SortBy: SortFeatured})
	require.Len(t, result, 4)
	assert.Equal(t, "feat2", result[0].ID)
	assert.Equal(t, "feat", result[1].ID)
	assert.Equal(t, "arrival", result[2].ID)
	assert.Equal(t, "plain", result[3].ID)
}

func TestSearch_DoesNotMutateCatalog(t *testing.T) {
	c := Default()
	before := c.All()

	c.Search(Criteria{SortBy: SortPriceHigh})
	c.Search(Criteria{SortBy: SortName})

	after := c.All()
	require.Equal(t, len(before), len(after))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
	}
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortFeatured, ParseSortKey(""))
	assert.Equal(t, SortFeatured, ParseSortKey("bogus"))
	assert.Equal(t, SortPriceLow, ParseSortKey("price-low"))
	assert.Equal(t, SortRating, ParseSortKey("rating"))
}
