package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortName      SortKey = "name"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

// ParseSortKey maps a raw sort value to a SortKey, defaulting to featured
// for empty or unknown values.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortName, SortPriceLow, SortPriceHigh, SortRating:
		return SortKey(s)
	default:
		return SortFeatured
	}
}

// Criteria describes one listing query. Empty clauses are vacuously true.
// MaxPrice of nil means no upper bound; MinPrice of nil means no lower bound.
type Criteria struct {
	Categories []string
	Sizes      []string
	Colors     []string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Query      string
	SortBy     SortKey
}

// Search returns the products matching every active clause of c, ordered by
// c.SortBy. All clauses AND-combine; within a clause the selected values
// OR-combine. The search query participates like any other clause rather
// than replacing the rest. The result is a fresh slice; the catalog is
// never mutated.
func (c *Catalog) Search(crit Criteria) []Product {
	var filtered []Product
	for _, p := range c.products {
		if matches(p, crit) {
			filtered = append(filtered, p)
		}
	}
	sortProducts(filtered, crit.SortBy)
	return filtered
}

func matches(p Product, crit Criteria) bool {
	if len(crit.Categories) > 0 && !containsFold(crit.Categories, string(p.Category)) {
		return false
	}
	if len(crit.Sizes) > 0 && !intersects(crit.Sizes, p.Sizes) {
		return false
	}
	if len(crit.Colors) > 0 && !intersects(crit.Colors, p.Colors) {
		return false
	}
	if crit.MinPrice != nil && p.Price.LessThan(*crit.MinPrice) {
		return false
	}
	if crit.MaxPrice != nil && p.Price.GreaterThan(*crit.MaxPrice) {
		return false
	}
	if q := strings.TrimSpace(crit.Query); q != "" && !matchesQuery(p, q) {
		return false
	}
	return true
}

func matchesQuery(p Product, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(string(p.Category)), q) ||
		strings.Contains(strings.ToLower(p.Subcategory), q)
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}

func intersects(selected, available []string) bool {
	for _, s := range selected {
		if containsFold(available, s) {
			return true
		}
	}
	return false
}

// sortProducts orders in place. Every key uses a stable sort so products
// with equal keys retain catalog order; the featured key is only a partial
// order (featured first, then new arrivals) and relies on that stability.
func sortProducts(products []Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case SortName:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			if products[i].Featured != products[j].Featured {
				return products[i].Featured
			}
			if products[i].NewArrival != products[j].NewArrival {
				return products[i].NewArrival
			}
			return false
		})
	}
}
