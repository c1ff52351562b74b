package catalog

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortName      SortKey = "name"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

// Query selects and orders a view of the catalog. Zero value matches the
// whole catalog sorted by name.
type Query struct {
	Search     string
	CategoryID string // empty or "all" matches every category
	MinPrice   *float64
	MaxPrice   *float64
	Sort       SortKey
}

// Apply filters the snapshot and returns a freshly ordered copy. The input
// slice is left untouched; ties keep the underlying order (stable sort).
func Apply(products []Product, q Query) []Product {
	term := strings.ToLower(strings.TrimSpace(q.Search))

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if !matchesSearch(p, term) {
			continue
		}
		if !matchesCategory(p, q.CategoryID) {
			continue
		}
		if q.MinPrice != nil && p.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && p.Price > *q.MaxPrice {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, q.Sort)
	return filtered
}

func matchesSearch(p Product, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term)
}

func matchesCategory(p Product, categoryID string) bool {
	if categoryID == "" || categoryID == "all" {
		return true
	}
	return p.CategoryID == categoryID
}

func sortProducts(products []Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default:
		// name ascending is the default, unknown keys included
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	}
}
