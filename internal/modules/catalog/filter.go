package catalog

import (
	"math"
	"sort"
)

// SortKey selects the ordering of a filtered product view.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

// All is the wildcard value for category and material filters.
const All = "all"

// Criteria describes a filtered, sorted view over the catalog.
type Criteria struct {
	Category string
	Material string
	PriceMin float64
	PriceMax float64
	SortBy   SortKey
}

// DefaultCriteria is the shop page's starting filter state: the price slider
// opens at the $0-$200 range.
func DefaultCriteria() Criteria {
	return Criteria{Category: All, Material: All, PriceMin: 0, PriceMax: 200, SortBy: SortFeatured}
}

// Unfiltered matches every product with no price ceiling, for call sites
// that want the whole catalog.
func Unfiltered() Criteria {
	return Criteria{Category: All, Material: All, PriceMin: 0, PriceMax: math.MaxFloat64, SortBy: SortFeatured}
}

// Matches reports whether a product passes every filter in the criteria.
// Price bounds are inclusive.
func (c Criteria) Matches(p *Product) bool {
	if c.Category != All && p.Category != c.Category {
		return false
	}
	if c.Material != All && !containsString(p.Materials, c.Material) {
		return false
	}
	if p.Price < c.PriceMin || p.Price > c.PriceMax {
		return false
	}
	return true
}

// FilterAndSort returns the products matching the criteria in the requested
// order. The input slice is never mutated; ties keep their catalog order
// under every sort key.
func FilterAndSort(products []*Product, c Criteria) []*Product {
	out := make([]*Product, 0, len(products))
	for _, p := range products {
		if c.Matches(p) {
			out = append(out, p)
		}
	}

	switch c.SortBy {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortFeatured, SortNewest, "":
		// catalog order is the featured order; "newest" has no date to sort
		// by in the sample data, so it keeps catalog order too
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
