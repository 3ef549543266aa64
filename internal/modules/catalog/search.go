package catalog

import "strings"

// MatchesQuery reports whether the product matches a free-text search query.
// Matching is a case-insensitive substring test against the name,
// description, category, and each material; there is no tokenization or
// ranking.
func MatchesQuery(p *Product, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q) {
		return true
	}
	for _, m := range p.Materials {
		if strings.Contains(strings.ToLower(m), q) {
			return true
		}
	}
	return false
}

// Search returns the products matching the query in catalog order.
func Search(products []*Product, query string) []*Product {
	var out []*Product
	for _, p := range products {
		if MatchesQuery(p, query) {
			out = append(out, p)
		}
	}
	return out
}
