// Package wishlist holds a session's saved product ids.
package wishlist

// Wishlist is a set of product ids with no ordering guarantee.
type Wishlist struct {
	ids map[string]struct{}
}

// New creates an empty wishlist.
func New() *Wishlist {
	return &Wishlist{ids: make(map[string]struct{})}
}

// Toggle flips the membership of a product id and reports whether the
// product is now on the wishlist. Toggling twice restores the original
// membership.
func (w *Wishlist) Toggle(productID string) (added bool) {
	if _, ok := w.ids[productID]; ok {
		delete(w.ids, productID)
		return false
	}
	w.ids[productID] = struct{}{}
	return true
}

// Has reports whether the product is on the wishlist.
func (w *Wishlist) Has(productID string) bool {
	_, ok := w.ids[productID]
	return ok
}

// IDs returns the wishlist members in no particular order.
func (w *Wishlist) IDs() []string {
	out := make([]string, 0, len(w.ids))
	for id := range w.ids {
		out = append(out, id)
	}
	return out
}

// Len is the number of wishlisted products.
func (w *Wishlist) Len() int { return len(w.ids) }
