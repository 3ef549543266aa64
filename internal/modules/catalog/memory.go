package catalog

import (
	"context"
	"fmt"
)

// memoryRepository serves the catalog from an in-memory slice. The demo
// storefront has no persistence; any replacement data source only has to
// satisfy Repository with products conforming to the Product shape.
type memoryRepository struct {
	products []*Product
	byID     map[string]*Product
}

// NewMemoryRepository creates a repository over the given products,
// preserving their order as the canonical catalog order.
func NewMemoryRepository(products []*Product) Repository {
	byID := make(map[string]*Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &memoryRepository{products: products, byID: byID}
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("product not found: %s", id)
	}
	return p, nil
}

func (r *memoryRepository) List(ctx context.Context) ([]*Product, error) {
	out := make([]*Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *memoryRepository) ListByArtisan(ctx context.Context, artisanID string) ([]*Product, error) {
	var out []*Product
	for _, p := range r.products {
		if p.Artisan.ID == artisanID {
			out = append(out, p)
		}
	}
	return out, nil
}
