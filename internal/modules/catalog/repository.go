package catalog

import "context"

// Repository defines the interface for catalog data access.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Product, error)
	// List returns every product in catalog order.
	List(ctx context.Context) ([]*Product, error)
	ListByArtisan(ctx context.Context, artisanID string) ([]*Product, error)
}
