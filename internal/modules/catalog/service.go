package catalog

import "context"

// Service defines catalog business logic.
type Service interface {
	GetProduct(ctx context.Context, id string) (*Product, error)

	// ListProducts returns the filtered, sorted product view for the shop
	// pages.
	ListProducts(ctx context.Context, c Criteria) ([]*Product, error)

	// Search resolves a free-text query. An empty query yields the
	// category-browsing view instead of a results list.
	Search(ctx context.Context, query string) (*SearchResult, error)

	// ArtisanProfile returns an artisan's products. An artisan with no
	// products yields an empty profile, not an error; the caller renders a
	// placeholder.
	ArtisanProfile(ctx context.Context, artisanID string) (*ArtisanProfile, error)

	// Categories and Materials list the distinct filter options, in order of
	// first appearance in the catalog.
	Categories(ctx context.Context) ([]string, error)
	Materials(ctx context.Context) ([]string, error)
}

// SearchResult is either a list of matches or, for an empty query, the
// products grouped by category for browsing.
type SearchResult struct {
	Query      string                `json:"query"`
	Results    []*Product            `json:"results,omitempty"`
	Categories map[string][]*Product `json:"categories,omitempty"`
}

// ArtisanProfile is the artisan page payload.
type ArtisanProfile struct {
	Artisan  *Artisan   `json:"artisan,omitempty"`
	Products []*Product `json:"products"`
	Found    bool       `json:"found"`
}

type service struct{ repo Repository }

// NewService creates a new catalog service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context, c Criteria) ([]*Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterAndSort(products, c), nil
}

func (s *service) Search(ctx context.Context, query string) (*SearchResult, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		grouped := make(map[string][]*Product)
		for _, p := range products {
			grouped[p.Category] = append(grouped[p.Category], p)
		}
		return &SearchResult{Query: query, Categories: grouped}, nil
	}
	return &SearchResult{Query: query, Results: Search(products, query)}, nil
}

func (s *service) ArtisanProfile(ctx context.Context, artisanID string) (*ArtisanProfile, error) {
	products, err := s.repo.ListByArtisan(ctx, artisanID)
	if err != nil {
		return nil, err
	}
	profile := &ArtisanProfile{Products: products}
	if len(products) > 0 {
		profile.Artisan = &products[0].Artisan
		profile.Found = true
	}
	return profile, nil
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []string
	seen := make(map[string]bool)
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func (s *service) Materials(ctx context.Context) ([]string, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []string
	seen := make(map[string]bool)
	for _, p := range products {
		for _, m := range p.Materials {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out, nil
}
