package catalog

// Artisan identifies the maker of a product.
type Artisan struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Product is a single handcrafted item in the catalog. Products are loaded
// once at startup and never mutated afterwards.
type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Image        string   `json:"image"`
	Images       []string `json:"images"`
	Artisan      Artisan  `json:"artisan"`
	Description  string   `json:"description"`
	Materials    []string `json:"materials"`
	Category     string   `json:"category"`
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	InStock      int      `json:"in_stock"`
	Customizable bool     `json:"customizable"`
	Location     string   `json:"location"`
}
