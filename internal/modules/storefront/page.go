package storefront

// Page enumerates the storefront's top-level views.
type Page string

const (
	PageHome      Page = "home"
	PageShop      Page = "shop"
	PageShopAll   Page = "shop-all"
	PageAbout     Page = "about"
	PageProduct   Page = "product"
	PageCheckout  Page = "checkout"
	PageDashboard Page = "dashboard"
	PageArtisan   Page = "artisan"
	PageSearch    Page = "search"
)

var knownPages = map[Page]bool{
	PageHome:      true,
	PageShop:      true,
	PageShopAll:   true,
	PageAbout:     true,
	PageProduct:   true,
	PageCheckout:  true,
	PageDashboard: true,
	PageArtisan:   true,
	PageSearch:    true,
}

// Valid reports whether p names a real page.
func (p Page) Valid() bool { return knownPages[p] }
