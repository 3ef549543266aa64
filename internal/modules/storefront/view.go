package storefront

import (
	"net/http"

	"github.com/craftroots/storefront/internal/modules/catalog"
)

// View is the payload for the session's current page. Content is nil when a
// page's prerequisite is missing (an unselected product view, a signed-out
// dashboard); the client renders nothing, never an error page.
type View struct {
	Page    Page        `json:"page"`
	Content interface{} `json:"content,omitempty"`
}

// homeView splits the catalog the way the home page does: three full-width
// featured products, then a grid of the next three.
type homeView struct {
	Featured []*catalog.Product `json:"featured"`
	Grid     []*catalog.Product `json:"grid"`
}

func (h *Handler) view(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	state := s.Snapshot()
	v := View{Page: state.Page}

	switch state.Page {
	case PageHome:
		products, err := h.catalog.ListProducts(r.Context(), catalog.Unfiltered())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		hv := homeView{Featured: products, Grid: nil}
		if len(products) > 3 {
			hv.Featured = products[:3]
			hv.Grid = products[3:]
			if len(hv.Grid) > 3 {
				hv.Grid = hv.Grid[:3]
			}
		}
		v.Content = hv

	case PageShop, PageShopAll:
		products, err := h.catalog.ListProducts(r.Context(), catalog.Unfiltered())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		v.Content = products

	case PageProduct:
		if state.SelectedProduct != nil {
			v.Content = state.SelectedProduct
		}

	case PageArtisan:
		if state.SelectedArtisan != "" {
			profile, err := h.catalog.ArtisanProfile(r.Context(), state.SelectedArtisan)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			v.Content = profile
		}

	case PageSearch:
		result, err := h.catalog.Search(r.Context(), state.SearchQuery)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		v.Content = result

	case PageCheckout:
		if snapshot, err := s.CheckoutSnapshot(); err == nil {
			v.Content = snapshot
		}

	case PageDashboard:
		if s.User() != nil {
			d, err := h.buildDashboard(r, s)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			v.Content = d
		}

	case PageAbout:
		// static page, no server-side content
	}

	respond(w, http.StatusOK, v)
}
