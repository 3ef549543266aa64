package storefront

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/craftroots/storefront/internal/modules/auth"
	"github.com/craftroots/storefront/internal/modules/catalog"
	"github.com/craftroots/storefront/internal/modules/checkout"
)

// sessionHeader carries the session id on every storefront request.
const sessionHeader = "X-Session-ID"

// Handler exposes the per-session storefront endpoints: navigation, cart,
// wishlist, checkout, auth, and notifications. It stands where the original
// component tree stood, translating user events into session mutations.
type Handler struct {
	manager *Manager
	catalog catalog.Service
	auth    auth.Service
	gateway checkout.Gateway
}

func NewHandler(manager *Manager, catalogService catalog.Service, authService auth.Service, gateway checkout.Gateway) *Handler {
	return &Handler{manager: manager, catalog: catalogService, auth: authService, gateway: gateway}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/session", func(r chi.Router) {
		r.Post("/", h.createSession)               // POST /api/v1/session
		r.Get("/", h.getState)                     // GET  /api/v1/session
		r.Post("/navigate", h.navigate)            // POST /api/v1/session/navigate
		r.Post("/search-query", h.setSearchQuery)  // POST /api/v1/session/search-query
		r.Get("/view", h.view)                     // GET  /api/v1/session/view
		r.Get("/notifications", h.notifications)   // GET  /api/v1/session/notifications
	})
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", h.getCart)          // GET    /api/v1/cart
		r.Post("/items", h.addToCart)  // POST   /api/v1/cart/items
		r.Patch("/items", h.updateQuantity)
		r.Delete("/items", h.removeFromCart)
	})
	r.Route("/api/v1/wishlist", func(r chi.Router) {
		r.Get("/", h.getWishlist)
		r.Post("/toggle", h.toggleWishlist)
	})
	r.Route("/api/v1/checkout", func(r chi.Router) {
		r.Post("/", h.enterCheckout)
		r.Get("/", h.checkoutState)
		r.Post("/shipping", h.submitShipping)
		r.Post("/payment", h.submitPayment)
		r.Post("/back", h.checkoutBack)
	})
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)
	})
	r.Get("/api/v1/dashboard", h.dashboard) // GET /api/v1/dashboard
}

// session resolves the request's session; it writes the error response
// itself when the header is missing or stale.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	id := r.Header.Get(sessionHeader)
	if id == "" {
		http.Error(w, sessionHeader+" header is required", http.StatusUnauthorized)
		return nil, false
	}
	s, err := h.manager.Get(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return nil, false
	}
	return s, true
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	s := h.manager.Create()
	respond(w, http.StatusCreated, map[string]string{"session_id": s.ID.String()})
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, s.Snapshot())
}

type navigateRequest struct {
	Page      Page   `json:"page"`
	ProductID string `json:"product_id,omitempty"`
	ArtisanID string `json:"artisan_id,omitempty"`
}

func (h *Handler) navigate(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	switch {
	case req.Page == PageProduct && req.ProductID != "":
		p, err := h.catalog.GetProduct(r.Context(), req.ProductID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		s.SelectProduct(p)
	case req.Page == PageArtisan && req.ArtisanID != "":
		s.SelectArtisan(req.ArtisanID)
	case req.Page == PageCheckout:
		if err := s.EnterCheckout(h.gateway); err != nil {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
	default:
		if err := s.Navigate(req.Page); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	respond(w, http.StatusOK, s.Snapshot())
}

type searchQueryRequest struct {
	Query string `json:"query"`
}

func (h *Handler) setSearchQuery(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req searchQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.SetSearchQuery(req.Query)
	respond(w, http.StatusOK, s.Snapshot())
}

func (h *Handler) notifications(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	toasts := s.DrainToasts()
	if toasts == nil {
		toasts = []Toast{}
	}
	respond(w, http.StatusOK, toasts)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if s.User() == nil {
		http.Error(w, "sign in to view the dashboard", http.StatusForbidden)
		return
	}
	d, err := h.buildDashboard(r, s)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, d)
}

func (h *Handler) buildDashboard(r *http.Request, s *Session) (*Dashboard, error) {
	products, err := h.catalog.ListProducts(r.Context(), catalog.Unfiltered())
	if err != nil {
		return nil, err
	}
	wishlisted := make(map[string]bool)
	for _, id := range s.WishlistIDs() {
		wishlisted[id] = true
	}
	d := &Dashboard{Orders: mockOrders(products), Wishlist: []*catalog.Product{}}
	for _, p := range products {
		if wishlisted[p.ID] {
			d.Wishlist = append(d.Wishlist, p)
		}
	}
	return d, nil
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
