package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler exposes catalog HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", h.listProducts)      // GET /api/v1/catalog/products?category=Pottery&material=Ceramic&min_price=0&max_price=200&sort=price-low
		r.Get("/products/{id}", h.getProduct)   // GET /api/v1/catalog/products/{id}
		r.Get("/search", h.search)              // GET /api/v1/catalog/search?q=ceramic
		r.Get("/categories", h.categories)      // GET /api/v1/catalog/categories
		r.Get("/materials", h.materials)        // GET /api/v1/catalog/materials
		r.Get("/artisans/{id}", h.artisan)      // GET /api/v1/catalog/artisans/{id}
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	c := DefaultCriteria()
	q := r.URL.Query()
	if v := q.Get("category"); v != "" {
		c.Category = v
	}
	if v := q.Get("material"); v != "" {
		c.Material = v
	}
	if v := q.Get("min_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "invalid min_price", http.StatusBadRequest)
			return
		}
		c.PriceMin = f
	}
	if v := q.Get("max_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "invalid max_price", http.StatusBadRequest)
			return
		}
		c.PriceMax = f
	}
	if v := q.Get("sort"); v != "" {
		c.SortBy = SortKey(v)
	}

	products, err := h.service.ListProducts(r.Context(), c)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, result)
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Categories(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, out)
}

func (h *Handler) materials(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Materials(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, out)
}

func (h *Handler) artisan(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.ArtisanProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, profile)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
