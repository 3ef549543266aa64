package storefront

import (
	"encoding/json"
	"net/http"

	"github.com/craftroots/storefront/internal/modules/cart"
)

type cartItemRequest struct {
	ProductID     string              `json:"product_id"`
	Quantity      *int                `json:"quantity,omitempty"`
	Customization *cart.Customization `json:"customization,omitempty"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, s.CartSnapshot())
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := h.catalog.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	s.AddToCart(p, req.Customization)
	respond(w, http.StatusOK, s.CartSnapshot())
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Quantity == nil {
		http.Error(w, "quantity is required", http.StatusBadRequest)
		return
	}
	if err := s.UpdateCartQuantity(req.ProductID, *req.Quantity, req.Customization); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	respond(w, http.StatusOK, s.CartSnapshot())
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.RemoveFromCart(req.ProductID, req.Customization)
	respond(w, http.StatusOK, s.CartSnapshot())
}

type wishlistRequest struct {
	ProductID string `json:"product_id"`
}

func (h *Handler) getWishlist(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	ids := s.WishlistIDs()
	if ids == nil {
		ids = []string{}
	}
	respond(w, http.StatusOK, map[string]interface{}{"product_ids": ids})
}

func (h *Handler) toggleWishlist(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req wishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.ProductID == "" {
		http.Error(w, "product_id is required", http.StatusBadRequest)
		return
	}
	added := s.ToggleWishlist(req.ProductID)
	respond(w, http.StatusOK, map[string]bool{"added": added})
}
