package storefront

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/craftroots/storefront/internal/modules/checkout"
)

func (h *Handler) enterCheckout(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := s.EnterCheckout(h.gateway); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	h.checkoutState(w, r)
}

func (h *Handler) checkoutState(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	snapshot, err := s.CheckoutSnapshot()
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	respond(w, http.StatusOK, snapshot)
}

func (h *Handler) submitShipping(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var info checkout.ShippingInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	step, err := s.SubmitShipping(info)
	if err != nil {
		respond(w, statusForFlowError(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]checkout.Step{"step": step})
}

func (h *Handler) submitPayment(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var info checkout.PaymentInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	confirmation, err := s.SubmitPayment(r.Context(), info)
	if err != nil {
		respond(w, statusForFlowError(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, confirmation)
}

func (h *Handler) checkoutBack(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	step, err := s.CheckoutBack()
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	respond(w, http.StatusOK, map[string]checkout.Step{"step": step})
}

func statusForFlowError(err error) int {
	if strings.Contains(err.Error(), "required") {
		return http.StatusUnprocessableEntity
	}
	return http.StatusConflict
}
