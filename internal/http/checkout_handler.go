package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/harshh999/quarrel-store/internal/checkout"
	"github.com/harshh999/quarrel-store/internal/order"
	"github.com/harshh999/quarrel-store/internal/session"
)

type CheckoutHandler struct {
	checkout *checkout.Service
	session  *session.Session
}

func NewCheckoutHandler(checkoutSvc *checkout.Service, sess *session.Session) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkoutSvc, session: sess}
}

type PlaceOrderRequestDTO struct {
	ShippingMethod string        `json:"shipping_method"`
	Address        order.Address `json:"address"`
}

// PlaceOrder prices the current cart, runs the simulated payment delay and
// records the order. Client disconnects cancel the placement through the
// request context.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	user := h.session.CurrentUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "log in to place an order")
		return
	}

	var req PlaceOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	method, err := checkout.ParseShippingMethod(req.ShippingMethod)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	c, err := h.session.Cart(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	placed, err := h.checkout.PlaceOrder(r.Context(), user.ID, c, req.Address, method)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	log.Printf("order %s placed (request %s)", placed.ID, getRequestID(r.Context()))
	respondJSON(w, http.StatusCreated, placed)
}
