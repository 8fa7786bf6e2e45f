package http

import (
	"net/http"

	"github.com/harshh999/quarrel-store/internal/order"
	"github.com/harshh999/quarrel-store/internal/session"
)

type OrdersHandler struct {
	orders  *order.Store
	session *session.Session
}

func NewOrdersHandler(orders *order.Store, sess *session.Session) *OrdersHandler {
	return &OrdersHandler{orders: orders, session: sess}
}

type OrderListResponse struct {
	Orders []order.Order `json:"orders"`
}

func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	user := h.session.CurrentUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "log in to view orders")
		return
	}

	orders := h.orders.ListByUser(r.Context(), user.ID)
	if orders == nil {
		orders = []order.Order{}
	}
	respondJSON(w, http.StatusOK, OrderListResponse{Orders: orders})
}
