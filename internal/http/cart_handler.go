package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/harshh999/quarrel-store/internal/cart"
	"github.com/harshh999/quarrel-store/internal/catalog"
	"github.com/shopspring/decimal"
)

type CartHandler struct {
	catalog *catalog.Catalog
	cart    *cart.Service
}

func NewCartHandler(c *catalog.Catalog, cartSvc *cart.Service) *CartHandler {
	return &CartHandler{catalog: c, cart: cartSvc}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Size     string `json:"size"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
}

type CartResponse struct {
	Lines    []cart.Line     `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

func cartResponse(c cart.Cart) CartResponse {
	lines := c.Lines
	if lines == nil {
		lines = []cart.Line{}
	}
	return CartResponse{Lines: lines, Subtotal: c.Subtotal()}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.cart.Get(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cartResponse(c))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	product, err := h.catalog.Get(req.ProductID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	c, err := h.cart.Add(r.Context(), product, req.Size, req.Color, req.Quantity)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, cartResponse(c))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	key := cart.Key{ProductID: productID, Size: req.Size, Color: req.Color}
	c, err := h.cart.SetQuantity(r.Context(), key, req.Quantity)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cartResponse(c))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	key := cart.Key{
		ProductID: chi.URLParam(r, "product_id"),
		Size:      r.URL.Query().Get("size"),
		Color:     r.URL.Query().Get("color"),
	}

	c, err := h.cart.Remove(r.Context(), key)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cartResponse(c))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.cart.Clear(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cartResponse(c))
}
