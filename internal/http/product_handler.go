package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/harshh999/quarrel-store/internal/catalog"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	catalog *catalog.Catalog
}

func NewProductHandler(c *catalog.Catalog) *ProductHandler {
	return &ProductHandler{catalog: c}
}

type ProductListResponse struct {
	Products []catalog.Product `json:"products"`
	Total    int               `json:"total"`
	Matched  int               `json:"matched"`
}

// List runs the filter/sort engine over the catalog. Filters arrive as
// query parameters: category, size and color (repeatable), min_price,
// max_price, q, sort.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	crit := catalog.Criteria{
		Categories: q["category"],
		Sizes:      q["size"],
		Colors:     q["color"],
		Query:      q.Get("q"),
		SortBy:     catalog.ParseSortKey(q.Get("sort")),
	}

	if raw := q.Get("min_price"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_argument", "min_price must be a decimal number")
			return
		}
		crit.MinPrice = &min
	}
	if raw := q.Get("max_price"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_argument", "max_price must be a decimal number")
			return
		}
		crit.MaxPrice = &max
	}

	matched := h.catalog.Search(crit)
	if matched == nil {
		matched = []catalog.Product{}
	}
	respondJSON(w, http.StatusOK, ProductListResponse{
		Products: matched,
		Total:    h.catalog.Len(),
		Matched:  len(matched),
	})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.catalog.Get(id)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}
