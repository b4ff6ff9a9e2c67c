package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/WGledhill94/loadLab/internal/catalog"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	catalog *catalog.Service
}

func NewProductHandler(c *catalog.Service) *ProductHandler {
	return &ProductHandler{catalog: c}
}

// GET /api/products?search=&category=&minPrice=&maxPrice=
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := catalog.Filter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
	}
	if v := q.Get("minPrice"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &min
		}
	}
	if v := q.Get("maxPrice"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &max
		}
	}

	respondJSON(w, http.StatusOK, h.catalog.List(filter))
}

// GET /api/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be an integer")
		return
	}

	product, err := h.catalog.Get(id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "Product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// GET /api/categories
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Categories())
}
