package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, c *Catalog) {
	r.Route("/products", func(pr chi.Router) {
		pr.Get("/", listProductsHandler(c))
		pr.Get("/{productID}", getProductHandler(c))
	})
}

type productResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Price      int    `json:"price"`
	PriceLabel string `json:"priceLabel"`
	Category   string `json:"category"`
	Image      string `json:"image"`
}

// listProductsHandler godoc
// @Summary Listar productos
// @Tags catalog
// @Produce json
// @Param category query string false "Filtrar por categoría"
// @Success 200 {array} productResponse
// @Router /products [get]
func listProductsHandler(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := c.List(r.URL.Query().Get("category"))

		out := make([]productResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toProductResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getProductHandler godoc
// @Summary Obtener producto
// @Tags catalog
// @Produce json
// @Param productID path int true "ID del producto"
// @Success 200 {object} productResponse
// @Failure 400 {string} string "invalid product id"
// @Failure 404 {string} string "product not found"
// @Router /products/{productID} [get]
func getProductHandler(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "productID"))
		if err != nil {
			http.Error(w, "invalid product id", http.StatusBadRequest)
			return
		}

		p, err := c.Get(id)
		if err != nil {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toProductResponse(p))
	}
}

func toProductResponse(p Product) productResponse {
	return productResponse{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		PriceLabel: p.PriceLabel(),
		Category:   p.Category,
		Image:      p.Image,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
