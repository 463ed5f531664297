package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/flordelima-golang/internal/models"
)

//
// --- Public Catalog Handlers ---
//

// ListProducts returns the catalog, optionally narrowed by ?category= and ?q=.
// When both are given a product must match both.
func (h *Handlers) ListProducts(c *gin.Context) {
	category := c.Query("category")
	query := c.Query("q")

	var products []models.Product
	switch {
	case category != "" && query != "":
		inCategory := make(map[int64]bool)
		for _, p := range h.Catalog.ByCategory(category) {
			inCategory[p.ID] = true
		}
		products = []models.Product{}
		for _, p := range h.Catalog.Search(query) {
			if inCategory[p.ID] {
				products = append(products, p)
			}
		}
	case category != "":
		products = h.Catalog.ByCategory(category)
	default:
		products = h.Catalog.Search(query)
	}

	c.JSON(http.StatusOK, products)
}

func (h *Handlers) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	product, ok := h.Catalog.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handlers) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Categories())
}
