package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tableside/internal/catalog"
	"tableside/internal/models"
)

/*
GET /products
- Available products only
- ?category= filters to one menu section
*/
func GetProducts(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		category := strings.TrimSpace(c.Query("category"))

		products := make([]models.Product, 0)
		for _, p := range store.Products() {
			if !p.Available {
				continue
			}
			if category != "" && p.Category != category {
				continue
			}
			products = append(products, p)
		}

		c.JSON(http.StatusOK, products)
	}
}

/*
GET /categories
- Display order: fixed menu sections first, everything else alphabetical
*/
func GetCategories(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /categories"
		defer handlePanic(c, route)

		c.JSON(http.StatusOK, store.OrderedCategories())
	}
}
