package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tableside/internal/catalog"
)

type CategoryCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

/*
GET /admin/api/categories
- Raw insertion order plus the display ordering
*/
func GetAllCategories(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"categories": store.Categories(),
			"ordered":    store.OrderedCategories(),
		})
	}
}

/*
POST /admin/api/categories
- Names are title-cased so "soups" and "Soups " collapse to one entry
*/
func CreateCategory(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/categories"
		defer handlePanic(c, route)

		var req CategoryCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		canonical, added := store.AddCategory(c.Request.Context(), req.Name)
		if canonical == "" {
			respondWithError(c, http.StatusBadRequest, route, "name required")
			return
		}
		if !added {
			c.JSON(http.StatusConflict, gin.H{
				"error":    "category already exists",
				"category": canonical,
			})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"category": canonical})
	}
}
