package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tableside/internal/catalog"
	"tableside/internal/models"
)

/* =======================
   REQUEST DTOs
======================= */

type ProductCreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category" binding:"required"`
	Type        string  `json:"type"`
}

type ProductUpdateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
	Type        *string  `json:"type"`
	Available   *bool    `json:"available"`
}

func parseProductType(raw string) (models.ProductType, bool) {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "":
		return "", true
	case string(models.TypeVeg):
		return models.TypeVeg, true
	case string(models.TypeNonVeg):
		return models.TypeNonVeg, true
	default:
		return "", false
	}
}

/*
GET /admin/api/products
- Full catalog, unavailable items included
*/
func GetAllProducts(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Products())
	}
}

/*
POST /admin/api/products
- Assigns the id and defaults availability on
*/
func CreateProduct(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/products"
		defer handlePanic(c, route)

		var req ProductCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		if req.Price < 0 {
			respondWithError(c, http.StatusBadRequest, route, "price must not be negative")
			return
		}

		productType, ok := parseProductType(req.Type)
		if !ok {
			respondWithError(c, http.StatusBadRequest, route, "type must be veg or non-veg")
			return
		}

		product := store.AddProduct(c.Request.Context(), models.Product{
			Name:        strings.TrimSpace(req.Name),
			Description: strings.TrimSpace(req.Description),
			Price:       req.Price,
			Image:       req.Image,
			Category:    strings.TrimSpace(req.Category),
			Type:        productType,
		})

		c.JSON(http.StatusCreated, product)
	}
}

/*
PUT /admin/api/products/:id
- Unknown ids are a no-op by design; the response does not distinguish them
*/
func UpdateProduct(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/products/:id"
		defer handlePanic(c, route)

		var req ProductUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		if req.Price != nil && *req.Price < 0 {
			respondWithError(c, http.StatusBadRequest, route, "price must not be negative")
			return
		}

		patch := models.ProductPatch{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Image:       req.Image,
			Category:    req.Category,
			Available:   req.Available,
		}
		if req.Type != nil {
			productType, ok := parseProductType(*req.Type)
			if !ok {
				respondWithError(c, http.StatusBadRequest, route, "type must be veg or non-veg")
				return
			}
			patch.Type = &productType
		}

		store.UpdateProduct(c.Request.Context(), c.Param("id"), patch)
		c.Status(http.StatusNoContent)
	}
}

/*
DELETE /admin/api/products/:id
- Immediate and irreversible; a later reload re-adds seeded ids
*/
func DeleteProduct(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.DeleteProduct(c.Request.Context(), c.Param("id"))
		c.Status(http.StatusNoContent)
	}
}

/*
PATCH /admin/api/products/:id/availability
*/
func ToggleAvailability(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.ToggleAvailability(c.Request.Context(), c.Param("id"))
		c.Status(http.StatusNoContent)
	}
}
