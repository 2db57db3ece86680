package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tableside/internal/cart"
	"tableside/internal/catalog"
)

type cartAddRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type cartQuantityRequest struct {
	Qty int `json:"qty"`
}

type cartTableRequest struct {
	Table string `json:"table" binding:"required"`
}

/*
GET /cart
*/
func GetCart(sessions *cart.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		snapshot := sessions.Snapshot(sid)
		c.JSON(http.StatusOK, gin.H{
			"table": snapshot.Table,
			"lines": snapshot.Lines,
			"total": snapshot.Total(),
		})
	}
}

/*
POST /cart/items
- Adding a product already in the cart increments its quantity
- Unavailable products cannot be added
*/
func AddCartItem(sessions *cart.Sessions, store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cart/items"
		defer handlePanic(c, route)

		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var req cartAddRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		product, found := store.Product(req.ProductID)
		if !found {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}
		if !product.Available {
			respondWithError(c, http.StatusConflict, route, "product unavailable")
			return
		}

		sessions.AddItem(sid, product)

		snapshot := sessions.Snapshot(sid)
		c.JSON(http.StatusOK, gin.H{"lines": snapshot.Lines, "total": snapshot.Total()})
	}
}

/*
PUT /cart/items/:id
- qty <= 0 removes the line
*/
func SetCartQuantity(sessions *cart.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /cart/items/:id"
		defer handlePanic(c, route)

		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var req cartQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		sessions.SetQuantity(sid, c.Param("id"), req.Qty)

		snapshot := sessions.Snapshot(sid)
		c.JSON(http.StatusOK, gin.H{"lines": snapshot.Lines, "total": snapshot.Total()})
	}
}

/*
DELETE /cart/items/:id
*/
func RemoveCartItem(sessions *cart.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		sessions.RemoveItem(sid, c.Param("id"))
		c.Status(http.StatusNoContent)
	}
}

/*
PUT /cart/table
- Table association is required before checkout is permitted
*/
func SetCartTable(sessions *cart.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /cart/table"
		defer handlePanic(c, route)

		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var req cartTableRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "table required")
			return
		}

		sessions.SetTable(sid, req.Table)
		c.Status(http.StatusNoContent)
	}
}

/*
DELETE /cart
*/
func ClearCart(sessions *cart.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		sessions.Clear(sid)
		c.Status(http.StatusNoContent)
	}
}
