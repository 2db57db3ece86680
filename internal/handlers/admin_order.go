package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tableside/internal/models"
	"tableside/internal/orders"
)

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

/*
GET /admin/api/orders
- Partitioned into the kitchen board (active) and the served history
*/
func GetOrders(store *orders.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"active":    orderViews(store.Active()),
			"completed": orderViews(store.Completed()),
		})
	}
}

/*
PATCH /admin/api/orders/:id/status
- Any-to-any transitions are allowed so mis-clicks can be corrected
- Unknown order ids are a silent no-op by design
*/
func UpdateOrderStatus(store *orders.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /admin/api/orders/:id/status"
		defer handlePanic(c, route)

		var req OrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		status, ok := models.ParseStatus(req.Status)
		if !ok {
			respondWithError(c, http.StatusBadRequest, route, "unknown status")
			return
		}

		if err := store.UpdateStatus(c.Request.Context(), c.Param("id"), status); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}
		c.Status(http.StatusNoContent)
	}
}

/*
DELETE /admin/api/orders
- Clears the board entirely; the persisted key is removed, not emptied
*/
func ClearOrders(store *orders.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.Clear(c.Request.Context())
		c.Status(http.StatusNoContent)
	}
}
