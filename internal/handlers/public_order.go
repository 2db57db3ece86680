package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"tableside/internal/cart"
	"tableside/internal/logger"
	"tableside/internal/notify"
	"tableside/internal/orders"
)

type checkoutRequest struct {
	Notes string `json:"notes"`
}

/*
POST /checkout
- Turns the session cart into a Pending order and clears the cart
- Blocked without a table or with an empty cart
*/
func Checkout(sessions *cart.Sessions, store *orders.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /checkout"
		defer handlePanic(c, route)

		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var req checkoutRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid body")
				return
			}
		}

		snapshot := sessions.Snapshot(sid)
		if !snapshot.ReadyForCheckout() {
			respondWithError(c, http.StatusBadRequest, route, "cart is empty or table not set")
			return
		}

		order, err := store.Create(c.Request.Context(), snapshot.Table, snapshot.Items(), req.Notes)
		if errors.Is(err, orders.ErrEmptyOrder) || errors.Is(err, orders.ErrNoTable) {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "order could not be placed")
			return
		}

		sessions.Clear(sid)

		logger.Get().Infow("order placed", "orderId", order.ID, "table", order.Table, "total", order.Total())
		c.JSON(http.StatusCreated, orderView(order))
	}
}

/*
GET /orders/last
- The immediate post-checkout status view, backed by the last-order pointer
*/
func GetLastOrder(store *orders.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, found := store.Last()
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active order"})
			return
		}
		c.JSON(http.StatusOK, orderView(order))
	}
}

/*
GET /orders/:id
- Customers only ever read order state, never write it
*/
func GetOrder(store *orders.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, found := store.Get(c.Param("id"))
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, orderView(order))
	}
}

/*
GET /events
- SSE stream of change notifications; payloads are advisory, clients re-fetch
*/
func Events(notifier notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /events"

		changes, err := notifier.SubscribeAll(c.Request.Context())
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "subscribe failed")
			return
		}

		c.Stream(func(w io.Writer) bool {
			select {
			case change, ok := <-changes:
				if !ok {
					return false
				}
				c.SSEvent("change", change)
				return true
			case <-c.Request.Context().Done():
				return false
			}
		})
	}
}
