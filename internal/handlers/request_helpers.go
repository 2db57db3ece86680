package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tableside/internal/logger"
	"tableside/internal/models"
)

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		logger.Get().Errorw("panic recovered", "route", route, "panic", r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	logger.Get().Warnw("request failed", "route", route, "status", status, "msg", message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// sessionID identifies the caller's cart session. The cart is transient and
// per-session, so a missing header is a hard request error.
func sessionID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-Session-Id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Session-Id header required"})
		return "", false
	}
	return id, true
}

// orderView shapes an order for responses, attaching the derived total and
// the progress fraction the status maps to.
func orderView(o models.Order) gin.H {
	return gin.H{
		"id":        o.ID,
		"table":     o.Table,
		"items":     o.Items,
		"status":    o.Status,
		"notes":     o.Notes,
		"createdAt": o.CreatedAt,
		"history":   o.History,
		"total":     o.Total(),
		"progress":  o.Status.Progress(),
		"active":    o.Active(),
	}
}

func orderViews(list []models.Order) []gin.H {
	out := make([]gin.H, len(list))
	for i, o := range list {
		out[i] = orderView(o)
	}
	return out
}
