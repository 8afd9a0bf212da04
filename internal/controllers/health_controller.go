package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Healthz reports whether the route snapshot can be loaded.
func (h *Controller) Healthz(c *gin.Context) {
	if _, err := h.routes.List(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
