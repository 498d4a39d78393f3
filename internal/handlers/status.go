package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck is a liveness probe.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Status reports a runtime snapshot.
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitor.Snapshot())
}
