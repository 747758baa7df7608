package handlers

import (
	"net/http"

	"consultly/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest dependency probe.
type HealthHandler struct {
	Status func() utils.HealthStatus
}

func (h *HealthHandler) Health(c *gin.Context) {
	status := h.Status()
	code := http.StatusOK
	label := "ok"
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
		label = "degraded"
	}
	c.JSON(code, gin.H{"status": label, "message": "Hi, I'm Consultly", "dependencies": status})
}
