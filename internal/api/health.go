package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe (ready once at least one command is registered).
type HealthHandler struct {
	commandCount func() int
}

// NewHealthHandler constructs a HealthHandler.
//
// Parameters:
//   - commandCount (func() int): reports how many commands are registered.
//     Typically registry.Len. A nil function is treated as always ready.
//
// Returns:
//   - *HealthHandler: A new handler instance.
func NewHealthHandler(commandCount func() int) *HealthHandler {
	return &HealthHandler{commandCount: commandCount}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: Returns 200 OK when commands are registered, 503 otherwise.
func (h *HealthHandler) Register(r *gin.Engine) {
	// @Summary      Liveness probe
	// @Description  Always returns OK if the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// @Summary      Readiness probe
	// @Description  Returns ready once the command table is populated
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		if h.commandCount != nil && h.commandCount() == 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "no commands registered"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
}
