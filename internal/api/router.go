package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/finmetrics/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterOptions carries the transport settings NewRouter needs.
type RouterOptions struct {
	RequestTimeout time.Duration // per-request context deadline; zero disables it
	SwaggerEnabled bool          // mount /swagger/*any
}

// NewRouter creates a Gin engine with routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler).
//   - Attaches a request deadline to plain HTTP routes.
//   - Mounts Swagger docs (/swagger/*any) when enabled.
//   - Configures API v1 routes (/api/v1), including the websocket channel.
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
//
// Parameters:
//   - handler (*Handler): HTTP command handler.
//   - ipc (*IPCHandler): websocket command handler.
//   - opts (RouterOptions): transport settings.
//
// Returns:
//   - *gin.Engine: Configured Gin router.
func NewRouter(handler *Handler, ipc *IPCHandler, opts RouterOptions) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
	)

	// ─── Swagger ──────────────────────────────────
	if opts.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		// Long-lived; must not inherit a request deadline.
		v1.GET("/ipc", ipc.Serve)

		timed := v1.Group("", requestTimeout(opts.RequestTimeout))
		timed.GET("/commands", handler.ListCommands)
		timed.GET("/metrics", handler.GetMetrics)
		timed.POST("/invoke/:command", handler.Invoke)
	}

	return router
}

func requestTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
