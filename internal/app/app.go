package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/finmetrics/config"
	"github.com/guttosm/finmetrics/internal/api"
	"github.com/guttosm/finmetrics/internal/bridge"
	"github.com/guttosm/finmetrics/internal/service"
)

// NewRegistry builds the command table with every command this service exposes.
//
// Parameters:
//   - svc (service.MetricsService): responder backing get_financial_metrics.
//
// Returns:
//   - *bridge.Registry: populated registry.
//   - error: if two commands share a name.
func NewRegistry(svc service.MetricsService) (*bridge.Registry, error) {
	registry := bridge.NewRegistry()
	for _, cmd := range bridge.MetricsCommands(svc) {
		if err := registry.Register(cmd); err != nil {
			return nil, fmt.Errorf("failed to register command: %w", err)
		}
	}
	return registry, nil
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the metrics service and the command registry.
//   - Creates the HTTP and websocket handlers that dispatch into the registry.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	registry, err := newRegistry(service.NewMetricsService())
	if err != nil {
		return nil, nil, err
	}

	handler := api.NewHandler(registry)
	ipc := api.NewIPCHandler(registry, cfg.WebSocket.MaxMessageBytes)

	router := api.NewRouter(handler, ipc, api.RouterOptions{
		RequestTimeout: cfg.Server.RequestTimeout,
		SwaggerEnabled: cfg.Server.SwaggerEnabled,
	})

	api.NewHealthHandler(registry.Len).Register(router)

	// No resources to release yet.
	cleanup := func() {}

	return router, cleanup, nil
}

// newRegistry is an indirection used by InitializeApp; overridden in tests.
var newRegistry = NewRegistry
