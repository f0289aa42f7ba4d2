package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	SERVER_REQUEST_TIMEOUT=10s
//	SERVER_SHUTDOWN_TIMEOUT=10s
//	SWAGGER_ENABLED=true
//	LOG_LEVEL=info
//	LOG_PRETTY=false
//	WS_MAX_MESSAGE_BYTES=1048576
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	Log       LogConfig       // Logger settings
	WebSocket WebSocketConfig // Websocket invoke channel settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        // The TCP port the HTTP server will listen on (e.g., "8080")
	RequestTimeout  time.Duration // Deadline attached to every request context
	ShutdownTimeout time.Duration // Grace period for in-flight requests on shutdown
	SwaggerEnabled  bool          // Mount /swagger/*any
}

// LogConfig controls the global logger.
type LogConfig struct {
	Level  string // debug|info|warn|error
	Pretty bool   // human-readable console output instead of JSON
}

// WebSocketConfig controls the /api/v1/ipc channel.
type WebSocketConfig struct {
	MaxMessageBytes int64
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read by the rest of the application.
var AppConfig Config

// Defaults applied before .env and environment variables are read.
var defaults = map[string]any{
	"SERVER_PORT":             "8080",
	"SERVER_REQUEST_TIMEOUT":  "10s",
	"SERVER_SHUTDOWN_TIMEOUT": "10s",
	"SWAGGER_ENABLED":         true,
	"LOG_LEVEL":               "info",
	"LOG_PRETTY":              false,
	"WS_MAX_MESSAGE_BYTES":    1 << 20,
}

// LoadConfig initializes the global AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Returns:
//   - error: describing every missing or invalid key, if any.
func LoadConfig() error {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	// Optionally read from .env if present (common in local dev)
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore error if no .env

	v.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:            v.GetString("SERVER_PORT"),
			RequestTimeout:  v.GetDuration("SERVER_REQUEST_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
			SwaggerEnabled:  v.GetBool("SWAGGER_ENABLED"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Pretty: v.GetBool("LOG_PRETTY"),
		},
		WebSocket: WebSocketConfig{
			MaxMessageBytes: v.GetInt64("WS_MAX_MESSAGE_BYTES"),
		},
	}

	return validateConfig(AppConfig)
}

// validateConfig collects every missing or out-of-range field so the operator
// sees the whole list at once.
func validateConfig(cfg Config) error {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Server.RequestTimeout <= 0 {
		missing = append(missing, "SERVER_REQUEST_TIMEOUT")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		missing = append(missing, "SERVER_SHUTDOWN_TIMEOUT")
	}
	if cfg.WebSocket.MaxMessageBytes <= 0 {
		missing = append(missing, "WS_MAX_MESSAGE_BYTES")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing or invalid configuration: %v", missing)
	}
	return nil
}
