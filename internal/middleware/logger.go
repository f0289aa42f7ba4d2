package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/finmetrics/internal/logger"
)

// CommandKey is the gin context key under which invoke handlers record the
// command name, so the request log line can carry it.
const CommandKey = "command"

// RequestLogger is a Gin middleware that logs method, path, status code,
// request latency, request ID and, for invoke routes, the command name.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RequestLogger())
//
// Example log output:
//
//	{"level":"info","request_id":"...","method":"POST","path":"/api/v1/invoke/get_financial_metrics","command":"get_financial_metrics","status":200,"latency_ms":0,"message":"http_request"}
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		event := logger.L().Info()
		if status >= 500 {
			event = logger.L().Error()
		} else if status >= 400 {
			event = logger.L().Warn()
		}

		event = event.
			Str("request_id", GetRequestID(c)).
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP())
		if cmd := toString(c.Value(CommandKey)); cmd != "" {
			event = event.Str("command", cmd)
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}
		event.Msg("http_request")
	}
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
