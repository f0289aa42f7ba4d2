package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/finmetrics/internal/bridge"
	"github.com/guttosm/finmetrics/internal/domain/dto"
	"github.com/guttosm/finmetrics/internal/middleware"
)

// Handler exposes the command registry over HTTP.
//
// Responsibilities:
//   - Read the command name from the path and the arguments from the body
//   - Dispatch into the registry
//   - Map command failures onto HTTP status codes with the failure string as message
type Handler struct {
	registry *bridge.Registry
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - registry (*bridge.Registry): command table the handler dispatches into.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(registry *bridge.Registry) *Handler {
	return &Handler{registry: registry}
}

// Invoke handles POST /api/v1/invoke/:command requests.
//
// Invoke godoc
// @Summary      Invoke a command
// @Description  Runs a registered command with the JSON body as its arguments. The body may be the request object itself or {"request": {...}}.
// @Tags         commands
// @Accept       json
// @Produce      json
// @Param        command  path      string                 true  "Command name" example(get_financial_metrics)
// @Param        request  body      models.MetricsRequest  true  "Command arguments"
// @Success      200      {object}  models.FinancialMetrics  "Command result"
// @Failure      400      {object}  dto.ErrorResponse        "Invalid arguments"
// @Failure      404      {object}  dto.ErrorResponse        "Unknown command"
// @Failure      422      {object}  dto.ErrorResponse        "Command failed"
// @Router       /api/v1/invoke/{command} [post]
func (h *Handler) Invoke(c *gin.Context) {
	name := c.Param("command")
	c.Set(middleware.CommandKey, name)

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "failed to read request body", err)
		return
	}

	h.dispatch(c, name, body)
}

// GetMetrics handles GET /api/v1/metrics requests.
//
// Query Parameters:
//   - ticker (string): Ticker symbol, echoed back. Required, may be empty.
//   - period (string): Reporting period label, echoed back. Required, may be empty.
//   - metrics (string, optional): Comma-separated metric names. Accepted, not applied.
//
// GetMetrics godoc
// @Summary      Get financial metrics
// @Description  Query-string form of the get_financial_metrics command
// @Tags         metrics
// @Produce      json
// @Param        ticker   query     string  true   "Ticker symbol" example(AAPL)
// @Param        period   query     string  true   "Reporting period" example(FY2023)
// @Param        metrics  query     string  false  "Comma-separated metric names" example(return_on_equity,net_margin)
// @Success      200      {object}  models.FinancialMetrics  "Success"
// @Failure      400      {object}  dto.ErrorResponse        "Missing ticker or period"
// @Failure      422      {object}  dto.ErrorResponse        "Command failed"
// @Router       /api/v1/metrics [get]
func (h *Handler) GetMetrics(c *gin.Context) {
	c.Set(middleware.CommandKey, bridge.GetFinancialMetrics)

	// Absent parameters stay absent; argument decoding rejects them.
	req := make(map[string]any, 3)
	for _, key := range []string{"ticker", "period"} {
		if v, ok := c.GetQuery(key); ok {
			req[key] = v
		}
	}
	if raw, ok := c.GetQuery("metrics"); ok {
		req["metrics"] = splitList(raw)
	}

	args, err := json.Marshal(req)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to encode arguments", err)
		return
	}

	h.dispatch(c, bridge.GetFinancialMetrics, args)
}

// ListCommands handles GET /api/v1/commands.
//
// ListCommands godoc
// @Summary      List commands
// @Tags         commands
// @Produce      json
// @Success      200  {object}  dto.CommandList
// @Router       /api/v1/commands [get]
func (h *Handler) ListCommands(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CommandList{Commands: h.registry.Names()})
}

func (h *Handler) dispatch(c *gin.Context, name string, args []byte) {
	out, err := h.registry.Invoke(c.Request.Context(), name, args)
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatusJSON(statusFor(err), dto.NewErrorResponse(err.Error(), nil))
		return
	}
	c.JSON(http.StatusOK, out)
}

// statusFor maps a command failure onto an HTTP status.
func statusFor(err error) int {
	var ce *bridge.CommandError
	if !errors.As(err, &ce) {
		return http.StatusInternalServerError
	}
	switch ce.Kind {
	case bridge.KindUnknownCommand:
		return http.StatusNotFound
	case bridge.KindInvalidArgs:
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}

// splitList turns "a, b,,c" into [a b c]. An empty string yields an empty,
// non-nil slice so "metrics=" stays distinguishable from an absent parameter.
func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
