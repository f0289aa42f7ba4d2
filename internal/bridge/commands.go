package bridge

import (
	"github.com/guttosm/finmetrics/internal/service"
)

// GetFinancialMetrics is the name the metrics command is registered under.
const GetFinancialMetrics = "get_financial_metrics"

// MetricsCommands returns the commands backed by svc.
func MetricsCommands(svc service.MetricsService) []Command {
	return []Command{
		Handle(GetFinancialMetrics, svc.GetFinancialMetrics),
	}
}
