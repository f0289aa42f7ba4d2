package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MetricsRequest is the argument of the get_financial_metrics command.
//
// Fields:
//   - Ticker: symbol of the security (e.g., "AAPL"). Required; any string, including "".
//   - Period: free-form reporting window label (e.g., "FY2023", "Q4"). Required; any string.
//   - Metrics: optional list of metric names. A nil slice means the field was absent.
//     The list is accepted but does not select anything: every response carries the
//     full metric set.
//
// swagger:model MetricsRequest
type MetricsRequest struct {
	Ticker  string   `json:"ticker" example:"AAPL"`
	Period  string   `json:"period" example:"FY2023"`
	Metrics []string `json:"metrics"`
}

// UnmarshalJSON requires "ticker" and "period" to be present as JSON strings.
// Keys match exactly; unknown keys are ignored.
func (r *MetricsRequest) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return errors.New("expected an object with ticker and period")
	}

	var out MetricsRequest
	var err error
	if out.Ticker, err = requiredString(fields, "ticker"); err != nil {
		return err
	}
	if out.Period, err = requiredString(fields, "period"); err != nil {
		return err
	}
	if raw, ok := fields["metrics"]; ok {
		if err := json.Unmarshal(raw, &out.Metrics); err != nil {
			return fmt.Errorf("invalid field metrics: %w", err)
		}
	}

	*r = out
	return nil
}

func requiredString(fields map[string]json.RawMessage, key string) (string, error) {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return "", fmt.Errorf("missing field %s", key)
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", fmt.Errorf("invalid field %s: expected a string", key)
	}
	return v, nil
}

// FinancialMetrics is the response of the get_financial_metrics command.
//
// Ticker and Period echo the request verbatim. Metrics maps a metric name
// to its value; a new map is built for every call.
//
// swagger:model FinancialMetrics
type FinancialMetrics struct {
	Ticker   string             `json:"ticker" example:"AAPL"`
	Period   string             `json:"period" example:"FY2023"`
	Metrics  map[string]float64 `json:"metrics"`
	Metadata Metadata           `json:"metadata"`
}

// Metadata describes a FinancialMetrics payload.
type Metadata struct {
	Currency    string `json:"currency" example:"USD"`
	FiscalYear  int    `json:"fiscal_year" example:"2023"`
	LastUpdated string `json:"last_updated" example:"2023-12-31T00:00:00Z"` // RFC 3339
}
