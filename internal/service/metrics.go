package service

import (
	"context"
	"time"

	"github.com/guttosm/finmetrics/internal/domain/models"
)

// Mock payload served until a real financial-data source is wired in.
const (
	DefaultCurrency   = "USD"
	DefaultFiscalYear = 2023
)

// Metric names returned by GetFinancialMetrics.
const (
	ReturnOnEquity  = "return_on_equity"
	ReturnOnAssets  = "return_on_assets"
	DebtToEquity    = "debt_to_equity"
	CurrentRatio    = "current_ratio"
	QuickRatio      = "quick_ratio"
	OperatingMargin = "operating_margin"
	NetMargin       = "net_margin"
	PriceToEarnings = "price_to_earnings"
	PriceToBook     = "price_to_book"
	PriceToSales    = "price_to_sales"
	RevenueGrowth   = "revenue_growth"
	EarningsGrowth  = "earnings_growth"
)

var mockMetrics = map[string]float64{
	ReturnOnEquity:  0.245,
	ReturnOnAssets:  0.178,
	DebtToEquity:    1.2,
	CurrentRatio:    1.8,
	QuickRatio:      1.5,
	OperatingMargin: 0.21,
	NetMargin:       0.185,
	PriceToEarnings: 18.5,
	PriceToBook:     3.2,
	PriceToSales:    1.9,
	RevenueGrowth:   0.15,
	EarningsGrowth:  0.12,
}

// MetricsService answers financial metric requests.
type MetricsService interface {
	GetFinancialMetrics(ctx context.Context, req models.MetricsRequest) (*models.FinancialMetrics, error)
}

// Option configures a metricsService.
type Option func(*metricsService)

// WithClock replaces the wall clock used for Metadata.LastUpdated.
func WithClock(now func() time.Time) Option {
	return func(s *metricsService) {
		if now != nil {
			s.now = now
		}
	}
}

type metricsService struct {
	now func() time.Time
}

// NewMetricsService returns the mock-backed MetricsService.
//
// The returned service holds no mutable state and is safe for concurrent use.
func NewMetricsService(opts ...Option) MetricsService {
	s := &metricsService{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetFinancialMetrics builds the metrics response for req.
//
// Ticker and period are echoed without validation. The requested metric list is
// not applied: the response always carries every metric in the mock set.
// The error return is the command failure channel; no path fills it today.
func (s *metricsService) GetFinancialMetrics(_ context.Context, req models.MetricsRequest) (*models.FinancialMetrics, error) {
	metrics := make(map[string]float64, len(mockMetrics))
	for name, v := range mockMetrics {
		metrics[name] = v
	}

	return &models.FinancialMetrics{
		Ticker:  req.Ticker,
		Period:  req.Period,
		Metrics: metrics,
		Metadata: models.Metadata{
			Currency:    DefaultCurrency,
			FiscalYear:  DefaultFiscalYear,
			LastUpdated: s.now().UTC().Format(time.RFC3339Nano),
		},
	}, nil
}

