package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/finmetrics/internal/bridge"
	"github.com/guttosm/finmetrics/internal/domain/dto"
	"github.com/guttosm/finmetrics/internal/domain/models"
	"github.com/guttosm/finmetrics/internal/service"
)

type mockMetricsService struct {
	resp *models.FinancialMetrics
	err   error
	got   models.MetricsRequest
	calls int
}

func (m *mockMetricsService) GetFinancialMetrics(_ context.Context, req models.MetricsRequest) (*models.FinancialMetrics, error) {
	m.got = req
	m.calls++
	return m.resp, m.err
}

var _ service.MetricsService = (*mockMetricsService)(nil)

func newRegistry(svc service.MetricsService) *bridge.Registry {
	r := bridge.NewRegistry()
	r.MustRegister(bridge.MetricsCommands(svc)...)
	return r
}

func setupRouterWithMock(svc service.MetricsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(newRegistry(svc))
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.GET("/commands", h.ListCommands)
	v1.GET("/metrics", h.GetMetrics)
	v1.POST("/invoke/:command", h.Invoke)
	return r
}

func fixedService() service.MetricsService {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	return service.NewMetricsService(service.WithClock(func() time.Time { return at }))
}

func TestInvoke_TableDriven(t *testing.T) {
	cases := []struct {
		name    string
		svc     service.MetricsService
		command string
		body    string
		status  int
		assert  func(t *testing.T, body []byte)
	}{
		{
			name:    "success",
			svc:     fixedService(),
			command: "get_financial_metrics",
			body:    `{"ticker":"AAPL","period":"FY2023"}`,
			status:  http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out models.FinancialMetrics
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Ticker != "AAPL" || out.Period != "FY2023" || len(out.Metrics) != 12 {
					t.Fatalf("unexpected body: %+v", out)
				}
				if out.Metrics["price_to_earnings"] != 18.5 || out.Metadata.Currency != "USD" || out.Metadata.FiscalYear != 2023 {
					t.Fatalf("unexpected body: %+v", out)
				}
				if out.Metadata.LastUpdated != "2024-01-02T03:04:05Z" {
					t.Fatalf("last_updated=%q", out.Metadata.LastUpdated)
				}
			},
		},
		{
			name:    "wrapped request with ignored filter",
			svc:     fixedService(),
			command: "get_financial_metrics",
			body:    `{"request":{"ticker":"","period":"","metrics":["return_on_equity"]}}`,
			status:  http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out models.FinancialMetrics
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Ticker != "" || out.Period != "" || len(out.Metrics) != 12 {
					t.Fatalf("unexpected body: %+v", out)
				}
			},
		},
		{
			name:    "unknown command",
			svc:     fixedService(),
			command: "get_prices",
			body:    `{}`,
			status:  http.StatusNotFound,
			assert:  assertMessage(`unknown command "get_prices"`),
		},
		{
			name:    "invalid args",
			svc:     fixedService(),
			command: "get_financial_metrics",
			body:    `{"ticker":42}`,
			status:  http.StatusBadRequest,
		},
		{
			name:    "missing period",
			svc:     fixedService(),
			command: "get_financial_metrics",
			body:    `{"ticker":"AAPL"}`,
			status:  http.StatusBadRequest,
		},
		{
			name:    "empty body",
			svc:     fixedService(),
			command: "get_financial_metrics",
			body:    ``,
			status:  http.StatusBadRequest,
		},
		{
			name:    "command failure carries message",
			svc:     &mockMetricsService{err: errors.New("ticker not covered")},
			command: "get_financial_metrics",
			body:    `{"ticker":"ZZZZ","period":"Q1"}`,
			status:  http.StatusUnprocessableEntity,
			assert:  assertMessage("ticker not covered"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/invoke/"+tc.command, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d (%s)", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func assertMessage(want string) func(t *testing.T, body []byte) {
	return func(t *testing.T, body []byte) {
		t.Helper()
		var out dto.ErrorResponse
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if out.Message != want {
			t.Fatalf("message=%q, want %q", out.Message, want)
		}
	}
}

func TestGetMetrics_QueryMapping(t *testing.T) {
	cases := []struct {
		name        string
		query       string
		wantTicker  string
		wantPeriod  string
		wantMetrics []string
	}{
		{name: "no filter", query: "?ticker=AAPL&period=FY2023", wantTicker: "AAPL", wantPeriod: "FY2023", wantMetrics: nil},
		{name: "empty filter", query: "?ticker=AAPL&period=Q4&metrics=", wantTicker: "AAPL", wantPeriod: "Q4", wantMetrics: []string{}},
		{name: "list filter", query: "?ticker=aapl&period=&metrics=net_margin,%20quick_ratio,,", wantTicker: "aapl", wantMetrics: []string{"net_margin", "quick_ratio"}},
		{name: "empty values", query: "?ticker=&period=", wantMetrics: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockMetricsService{resp: &models.FinancialMetrics{Ticker: "echo"}}
			r := setupRouterWithMock(svc)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/metrics"+tc.query, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			if svc.got.Ticker != tc.wantTicker || svc.got.Period != tc.wantPeriod {
				t.Fatalf("unexpected request: %+v", svc.got)
			}
			if (svc.got.Metrics == nil) != (tc.wantMetrics == nil) || len(svc.got.Metrics) != len(tc.wantMetrics) {
				t.Fatalf("metrics=%#v, want %#v", svc.got.Metrics, tc.wantMetrics)
			}
			for i := range tc.wantMetrics {
				if svc.got.Metrics[i] != tc.wantMetrics[i] {
					t.Fatalf("metrics=%v, want %v", svc.got.Metrics, tc.wantMetrics)
				}
			}
		})
	}
}

func TestGetMetrics_MissingRequiredParams(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		wantMsg string
	}{
		{name: "nothing", query: "", wantMsg: "missing field ticker"},
		{name: "no ticker", query: "?period=Q4", wantMsg: "missing field ticker"},
		{name: "no period", query: "?ticker=AAPL&metrics=net_margin", wantMsg: "missing field period"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockMetricsService{resp: &models.FinancialMetrics{}}
			r := setupRouterWithMock(svc)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/metrics"+tc.query, nil))
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d (%s)", w.Code, w.Body.String())
			}
			var out dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if !strings.Contains(out.Message, tc.wantMsg) {
				t.Fatalf("message=%q, want it to contain %q", out.Message, tc.wantMsg)
			}
			if svc.calls != 0 {
				t.Fatalf("service should not be called, got %+v", svc.got)
			}
		})
	}
}

func TestListCommands(t *testing.T) {
	r := setupRouterWithMock(fixedService())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/commands", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var out dto.CommandList
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out.Commands) != 1 || out.Commands[0] != "get_financial_metrics" {
		t.Fatalf("unexpected commands: %v", out.Commands)
	}
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&bridge.CommandError{Kind: bridge.KindUnknownCommand}, http.StatusNotFound},
		{&bridge.CommandError{Kind: bridge.KindInvalidArgs}, http.StatusBadRequest},
		{&bridge.CommandError{Kind: bridge.KindFailed}, http.StatusUnprocessableEntity},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := statusFor(c.err); got != c.want {
			t.Fatalf("statusFor(%v)=%d, want %d", c.err, got, c.want)
		}
	}
}
