package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewYahooMarket(t *testing.T) {
	t.Parallel()

	cfg := Config{
		BaseURL: "https://api.test.com",
		Timeout: 10 * time.Second,
	}
	client := &http.Client{}

	market := NewYahooMarket(cfg, client)

	if market == nil {
		t.Fatal("expected non-nil market")
	}
	if market.cfg.BaseURL != cfg.BaseURL {
		t.Errorf("expected base URL %q, got %q", cfg.BaseURL, market.cfg.BaseURL)
	}
}

func TestYahooMarket_GetSummaryDetail_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request path and parameters
		if !strings.HasPrefix(r.URL.Path, "/v10/finance/quoteSummary/AAPL") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("modules") != "summaryDetail" {
			t.Errorf("expected modules summaryDetail, got %s", r.URL.Query().Get("modules"))
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("expected a User-Agent header")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"quoteSummary": {
				"result": [
					{
						"summaryDetail": {
							"previousClose": {"raw": 190.5, "fmt": "190.50"},
							"forwardPE": {"raw": 28.1, "fmt": "28.10"},
							"fiftyDayAverage": {"raw": 185.2, "fmt": "185.20"},
							"twoHundredDayAverage": {"raw": 180.9, "fmt": "180.90"},
							"dividendYield": {"raw": 0.0055, "fmt": "0.55%"}
						}
					}
				],
				"error": null
			}
		}`))
	}))
	defer server.Close()

	cfg := Config{BaseURL: server.URL}
	market := NewYahooMarket(cfg, server.Client())

	detail, err := market.GetSummaryDetail(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if detail.PreviousClose != 190.5 {
		t.Errorf("expected previous close 190.5, got %f", detail.PreviousClose)
	}
	if detail.ForwardPE != 28.1 {
		t.Errorf("expected forward PE 28.1, got %f", detail.ForwardPE)
	}
	if detail.FiftyDayAverage != 185.2 {
		t.Errorf("expected 50-day average 185.2, got %f", detail.FiftyDayAverage)
	}
	if detail.TwoHundredDayAverage != 180.9 {
		t.Errorf("expected 200-day average 180.9, got %f", detail.TwoHundredDayAverage)
	}
	if detail.DividendYield == nil {
		t.Fatal("expected dividend yield to be present")
	}
	if *detail.DividendYield != 0.0055 {
		t.Errorf("expected dividend yield fraction 0.0055, got %f", *detail.DividendYield)
	}
}

func TestYahooMarket_GetSummaryDetail_NoDividendYield(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"quoteSummary": {
				"result": [
					{
						"summaryDetail": {
							"previousClose": {"raw": 101.0},
							"forwardPE": {"raw": 55.3},
							"fiftyDayAverage": {"raw": 98.0},
							"twoHundredDayAverage": {"raw": 91.2}
						}
					}
				],
				"error": null
			}
		}`))
	}))
	defer server.Close()

	market := NewYahooMarket(Config{BaseURL: server.URL}, server.Client())

	detail, err := market.GetSummaryDetail(context.Background(), "TSLA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.DividendYield != nil {
		t.Errorf("expected nil dividend yield, got %f", *detail.DividendYield)
	}
}

func TestYahooMarket_GetSummaryDetail_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
	}{
		{"bad request", http.StatusBadRequest},
		{"unauthorized", http.StatusUnauthorized},
		{"not found", http.StatusNotFound},
		{"too many requests", http.StatusTooManyRequests},
		{"internal server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			market := NewYahooMarket(Config{BaseURL: server.URL}, server.Client())

			_, err := market.GetSummaryDetail(context.Background(), "AAPL")
			if err == nil {
				t.Fatal("expected error for HTTP status", tt.statusCode)
			}
		})
	}
}

func TestYahooMarket_GetSummaryDetail_APIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"quoteSummary": {
				"result": null,
				"error": {"code": "Not Found", "description": "Quote not found for ticker symbol: BOGUS"}
			}
		}`))
	}))
	defer server.Close()

	market := NewYahooMarket(Config{BaseURL: server.URL}, server.Client())

	_, err := market.GetSummaryDetail(context.Background(), "BOGUS")
	if err == nil {
		t.Fatal("expected error for provider error envelope")
	}
	if !strings.Contains(err.Error(), "Quote not found") {
		t.Errorf("expected provider description in error, got %v", err)
	}
}

func TestYahooMarket_GetSummaryDetail_EmptyResult(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"quoteSummary": {"result": [], "error": null}}`))
	}))
	defer server.Close()

	market := NewYahooMarket(Config{BaseURL: server.URL}, server.Client())

	_, err := market.GetSummaryDetail(context.Background(), "AAPL")
	if err == nil {
		t.Fatal("expected error for empty result")
	}
}

func TestYahooMarket_GetSummaryDetail_MissingRequiredField(t *testing.T) {
	t.Parallel()

	// forwardPEが欠けているレスポンス
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"quoteSummary": {
				"result": [
					{
						"summaryDetail": {
							"previousClose": {"raw": 190.5},
							"fiftyDayAverage": {"raw": 185.2},
							"twoHundredDayAverage": {"raw": 180.9}
						}
					}
				],
				"error": null
			}
		}`))
	}))
	defer server.Close()

	market := NewYahooMarket(Config{BaseURL: server.URL}, server.Client())

	_, err := market.GetSummaryDetail(context.Background(), "AAPL")
	if err == nil {
		t.Fatal("expected error for missing forwardPE")
	}
	if !strings.Contains(err.Error(), "forwardPE") {
		t.Errorf("expected missing field name in error, got %v", err)
	}
}

func TestYahooMarket_GetSummaryDetail_InvalidJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	market := NewYahooMarket(Config{BaseURL: server.URL}, server.Client())

	_, err := market.GetSummaryDetail(context.Background(), "AAPL")
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestLoadConfig_DefaultBaseURL(t *testing.T) {
	t.Setenv("YAHOO_BASE_URL", "")

	cfg := LoadConfig()

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected default base URL %q, got %q", DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.Timeout <= 0 {
		t.Error("expected a positive timeout")
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("YAHOO_BASE_URL", "https://proxy.internal")

	cfg := LoadConfig()

	if cfg.BaseURL != "https://proxy.internal" {
		t.Errorf("expected base URL from env, got %q", cfg.BaseURL)
	}
}
