// Package di provides dependency injection factories for creating application components.
package di

import (
	"stock_screener/internal/platform/externalapi/yahoo"
	infrahttp "stock_screener/internal/platform/http"
)

// NewMarket creates a fully configured YahooMarket with HTTP client.
func NewMarket() *yahoo.YahooMarket {
	cfg := yahoo.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return yahoo.NewYahooMarket(cfg, httpClient)
}
