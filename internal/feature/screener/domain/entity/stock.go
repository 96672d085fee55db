// Package entity defines the domain models for the screener feature.
package entity

// Stock represents a tracked ticker symbol and its last-known market metrics.
// The metric fields are nil until the first successful enrichment and are
// overwritten in place on every subsequent one.
type Stock struct {
	ID            uint     // Store-assigned identifier, never reused
	Symbol        string   // Ticker symbol (e.g., "AAPL"), immutable after creation
	Price         *float64 // Previous close price
	ForwardPE     *float64 // Forward price/earnings ratio
	MA50          *float64 // 50-day simple moving average
	MA200         *float64 // 200-day simple moving average
	DividendYield *float64 // Dividend yield as a percentage (0.00 when the source reports none)
}

// Metrics is the snapshot of market metrics written back by an enrichment.
// All five fields are set together in a single pass.
type Metrics struct {
	Price         float64
	ForwardPE     float64
	MA50          float64
	MA200         float64
	DividendYield float64 // percentage, already scaled x100
}

// SummaryDetail is the subset of the market data provider's summary module
// that the enrichment consumes. DividendYield is nil when the provider omits
// it; the other fields are required and their absence is a provider error.
type SummaryDetail struct {
	PreviousClose        float64
	ForwardPE            float64
	FiftyDayAverage      float64
	TwoHundredDayAverage float64
	DividendYield        *float64 // fraction (e.g., 0.0065), not yet scaled
}
