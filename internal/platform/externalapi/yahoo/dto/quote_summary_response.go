// Package dto defines data transfer objects for the Yahoo Finance API responses.
package dto

// Value is Yahoo's {raw, fmt} wrapper around a numeric field.
type Value struct {
	Raw float64 `json:"raw"`
	Fmt string  `json:"fmt,omitempty"`
}

// SummaryDetail carries the metric fields consumed by the enrichment.
// Pointers distinguish omitted fields from zero values.
type SummaryDetail struct {
	PreviousClose        *Value `json:"previousClose"`
	ForwardPE            *Value `json:"forwardPE"`
	FiftyDayAverage      *Value `json:"fiftyDayAverage"`
	TwoHundredDayAverage *Value `json:"twoHundredDayAverage"`
	DividendYield        *Value `json:"dividendYield"`
}

// APIError is the error object Yahoo returns inside the response envelope.
type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// QuoteSummaryResponse represents the JSON response from the quoteSummary
// endpoint restricted to the summaryDetail module.
type QuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			SummaryDetail SummaryDetail `json:"summaryDetail"`
		} `json:"result"`
		Error *APIError `json:"error"`
	} `json:"quoteSummary"`
}
