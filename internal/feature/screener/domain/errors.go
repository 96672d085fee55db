// Package domain defines domain-level errors for the screener feature.
package domain

import "errors"

// Domain errors for stock tracking operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrStockNotFound indicates that no stock exists with the given ID.
	// Returned by delete and enrichment when the record is absent.
	ErrStockNotFound = errors.New("stock not found")
)
