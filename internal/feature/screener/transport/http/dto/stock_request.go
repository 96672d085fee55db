// Package dto defines data transfer objects for the screener feature's HTTP transport layer.
package dto

// CreateStockReq represents the request body for the POST /stock endpoint.
// It uses Gin's binding tags for validation.
type CreateStockReq struct {
	Symbol string `json:"symbol" binding:"required"`
}
