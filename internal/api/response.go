// Package api defines response types shared across HTTP handlers.
package api

// StatusResponse is the {code, message} acknowledgment returned by mutating endpoints.
// Code is "success" or "error".
type StatusResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the generic error body for validation and server failures.
type ErrorResponse struct {
	Error string `json:"error"`
}
