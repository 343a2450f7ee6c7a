package models

// ErrorResponse is the standard error envelope returned by every endpoint.
type ErrorResponse struct {
	Status  int    `json:"status"`  // HTTP status code
	Message string `json:"message"` // human-readable detail
}
