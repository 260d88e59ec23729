package errors

// represents a standardized error response
type ErrorResponse struct {
	Error   string `json:"error"`             // user-facing message
	Code    string `json:"code"`              // machine-readable code (e.g., "not_found")
	Details string `json:"details,omitempty"` // optional details (sanitized in production)
}
