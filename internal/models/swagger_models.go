package models

// NotImplementedDetail is returned by every search endpoint of this server.
const NotImplementedDetail = "This is a documentation server. Please use the official API."

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	Detail string `json:"detail"`
}
