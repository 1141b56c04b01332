package common

// OKResponse is the body of every successful contact submission, including
// ones dropped by the honeypot
type OKResponse struct {
	OK bool `json:"ok"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// Client-visible error messages
const (
	MsgMethodNotAllowed = "Method not allowed"
	MsgMissingFields    = "Missing required fields"
	MsgSendFailed       = "Failed to send message"
	MsgInternal         = "Internal server error"
)

// NewOKResponse creates the {"ok":true} body
func NewOKResponse() OKResponse {
	return OKResponse{OK: true}
}

// NewErrorResponse creates an error body; details are omitted when nil
func NewErrorResponse(message string, details interface{}) ErrorResponse {
	return ErrorResponse{
		Error:   message,
		Details: details,
	}
}
