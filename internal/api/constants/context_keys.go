package constants

// Context keys shared between middleware and handlers
const (
	// ContextKeyContact holds the decoded *contact.ContactRequest
	ContextKeyContact = "contact"

	// Request-scoped values
	ContextKeyRequestID = "RequestID"
	ContextKeyLogger    = "logger"
)
