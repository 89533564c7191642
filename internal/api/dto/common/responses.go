package common

import "time"

// SubmitResponse is returned when a contact submission was accepted.
type SubmitResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Details SubmitDetails `json:"details"`
}

// SubmitDetails reports the outcome of the two independent email dispatches.
type SubmitDetails struct {
	NotificationSent bool `json:"notificationSent"`
	ConfirmationSent bool `json:"confirmationSent"`
}

// ValidationErrorResponse is returned for malformed bodies and field-level
// validation failures. Fields maps field name to a human-readable message.
type ValidationErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// RateLimitErrorResponse is returned when a client is throttled.
type RateLimitErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retryAfter"` // seconds
}

// ServerErrorResponse is the generic 500 payload.
type ServerErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// NewServerErrorResponse builds a 500 payload stamped with the current time.
func NewServerErrorResponse(errorCode, message string) ServerErrorResponse {
	return ServerErrorResponse{
		Error:     errorCode,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Standard error identifiers used in the "error" field of error responses.
const (
	ErrValidation       = "VALIDATION_ERROR"
	ErrBadRequest       = "BAD_REQUEST"
	ErrTooManyRequests  = "TOO_MANY_REQUESTS"
	ErrMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrEmailDelivery    = "EMAIL_DELIVERY_FAILED"
)
