package dto

import "time"

// ErrorResponse is the standard JSON error body returned by every endpoint.
//
// Fields:
//   - Message: human-readable failure message. For command failures this is the
//     exact string produced by the command.
//   - ErrorDetails: optional detail taken from the underlying error.
//   - Timestamp: when the error response was built (UTC).
type ErrorResponse struct {
	Message      string    `json:"message" example:"unknown command \"foo\""`
	ErrorDetails string    `json:"error,omitempty" example:"invalid character '}' looking for beginning of value"`
	Timestamp    time.Time `json:"timestamp" example:"2025-01-01T00:00:00Z"`
}

// Error implements the error interface so ErrorResponse can be passed along as an error.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current time.
//
// Parameters:
//   - message (string): message shown to the caller.
//   - err (error): optional cause; its text is copied to ErrorDetails when non-nil.
//
// Returns:
//   - ErrorResponse: the populated response body.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
