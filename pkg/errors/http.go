package errors

import "fmt"

// HTTPError is a display-ready error with an HTTP status attached.
// Delivery layers translate domain errors into these; nothing below the
// delivery layer should construct one.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}
