package users

import (
	"errors"
	"fmt"
)

// NetworkError reports a transport-level failure reaching the API: DNS
// resolution, refused connections, timeouts and the like.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("Network error while calling API: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPStatusError reports a response whose status code is not 200.
type HTTPStatusError struct {
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("API returned status code %d", e.StatusCode)
}

// DecodeError reports a response body that is not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "Failed to parse JSON response"
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// SchemaError reports valid JSON that is not a non-empty array.
type SchemaError struct {
	// Kind is a short description of what was received instead, used in logs.
	Kind string
}

func (e *SchemaError) Error() string {
	return "API returned empty or unexpected data"
}

// UsageError reports an invalid filter argument.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// IsReportable reports whether err is one of the expected failures of a run,
// which are shown to the user as a one-line message instead of a crash.
func IsReportable(err error) bool {
	var (
		networkErr *NetworkError
		statusErr  *HTTPStatusError
		decodeErr  *DecodeError
		schemaErr  *SchemaError
		usageErr   *UsageError
	)
	return errors.As(err, &networkErr) ||
		errors.As(err, &statusErr) ||
		errors.As(err, &decodeErr) ||
		errors.As(err, &schemaErr) ||
		errors.As(err, &usageErr)
}
