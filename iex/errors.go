package iex

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrResponseConsumed is returned when a Response is converted a second time.
var ErrResponseConsumed = errors.New("response already consumed")

// TransportError is returned when the body behind a URL could not be
// fetched: the connection failed or the service answered with a
// non-success status.
type TransportError struct {
	URL        string
	StatusCode int
	Status     string
	// Body is the error body sent by the service, if any.
	Body []byte
	Err  error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		if len(e.Body) > 0 {
			return fmt.Sprintf("transport: GET %s: HTTP %s: %s", e.URL, e.Status, e.Body)
		}
		return fmt.Sprintf("transport: GET %s: HTTP %s", e.URL, e.Status)
	}
	return fmt.Sprintf("transport: GET %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Temporary reports whether the status code suggests that the same request
// may succeed later. The client itself never retries.
func (e *TransportError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// SyntaxError is returned when a response body is not well-formed JSON.
type SyntaxError struct {
	// Offset is the byte offset of the error, when known.
	Offset int64
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("json syntax: offset %d: %v", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a field could not be coerced into its
// target type.
type DecodeError struct {
	// Field is the JSON key of the offending field. It is empty when the
	// failure is not attributable to a single field.
	Field string
	// Raw is the text that failed to decode. For plain type mismatches it
	// describes the JSON value kind instead (e.g. "string").
	Raw string
	Err error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode: cannot decode %q: %v", e.Raw, e.Err)
	}
	return fmt.Sprintf("decode: field %s: cannot decode %q: %v", e.Field, e.Raw, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
