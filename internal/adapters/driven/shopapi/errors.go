package shopapi

import (
	"errors"
	"fmt"
)

// Gateway errors form the fetch pipeline's taxonomy. None of them are
// retried at this layer.
var (
	// ErrInvalidBaseURL indicates the configured base URL cannot be
	// combined into a request URL.
	ErrInvalidBaseURL = errors.New("invalid base URL")

	// ErrUnreachable indicates a connectivity or timeout failure talking
	// to the endpoint. The transport cause is attached via wrapping.
	ErrUnreachable = errors.New("shop endpoint unreachable")

	// ErrDecode indicates the response body does not match the expected
	// document shape. Distinct from ErrUnreachable: the server answered,
	// the payload is broken.
	ErrDecode = errors.New("malformed shop document")
)

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	// Code is the HTTP status code.
	Code int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("shop endpoint returned status %d", e.Code)
}
