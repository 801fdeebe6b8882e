package decoder

import (
	"errors"
	"fmt"
)

// ErrInvalidJSON is returned when response body is not valid JSON document.
var ErrInvalidJSON = errors.New("response body is not valid JSON")

// ErrNotArray is returned when payload expected to be a list is not JSON array.
var ErrNotArray = errors.New("payload is not JSON array")

// MalformedResponseError is returned when response body doesn't match expected schema.
type MalformedResponseError struct {
	Endpoint string
	Err      error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %s", e.Endpoint, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
