package ai

import (
	"errors"
	"fmt"
)

// ErrUnavailable means the model endpoint could not be reached at all.
var ErrUnavailable = errors.New("model endpoint unreachable")

// ErrMalformedResponse means the model endpoint answered 2xx but the body
// did not match the expected JSON shape. The raw body is logged by the
// client, never carried in the error.
var ErrMalformedResponse = errors.New("malformed model response")

// StatusError is a non-2xx reply from the model endpoint. 429 and 402 are
// passed through to callers; everything else maps to a gateway failure.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("model endpoint returned %d", e.Code)
}
