package requester

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrTimeout matches any TimeoutError via errors.Is.
var ErrTimeout = errors.New("ensembledata: request timed out")

// APIError is the failure envelope: the API answered, but without a "data"
// field. Failed calls may still be billed, see UnitsCharged.
type APIError struct {
	StatusCode int
	Detail     string
	// UnitsCharged is 0 when the units_charged header is missing or not an integer.
	UnitsCharged int
}

func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "ensembledata: status %d", e.StatusCode)
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	fmt.Fprintf(&b, " (units charged: %d)", e.UnitsCharged)
	return b.String()
}

// TimeoutError reports that every attempt of a call timed out. No response was
// received, so nothing was billed.
type TimeoutError struct {
	Path     string
	Attempts int
	Timeout  time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("ensembledata: GET %s timed out after %d attempt(s) of %s", e.Path, e.Attempts, e.Timeout)
}

func (e *TimeoutError) Is(target error) bool { return target == ErrTimeout }

func (e *TimeoutError) Unwrap() error { return context.DeadlineExceeded }

// MalformedResponseError reports a response that is not a JSON object, or a
// JSON object carrying neither "data" nor "detail". It is never retried.
type MalformedResponseError struct {
	StatusCode   int
	UnitsCharged int
	// Body is the start of the response body, for diagnostics.
	Body []byte
	// Err is the decode error, if decoding failed.
	Err error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ensembledata: malformed response (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("ensembledata: malformed response (status %d): neither data nor detail present", e.StatusCode)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// TransportError reports an attempt that failed before a response was
// received for a reason other than its timeout (connection refused, TLS
// failure, ...). It is not retried. The request URL, which carries the
// credential, is never part of the error.
type TransportError struct {
	Path    string
	Attempt int
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ensembledata: GET %s (attempt %d): %v", e.Path, e.Attempt, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// AsAPIError extracts *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsTimeout reports whether err is an exhausted-retries timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
