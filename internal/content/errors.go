package content

import (
	"errors"
	"fmt"
)

// Reason classifies why a record could not be produced.
type Reason string

const (
	// ReasonNotConfigured means the content source identifiers are missing
	// or placeholders. No request was made.
	ReasonNotConfigured Reason = "not_configured"
	// ReasonNoRecord means the query matched nothing.
	ReasonNoRecord Reason = "no_record"
	// ReasonTransport covers network failures and non-2xx responses.
	ReasonTransport Reason = "transport"
	// ReasonDecode means the payload did not fit the record shape.
	ReasonDecode Reason = "decode"
	// ReasonInvalid means the record failed schema validation.
	ReasonInvalid Reason = "invalid"
)

var (
	ErrNotConfigured = errors.New("content source is not configured")
	ErrNoRecord      = errors.New("no matching record")
)

// FetchError is the absence signal returned by Fetch.
type FetchError struct {
	Query  string
	Reason Reason
	Err    error
}

// Error renders the query, reason and cause.
func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("content %s: %s", e.Query, e.Reason)
	}
	return fmt.Sprintf("content %s: %s: %v", e.Query, e.Reason, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Reported reports whether this failure is logged when it happens.
// Missing configuration and empty results are expected and stay silent.
func (e *FetchError) Reported() bool {
	switch e.Reason {
	case ReasonTransport, ReasonDecode, ReasonInvalid:
		return true
	default:
		return false
	}
}

// ReasonOf returns the reason carried by err, or "" when err is not a fetch
// failure.
func ReasonOf(err error) Reason {
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		return ""
	}
	return fetchErr.Reason
}

// IsAbsent reports whether err means the record is unavailable, whatever
// the reason.
func IsAbsent(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}
