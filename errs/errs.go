// Package errs defines the error kinds shared by the tool core.
// Callers branch on Kind, never on message text.
package errs

import (
	"errors"
	"fmt"
)

// Kind is a stable error-kind identifier carried across the response envelope.
type Kind string

const (
	// InvalidParameters marks malformed or missing tool arguments.
	InvalidParameters Kind = "InvalidParameters"
	// InvalidDateRange marks a malformed range or one outside coverage/span limits.
	InvalidDateRange Kind = "InvalidDateRange"
	// StationNotFound marks a city that resolves to no station.
	StationNotFound Kind = "StationNotFound"
	// AmbiguousCity marks a city that matches multiple stations equally well.
	AmbiguousCity Kind = "AmbiguousCity"
	// NoDataInRange marks a resolved query for which the archive holds no usable row.
	NoDataInRange Kind = "NoDataInRange"
	// DownstreamQueryError marks an unavailable archive or exhausted retries.
	DownstreamQueryError Kind = "DownstreamQueryError"
)

// Error is a kinded error. Components return *Error for contract failures so
// the dispatcher can propagate the kind unchanged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a kinded error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a kinded error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a kinded error around an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// Is reports whether the error chain carries the given kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
