// Package tools implements the callable tool surface: parameter
// validation, dispatch over the station directory and archive, and the
// uniform response envelope handed back to the calling runtime.
package tools

import (
	"errors"

	"github.com/atmoshq/weatherdesk/errs"
)

// Response statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ErrorBody carries a stable error kind plus a human-readable message.
// Callers branch on Kind only.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Response is the uniform envelope every tool returns.
type Response struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  *ErrorBody  `json:"error,omitempty"`
}

// OK wraps a successful result.
func OK(data interface{}) Response {
	return Response{Status: StatusOK, Data: data}
}

// Fail wraps a failure, preserving the error kind unchanged.
func Fail(err error) Response {
	kind := errs.DownstreamQueryError
	message := err.Error()

	var e *errs.Error
	if errors.As(err, &e) {
		kind = e.Kind
		message = e.Message
		if e.Err != nil {
			message += ": " + e.Err.Error()
		}
	}

	return Response{
		Status: StatusError,
		Error:  &ErrorBody{Kind: string(kind), Message: message},
	}
}
