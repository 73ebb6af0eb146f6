// Package context provides context utilities for tool-call tracking
package context

import (
	stdctx "context"

	"github.com/google/uuid"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey int

const (
	// CallIDKey is the context key for tool-call IDs
	CallIDKey contextKey = iota
)

// NewCallID generates a new unique tool-call ID
func NewCallID() string {
	return uuid.New().String()
}

// WithCallID adds a call ID to the context
func WithCallID(parent stdctx.Context, callID string) stdctx.Context {
	return stdctx.WithValue(parent, CallIDKey, callID)
}

// CallIDFromContext extracts the call ID from the context
func CallIDFromContext(ctx stdctx.Context) string {
	if ctx == nil {
		return ""
	}
	if callID, ok := ctx.Value(CallIDKey).(string); ok {
		return callID
	}
	return ""
}
