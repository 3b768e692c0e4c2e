// Package apierr defines the tagged error values the service facade
// returns. Every failure crosses the facade boundary as a value of this
// type; nothing escapes as a panic or an untyped error.
package apierr

import (
	"errors"
	"fmt"
	"time"
)

// Kind is the machine-readable error category.
type Kind string

const (
	KindValidation Kind = "VALIDATION_ERROR"
	KindNotFound   Kind = "NOT_FOUND"
	KindServer     Kind = "SERVER_ERROR"
	KindProcessing Kind = "PROCESSING_ERROR"
)

// Error is a tagged API error: kind, human-readable message, optional
// structured details, and the moment it was raised.
type Error struct {
	Kind      Kind
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

func (e *Error) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s (%d detail fields)", e.Kind, e.Message, len(e.Details))
}

// Validation builds a VALIDATION_ERROR with one detail entry per offending
// field.
func Validation(message string, details map[string]string) *Error {
	return &Error{
		Kind:      KindValidation,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NotFound builds a NOT_FOUND error for a single-entity lookup miss.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message, Timestamp: time.Now().UTC()}
}

// Server builds a SERVER_ERROR, the shape a real backend's transient
// failure would have.
func Server(message string) *Error {
	return &Error{Kind: KindServer, Message: message, Timestamp: time.Now().UTC()}
}

// Processing builds a PROCESSING_ERROR for a failed regeneration or other
// internal processing fault.
func Processing(message string) *Error {
	return &Error{Kind: KindProcessing, Message: message, Timestamp: time.Now().UTC()}
}

// As unwraps err into an *Error if it is one.
func As(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Kind == kind
}
