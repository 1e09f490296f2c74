// Package common holds the error taxonomy shared by the storage adapters,
// the file manager service and the HTTP handlers. Callers match kinds with
// IsKind instead of comparing messages.
package common

import (
	"fmt"

	errors "github.com/Laisky/errors/v2"
)

// Kind identifies a machine-stable error category.
type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindNotFound   Kind = "NOT_FOUND"
	KindIO         Kind = "IO"
	KindStore      Kind = "STORE"
)

// Error is a categorized failure with a message that is safe to show to users.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error returns the message, followed by the cause when one is attached.
func (e *Error) Error() string {
	if e == nil {
		return "shopdrive error: <nil>"
	}
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError constructs an error without a cause.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a kind and a user-facing message to err.
func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: errors.WithStack(err)}
}

// Validation, NotFound, IO and Store are shorthands used across the adapters.
func Validation(message string) *Error { return NewError(KindValidation, message) }

func NotFound(message string) *Error { return NewError(KindNotFound, message) }

func IO(err error, message string) *Error { return Wrap(KindIO, err, message) }

func Store(err error, message string) *Error { return Wrap(KindStore, err, message) }

// AsError extracts a categorized error from the chain.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var typed *Error
	if errors.As(err, &typed) {
		return typed, true
	}
	return nil, false
}

// IsKind reports whether the chain carries an error of the given kind.
func IsKind(err error, kind Kind) bool {
	typed, ok := AsError(err)
	return ok && typed.Kind == kind
}

// PublicMessage returns the message to surface to callers. Uncategorized
// errors collapse into a generic message so internals do not leak.
func PublicMessage(err error) string {
	if typed, ok := AsError(err); ok && typed.Message != "" {
		return typed.Message
	}
	return "Internal server error"
}
