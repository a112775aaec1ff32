// Package apperr defines stable error codes for every failure mode surfaced
// to the user, so callers and tests can branch on codes instead of message
// text.
package apperr

import (
	"errors"
	"fmt"
)

// Code is a stable machine-readable error code.
type Code string

const (
	// ParseFailure indicates the source could not be parsed into a tree.
	// Fatal for the current invocation; no partial results are produced.
	ParseFailure Code = "PARSE_FAILURE"
	// NoActiveTarget indicates no document is available to analyze.
	NoActiveTarget Code = "NO_ACTIVE_TARGET"
	// UnsavedPrecondition indicates the target has unpersisted edits and the
	// caller declined to save first.
	UnsavedPrecondition Code = "UNSAVED_PRECONDITION"
	// ConfigMissing indicates the external linter has no discoverable
	// configuration. Lints are skipped entirely; this is not a lint failure.
	ConfigMissing Code = "CONFIG_MISSING"
	// ApplyFailure indicates a text replacement or persist step failed at the
	// host boundary.
	ApplyFailure Code = "APPLY_FAILURE"
	// Internal indicates an unexpected error.
	Internal Code = "INTERNAL_ERROR"
)

// Error is a structured error carrying a stable code and a short message
// identifying the failing stage.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`

	wrapped error
}

// New creates an Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	e := &Error{Code: code, Message: message, wrapped: cause}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.wrapped
}

// CodeOf extracts the Code from err, or Internal if err carries none.
func CodeOf(err error) Code {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return Internal
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}
