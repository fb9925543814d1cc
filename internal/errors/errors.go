// Package errors provides structured errors for displayreset components.
// Every error carries a category code, a human-readable message, and an
// optional suggestion so the CLI can render actionable output.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig  = "CONFIG"  // configuration file problems
	ErrDisplay = "DISPLAY" // unknown or invalid display identifier
	ErrProbe   = "PROBE"   // failed to read display state (modes, current mode)
	ErrTool    = "TOOL"    // external power-control utility problems
	ErrTxn     = "TXN"     // display configuration transaction failures
	ErrExec    = "EXEC"    // external process execution failures
)

// Error represents a structured error with code, message, suggestion, and
// optional cause. Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrProbe code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrProbe,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// Error implements the error interface with formatted multi-line output.
func (e *Error) Error() string {
	var b strings.Builder

	// First line: failure symbol + main message
	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	// Include cause if present (why it failed)
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	// Include suggestion if present (how to fix)
	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var drErr *Error
	if errors.As(err, &drErr) {
		return drErr.Code == code
	}
	return false
}

// Summary returns the one-line message without the multi-line decoration,
// suitable for log streams and JSON payloads.
func Summary(err error) string {
	if err == nil {
		return ""
	}
	var drErr *Error
	if errors.As(err, &drErr) {
		if drErr.Cause != nil {
			return fmt.Sprintf("%s: %s", drErr.Message, drErr.Cause.Error())
		}
		return drErr.Message
	}
	return err.Error()
}
