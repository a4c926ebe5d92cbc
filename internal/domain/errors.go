// Package domain defines domain-specific errors.
// These errors represent dialog outcomes and are independent of any backend.
package domain

import (
	"errors"
	"fmt"
)

// Common errors that dialog calls can return.
var (
	// ErrCancelled is returned when the user dismisses a dialog without
	// making a selection.
	ErrCancelled = errors.New("dialog cancelled")

	// ErrNoImplementation is returned when no usable dialog backend exists
	// on the running system.
	ErrNoImplementation = errors.New("no file dialog implementation found")

	// ErrUnknownPicker is returned when a preference list names only
	// backends this build does not know.
	ErrUnknownPicker = errors.New("unknown picker")
)

// DialogError represents a failure reported by a dialog backend.
// This wraps helper-process and IPC errors with additional context.
type DialogError struct {
	Picker  string // Backend name (e.g. "kdialog", "portal")
	Op      string // Operation that failed (e.g. "open_file")
	Message string // Error message
	Err     error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DialogError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("picker %s: %s failed: %s", e.Picker, e.Op, e.Message)
	}
	return fmt.Sprintf("picker %s: %s", e.Picker, e.Message)
}

// Unwrap returns the underlying error.
func (e *DialogError) Unwrap() error {
	return e.Err
}

// NewDialogError creates a new DialogError.
func NewDialogError(picker, op, message string, err error) *DialogError {
	return &DialogError{
		Picker:  picker,
		Op:      op,
		Message: message,
		Err:     err,
	}
}
