package invoice

import (
	"errors"
	"fmt"
)

// Common invoice pipeline errors
var (
	// ErrUnknownField is returned when a session field key is not recognized.
	ErrUnknownField = errors.New("unknown invoice field")

	// ErrItemNotFound is returned when a line-item ID does not exist in the
	// current invoice.
	ErrItemNotFound = errors.New("line item not found")

	// ErrUnknownItemField is returned when a line-item field name is not
	// recognized.
	ErrUnknownItemField = errors.New("unknown line item field")

	// ErrImageUnreadable is returned when an image path cannot be opened or
	// decoded. It is recovered per block during rendering.
	ErrImageUnreadable = errors.New("image file unreadable")

	// ErrInvalidTemplate is returned when a template fails validation on save.
	ErrInvalidTemplate = errors.New("invalid template")

	// ErrTemplateNotFound is returned when a template file does not exist.
	ErrTemplateNotFound = errors.New("template file not found")
)

// RenderError wraps fatal document generation failures with the operation
// that failed.
type RenderError struct {
	// Op is the operation that failed (e.g., "Render", "WriteOutput").
	Op string

	// Err is the underlying error.
	Err error

	// Details provides additional context about the failure.
	Details string
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("render: %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("render: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *RenderError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling.
func (e *RenderError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewRenderError creates a new RenderError with the specified operation and
// underlying error.
func NewRenderError(op string, err error, details string) *RenderError {
	return &RenderError{
		Op:      op,
		Err:     err,
		Details: details,
	}
}

// WrapRenderError wraps an error as a RenderError if it isn't already one.
func WrapRenderError(op string, err error, details string) error {
	if err == nil {
		return nil
	}

	var renderErr *RenderError
	if errors.As(err, &renderErr) {
		return err // Already wrapped
	}

	return NewRenderError(op, err, details)
}
