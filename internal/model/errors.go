package model

import (
	"errors"
	"fmt"
)

// Structural errors wrapped by LayoutError.
var (
	// ErrRaggedTable is returned when a table row has a different number of
	// cells than the table has columns.
	ErrRaggedTable = errors.New("table row length does not match column count")

	// ErrEmptyTable is returned for a table without rows or columns.
	ErrEmptyTable = errors.New("table has no rows or columns")

	// ErrBadColumnWidth is returned for a non-positive column width.
	ErrBadColumnWidth = errors.New("table column width must be positive")

	// ErrCellOutOfRange is returned when a table command addresses cells
	// outside the table.
	ErrCellOutOfRange = errors.New("table command cell out of range")

	// ErrUnknownStyle is returned when an element references a style the
	// document's sheet does not define.
	ErrUnknownStyle = errors.New("unknown style")

	// ErrNegativeSpacer is returned for a spacer with a negative height.
	ErrNegativeSpacer = errors.New("spacer height must not be negative")

	// ErrElementTooTall is returned by writers when an element cannot fit on
	// an empty page.
	ErrElementTooTall = errors.New("element does not fit on a page")
)

// ErrInvalidTransition is returned by Run.Advance for a transition the run
// state machine does not allow.
var ErrInvalidTransition = errors.New("invalid run state transition")

// LayoutError reports an element the layout engine cannot place.
type LayoutError struct {
	// Index is the element's position in the document, or -1 when the
	// failure is not tied to one element.
	Index int

	// Kind is the element kind.
	Kind Kind

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *LayoutError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("layout error: %v", e.Err)
	}
	return fmt.Sprintf("layout error: element %d (%s): %v", e.Index, e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LayoutError) Unwrap() error {
	return e.Err
}

// IOError reports a failure to write the rendered document.
type IOError struct {
	// Op is the failed operation, e.g. "create", "write", "rename".
	Op string

	// Path is the file the operation was applied to.
	Path string

	// Err is the underlying cause, usually an *fs.PathError.
	Err error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("i/o error: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *IOError) Unwrap() error {
	return e.Err
}
