package derivation

import (
	"errors"
	"fmt"
)

// Data-integrity failures. These indicate malformed input networks and
// abort the bulk operation that hit them.
var (
	ErrTwinNotFound = errors.New("twin od pair not found in target network")
	ErrLinkMissing  = errors.New("path references a link absent from the link table")
)

// Arithmetic-degeneracy failures
var (
	ErrZeroSourceDistance = errors.New("zero source path distance in plausibility check")
	ErrDegenerateScale    = errors.New("max_dist equals min_dist, interpolation scale undefined")
	ErrDegenerateSpan     = errors.New("zero interpolation span, coefficient undefined")
)

// ErrNegativeLinkLoad is returned under the RejectNegative capacity policy
// when a transfer would drive a link's original load below zero.
var ErrNegativeLinkLoad = errors.New("transfer would drive link original load negative")

// Error provides structured error information for derivation operations.
type Error struct {
	Op       string // Operation that failed (e.g. "Derive", "Eligible")
	ODID     string // OD pair id involved
	Category int    // OD pair category
	Cause    error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.ODID != "" {
		return fmt.Sprintf("%s od %s (category %d): %v", e.Op, e.ODID, e.Category, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}
