package network

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrLinkNotFound    = errors.New("link not found")
	ErrODPairNotFound  = errors.New("od pair not found")
	ErrDuplicateLink   = errors.New("duplicate link")
	ErrDuplicateODPair = errors.New("duplicate od pair")
	ErrParamMissing    = errors.New("parameter missing")
	ErrBadODID         = errors.New("malformed od pair id")
	ErrBadPath         = errors.New("malformed path")
)

// Error provides structured error information for network operations.
type Error struct {
	Op     string // Operation that failed (e.g. "AddLink", "SetPath")
	Entity string // Entity type (e.g. "link", "od", "parameter")
	Key    string // Entity key (if applicable)
	Cause  error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Entity, e.Key, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
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
