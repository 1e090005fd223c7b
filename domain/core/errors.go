package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrType covers every type violation: non-numeric values where
	// arithmetic is required, unorderable values in sort-dependent
	// operations, and invalid dataset handles.
	ErrType = errors.New("type violation")

	// ErrShape is returned when the equal-column-length invariant breaks.
	ErrShape = errors.New("dataset shape mismatch")

	// ErrNotFound is returned for lookups of unknown columns.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument is returned for unknown method selectors.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Error constructors with context

func NewTypeError(op, detail string) error {
	return fmt.Errorf("%w in %s: %s", ErrType, op, detail)
}

func NewShapeError(detail string) error {
	return fmt.Errorf("%w: %s", ErrShape, detail)
}

func NewColumnNotFound(name string) error {
	return fmt.Errorf("%w: column %q", ErrNotFound, name)
}

func NewInvalidArgument(what, got string) error {
	return fmt.Errorf("%w: unsupported %s %q", ErrInvalidArgument, what, got)
}

// Error checking helpers

func IsTypeError(err error) bool {
	return errors.Is(err, ErrType)
}

func IsShapeError(err error) bool {
	return errors.Is(err, ErrShape)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
