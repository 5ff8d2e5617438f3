package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyIntentVector signals an intent vector with no components.
	ErrEmptyIntentVector = errors.New("intent vector is empty")
	// ErrDimensionMismatch signals an intent vector whose length differs
	// from the reference vector dimension.
	ErrDimensionMismatch = errors.New("intent vector dimension mismatch")
	// ErrInvalidEngineConfig signals a rejected engine configuration.
	ErrInvalidEngineConfig = errors.New("invalid engine configuration")
)

// DimensionMismatchError wraps ErrDimensionMismatch with both dimensions
// so the caller can correct the request.
type DimensionMismatchError struct {
	Expected int
	Received int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %d, received %d", ErrDimensionMismatch.Error(), e.Expected, e.Received)
}

func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }

// NewDimensionMismatch creates a dimension mismatch error.
func NewDimensionMismatch(expected, received int) error {
	return &DimensionMismatchError{Expected: expected, Received: received}
}
