package psigate

import (
	"errors"

	"github.com/matverse/psigate/internal/domain"
)

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrEmptyIntentVector   = domain.ErrEmptyIntentVector
	ErrDimensionMismatch   = domain.ErrDimensionMismatch
	ErrInvalidEngineConfig = domain.ErrInvalidEngineConfig
)

// DimensionMismatch extracts the expected and received dimensions from a
// dimension mismatch error. ok is false for any other error.
func DimensionMismatch(err error) (expected, received int, ok bool) {
	var dme *domain.DimensionMismatchError
	if errors.As(err, &dme) {
		return dme.Expected, dme.Received, true
	}
	return 0, 0, false
}
