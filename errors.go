package halfvec

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroNorm is returned by CosineSimilarity when one or both input
	// vectors have a zero L2 norm, leaving the ratio undefined.
	ErrZeroNorm = errors.New("cannot compute cosine similarity of zero-norm vector")
)

// ErrInvalidDimension indicates a non-positive dimension argument.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidDimension struct {
	Dimension int
	cause     error
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return e.cause }

// ErrDimensionMismatch indicates a vector shorter than the stated dimension.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }
