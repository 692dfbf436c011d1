// Package sparsevec provides distance functions over sparse float32
// vectors stored as sorted (index, value) pairs.
package sparsevec

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

var (
	// ErrZeroNorm is returned by CosineSimilarity when one or both input
	// vectors have a zero L2 norm.
	ErrZeroNorm = errors.New("cannot compute cosine similarity of zero-norm vector")
)

// ErrInvalidVector indicates a malformed sparse vector.
type ErrInvalidVector struct {
	Reason string
}

func (e *ErrInvalidVector) Error() string {
	return fmt.Sprintf("invalid sparse vector: %s", e.Reason)
}

// ErrDimensionMismatch indicates operands of different dimensionality.
type ErrDimensionMismatch struct {
	Expected int32
	Actual   int32
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Vector is a sparse float32 vector. Indices are strictly increasing and
// in [0, Dim). Indices and Values are borrowed views over caller-managed
// memory; the package never mutates them.
type Vector struct {
	Dim     int32
	Indices []int32
	Values  []float32
}

// New validates and wraps a sparse vector.
func New(dim int32, indices []int32, values []float32) (*Vector, error) {
	if dim <= 0 {
		return nil, &ErrInvalidVector{Reason: fmt.Sprintf("non-positive dimension %d", dim)}
	}
	if len(indices) != len(values) {
		return nil, &ErrInvalidVector{Reason: fmt.Sprintf("%d indices for %d values", len(indices), len(values))}
	}
	for i, idx := range indices {
		if idx < 0 || idx >= dim {
			return nil, &ErrInvalidVector{Reason: fmt.Sprintf("index %d out of range [0,%d)", idx, dim)}
		}
		if i > 0 && idx <= indices[i-1] {
			return nil, &ErrInvalidVector{Reason: "indices not strictly increasing"}
		}
	}
	return &Vector{Dim: dim, Indices: indices, Values: values}, nil
}

// L2SquaredDistance returns the squared Euclidean distance between a and b.
func L2SquaredDistance(a, b *Vector) (float32, error) {
	if a.Dim != b.Dim {
		return 0, &ErrDimensionMismatch{Expected: a.Dim, Actual: b.Dim}
	}
	var distance float32
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			d := a.Values[i] - b.Values[j]
			distance += d * d
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			distance += a.Values[i] * a.Values[i]
			i++
		default:
			distance += b.Values[j] * b.Values[j]
			j++
		}
	}
	for ; i < len(a.Indices); i++ {
		distance += a.Values[i] * a.Values[i]
	}
	for ; j < len(b.Indices); j++ {
		distance += b.Values[j] * b.Values[j]
	}
	return distance, nil
}

// InnerProduct returns the inner product of a and b. Only positions
// present in both vectors contribute.
func InnerProduct(a, b *Vector) (float32, error) {
	if a.Dim != b.Dim {
		return 0, &ErrDimensionMismatch{Expected: a.Dim, Actual: b.Dim}
	}
	var ret float32
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			ret += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return ret, nil
}

// L1Distance returns the Manhattan distance between a and b.
func L1Distance(a, b *Vector) (float32, error) {
	if a.Dim != b.Dim {
		return 0, &ErrDimensionMismatch{Expected: a.Dim, Actual: b.Dim}
	}
	var distance float32
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			distance += math32.Abs(a.Values[i] - b.Values[j])
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			distance += math32.Abs(a.Values[i])
			i++
		default:
			distance += math32.Abs(b.Values[j])
			j++
		}
	}
	for ; i < len(a.Indices); i++ {
		distance += math32.Abs(a.Values[i])
	}
	for ; j < len(b.Indices); j++ {
		distance += math32.Abs(b.Values[j])
	}
	return distance, nil
}

// CosineSimilarity returns the cosine of the angle between a and b.
// Accumulates in float32, forms the ratio in float64. Fails with
// ErrZeroNorm when either operand's norm is zero.
func CosineSimilarity(a, b *Vector) (float64, error) {
	if a.Dim != b.Dim {
		return 0, &ErrDimensionMismatch{Expected: a.Dim, Actual: b.Dim}
	}
	dot, err := InnerProduct(a, b)
	if err != nil {
		return 0, err
	}
	var normA, normB float32
	for _, v := range a.Values {
		normA += v * v
	}
	for _, v := range b.Values {
		normB += v * v
	}
	if normA == 0 || normB == 0 {
		return 0, ErrZeroNorm
	}
	return float64(dot) / float64(math32.Sqrt(normA)*math32.Sqrt(normB)), nil
}
