// Package halfmath provides distance kernels over binary16 vectors.
//
// Every kernel promotes each element pair to float32 through the f16
// conversion layer and accumulates strictly left to right over the
// dimension index, so results are reproducible bit-for-bit across runs on
// the same hardware. The amd64 build rebinds the kernels with variants
// that widen eight elements at a time through F16C while keeping the same
// accumulation order.
package halfmath

import (
	"github.com/chewxy/math32"

	"github.com/hupe1980/halfvec/internal/f16"
)

// Kernel function pointers - set once at init, zero runtime overhead.
// Platform-specific init() overrides them when the F16C conversion
// strategy is active.
var (
	kernelL2Squared   = l2SquaredGeneric
	kernelDot         = dotGeneric
	kernelL1          = l1Generic
	kernelCosineTerms = cosineTermsGeneric
)

// L2Squared returns the squared Euclidean distance between a and b.
//
// SAFETY: Assumes len(a) == len(b). Caller MUST ensure lengths match.
func L2Squared(a, b []f16.Bits) float32 {
	return kernelL2Squared(a, b)
}

// Dot returns the inner product of a and b.
//
// SAFETY: Assumes len(a) == len(b). Caller MUST ensure lengths match.
func Dot(a, b []f16.Bits) float32 {
	return kernelDot(a, b)
}

// L1 returns the Manhattan distance between a and b.
//
// SAFETY: Assumes len(a) == len(b). Caller MUST ensure lengths match.
func L1(a, b []f16.Bits) float32 {
	return kernelL1(a, b)
}

// CosineTerms returns the inner product and the squared norms of a and b,
// accumulated in a single pass. The caller combines them into the cosine
// ratio and decides the zero-norm policy.
//
// SAFETY: Assumes len(a) == len(b). Caller MUST ensure lengths match.
func CosineTerms(a, b []f16.Bits) (dot, normA, normB float32) {
	return kernelCosineTerms(a, b)
}

// L2SquaredBatch computes the squared L2 distance between query and each
// dim-sized row of targets, writing one result per row into out.
//
// SAFETY: Assumes len(query) == dim and len(targets) >= dim*len(out).
func L2SquaredBatch(query []f16.Bits, targets []f16.Bits, dim int, out []float32) {
	for i := range out {
		offset := i * dim
		out[i] = kernelL2Squared(query, targets[offset:offset+dim])
	}
}

// DotBatch computes the inner product between query and each dim-sized row
// of targets, writing one result per row into out.
//
// SAFETY: Assumes len(query) == dim and len(targets) >= dim*len(out).
func DotBatch(query []f16.Bits, targets []f16.Bits, dim int, out []float32) {
	for i := range out {
		offset := i * dim
		out[i] = kernelDot(query, targets[offset:offset+dim])
	}
}

// ============================================================================
// Generic implementations (per-element conversion)
// ============================================================================

func l2SquaredGeneric(a, b []f16.Bits) float32 {
	var distance float32
	for i := range a {
		d := f16.ToFloat32(a[i]) - f16.ToFloat32(b[i])
		distance += d * d
	}
	return distance
}

func dotGeneric(a, b []f16.Bits) float32 {
	var ret float32
	for i := range a {
		ret += f16.ToFloat32(a[i]) * f16.ToFloat32(b[i])
	}
	return ret
}

func l1Generic(a, b []f16.Bits) float32 {
	var distance float32
	for i := range a {
		distance += math32.Abs(f16.ToFloat32(a[i]) - f16.ToFloat32(b[i]))
	}
	return distance
}

func cosineTermsGeneric(a, b []f16.Bits) (dot, normA, normB float32) {
	for i := range a {
		av := f16.ToFloat32(a[i])
		bv := f16.ToFloat32(b[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}
	return dot, normA, normB
}
