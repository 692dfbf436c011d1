package halfvec

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/chewxy/math32"

	"github.com/hupe1980/halfvec/internal/f16"
	"github.com/hupe1980/halfvec/internal/halfmath"
)

// Half is a raw IEEE-754 binary16 bit-pattern (1 sign bit, 5 exponent
// bits, 10 mantissa bits). It is an alias of uint16 so callers holding
// wire or storage buffers can pass them without copying.
type Half = uint16

// Capability describes the conversion implementation bound for the life
// of the process.
type Capability struct {
	// Strategy is the bound conversion implementation ("portable" or "f16c").
	Strategy string
	// AccelerationCompiled reports whether the accelerated kernel is part
	// of this binary, regardless of whether the CPU can run it.
	AccelerationCompiled bool
	// HasF16C reports x86-64 F16C hardware support.
	HasF16C bool
	// HasFPHP reports ARM64 half-precision FP hardware support.
	HasFPHP bool
	// Overridden reports whether HALFVEC_SIMD forced the selection.
	Overridden bool
}

var initOnce sync.Once

// Init reports the conversion capability bound for this process.
//
// The capability probe and dispatch binding themselves run in package
// init, before any other code in this package, so calling Init is never
// required for correctness. It exists as the explicit, idempotent
// initialization entry for hosts that want eager binding and a record of
// the selected strategy; repeated calls are no-ops beyond the return
// value.
func Init() Capability {
	c := Capability{
		Strategy:             f16.Active().String(),
		AccelerationCompiled: f16.AccelerationCompiled(),
		HasF16C:              f16.HasF16C(),
		HasFPHP:              f16.HasFPHP(),
		Overridden:           f16.IsOverridden(),
	}
	initOnce.Do(func() {
		logger().Debug("conversion strategy bound",
			"strategy", c.Strategy,
			"acceleration_compiled", c.AccelerationCompiled,
			"f16c", c.HasF16C,
			"fphp", c.HasFPHP,
			"overridden", c.Overridden,
		)
	})
	return c
}

// AccelerationCompiled reports whether the hardware-accelerated
// conversion kernel is compiled into this binary. This is distinct from
// whether it was selected at runtime; see Init.
func AccelerationCompiled() bool {
	return f16.AccelerationCompiled()
}

// ToHalf converts a float32 value to its binary16 representation.
// Rounds to nearest-even; overflow saturates to signed infinity; NaN maps
// to a quiet NaN bit-pattern. Never fails.
func ToHalf(f float32) Half {
	return Half(f16.FromFloat32(f))
}

// FromHalf converts a binary16 value to float32. Total over all 16-bit
// patterns, including the binary16 encodings of infinity and NaN.
func FromHalf(h Half) float32 {
	return f16.ToFloat32(f16.Bits(h))
}

// L2SquaredDistance returns the squared Euclidean distance between the
// first dim elements of a and b.
func L2SquaredDistance(dim int32, a, b []Half) (float32, error) {
	if err := validate(dim, a, b); err != nil {
		return 0, err
	}
	return halfmath.L2Squared(bits(a[:dim]), bits(b[:dim])), nil
}

// InnerProduct returns the inner product of the first dim elements of a
// and b.
func InnerProduct(dim int32, a, b []Half) (float32, error) {
	if err := validate(dim, a, b); err != nil {
		return 0, err
	}
	return halfmath.Dot(bits(a[:dim]), bits(b[:dim])), nil
}

// L1Distance returns the Manhattan distance between the first dim
// elements of a and b.
func L1Distance(dim int32, a, b []Half) (float32, error) {
	if err := validate(dim, a, b); err != nil {
		return 0, err
	}
	return halfmath.L1(bits(a[:dim]), bits(b[:dim])), nil
}

// CosineSimilarity returns the cosine of the angle between the first dim
// elements of a and b. The dot product and the squared norms accumulate
// in float32; the final ratio is formed in float64. Fails with
// ErrZeroNorm when either operand's norm is zero.
func CosineSimilarity(dim int32, a, b []Half) (float64, error) {
	if err := validate(dim, a, b); err != nil {
		return 0, err
	}
	dot, normA, normB := halfmath.CosineTerms(bits(a[:dim]), bits(b[:dim]))
	if normA == 0 || normB == 0 {
		return 0, ErrZeroNorm
	}
	return float64(dot) / float64(math32.Sqrt(normA)*math32.Sqrt(normB)), nil
}

// validate enforces the shared precondition of the distance functions:
// dim must be positive and both slices must hold at least dim elements.
// Violations surface before any accumulation begins.
func validate(dim int32, a, b []Half) error {
	if dim <= 0 {
		return &ErrInvalidDimension{Dimension: int(dim)}
	}
	if len(a) < int(dim) {
		return &ErrDimensionMismatch{Expected: int(dim), Actual: len(a)}
	}
	if len(b) < int(dim) {
		return &ErrDimensionMismatch{Expected: int(dim), Actual: len(b)}
	}
	return nil
}

// bits reinterprets a []Half as []f16.Bits without copying. Safe because
// f16.Bits has the identical underlying type.
func bits(v []Half) []f16.Bits {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*f16.Bits)(unsafe.Pointer(&v[0])), len(v))
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricL2Squared Metric = iota
	MetricInnerProduct
	MetricL1
	MetricCosine
)

func (m Metric) String() string {
	switch m {
	case MetricL2Squared:
		return "L2Squared"
	case MetricInnerProduct:
		return "InnerProduct"
	case MetricL1:
		return "L1"
	case MetricCosine:
		return "Cosine"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(dim int32, a, b []Half) (float32, error)

// Provider returns the distance function for the given metric.
// MetricCosine is not served here because its result is float64 and its
// domain is partial; call CosineSimilarity directly.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricL2Squared:
		return L2SquaredDistance, nil
	case MetricInnerProduct:
		return InnerProduct, nil
	case MetricL1:
		return L1Distance, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
