//go:build amd64 && !noasm

package halfmath

import (
	"github.com/chewxy/math32"

	"github.com/hupe1980/halfvec/internal/f16"
)

const blockSize = 8

// init rebinds the kernels with block-decoding variants when the F16C
// conversion strategy is active. The blocked variants widen eight halves
// per F16C instruction but accumulate in the same left-to-right order as
// the generic kernels.
func init() {
	if f16.Active() == f16.F16C {
		kernelL2Squared = l2SquaredBlocked
		kernelDot = dotBlocked
		kernelL1 = l1Blocked
		kernelCosineTerms = cosineTermsBlocked
	}
}

func l2SquaredBlocked(a, b []f16.Bits) float32 {
	var bufA, bufB [blockSize]float32
	var distance float32
	n := len(a)
	i := 0
	for ; i+blockSize <= n; i += blockSize {
		f16.Decode(bufA[:], a[i:i+blockSize])
		f16.Decode(bufB[:], b[i:i+blockSize])
		for j := 0; j < blockSize; j++ {
			d := bufA[j] - bufB[j]
			distance += d * d
		}
	}
	for ; i < n; i++ {
		d := f16.ToFloat32(a[i]) - f16.ToFloat32(b[i])
		distance += d * d
	}
	return distance
}

func dotBlocked(a, b []f16.Bits) float32 {
	var bufA, bufB [blockSize]float32
	var ret float32
	n := len(a)
	i := 0
	for ; i+blockSize <= n; i += blockSize {
		f16.Decode(bufA[:], a[i:i+blockSize])
		f16.Decode(bufB[:], b[i:i+blockSize])
		for j := 0; j < blockSize; j++ {
			ret += bufA[j] * bufB[j]
		}
	}
	for ; i < n; i++ {
		ret += f16.ToFloat32(a[i]) * f16.ToFloat32(b[i])
	}
	return ret
}

func l1Blocked(a, b []f16.Bits) float32 {
	var bufA, bufB [blockSize]float32
	var distance float32
	n := len(a)
	i := 0
	for ; i+blockSize <= n; i += blockSize {
		f16.Decode(bufA[:], a[i:i+blockSize])
		f16.Decode(bufB[:], b[i:i+blockSize])
		for j := 0; j < blockSize; j++ {
			distance += math32.Abs(bufA[j] - bufB[j])
		}
	}
	for ; i < n; i++ {
		distance += math32.Abs(f16.ToFloat32(a[i]) - f16.ToFloat32(b[i]))
	}
	return distance
}

func cosineTermsBlocked(a, b []f16.Bits) (dot, normA, normB float32) {
	var bufA, bufB [blockSize]float32
	n := len(a)
	i := 0
	for ; i+blockSize <= n; i += blockSize {
		f16.Decode(bufA[:], a[i:i+blockSize])
		f16.Decode(bufB[:], b[i:i+blockSize])
		for j := 0; j < blockSize; j++ {
			dot += bufA[j] * bufB[j]
			normA += bufA[j] * bufA[j]
			normB += bufB[j] * bufB[j]
		}
	}
	for ; i < n; i++ {
		av := f16.ToFloat32(a[i])
		bv := f16.ToFloat32(b[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}
	return dot, normA, normB
}
