// Package halfvec provides half-precision (IEEE-754 binary16) vector math.
//
// The package converts between float32 and the compact 16-bit floating
// representation and computes four similarity metrics over pairs of
// equal-length half-precision vectors: squared Euclidean distance, inner
// product, Manhattan distance, and cosine similarity. Elements are
// promoted to float32 before accumulation; accumulation runs strictly
// left to right, so scores are reproducible bit-for-bit across runs on
// the same hardware.
//
// # Quick Start
//
//	a := []halfvec.Half{halfvec.ToHalf(1), halfvec.ToHalf(2), halfvec.ToHalf(3)}
//	b := []halfvec.Half{halfvec.ToHalf(4), halfvec.ToHalf(5), halfvec.ToHalf(6)}
//
//	d, _ := halfvec.L2SquaredDistance(3, a, b)   // 27
//	ip, _ := halfvec.InnerProduct(3, a, b)       // 32
//	m, _ := halfvec.L1Distance(3, a, b)          // 9
//	cos, _ := halfvec.CosineSimilarity(3, a, b)  // ~0.9746
//
// # Hardware Acceleration
//
// On x86-64 the conversion layer uses F16C (VCVTPH2PS/VCVTPS2PH) when the
// CPU supports it. The implementation is probed and bound exactly once at
// process start; steady-state calls go through pre-bound function
// variables and never branch on capability. Build with -tags noasm or set
// HALFVEC_SIMD=portable to force the pure Go path.
//
// # Errors
//
// A non-positive dimension or a vector shorter than the stated dimension
// is a caller error and is reported before any accumulation begins.
// NaN and infinity elements are not errors; they propagate through the
// arithmetic per IEEE-754 rules. Only CosineSimilarity has a partial
// domain: it fails with ErrZeroNorm when either operand's norm is zero.
//
// # Legacy Surface
//
// The Halfvec* functions in compat.go re-export the same operations under
// the fixed names and argument order used by pre-existing C callers.
package halfvec
