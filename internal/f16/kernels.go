package f16

// Kernel function pointers - set once at init, zero runtime overhead.
// Portable implementations are the default; the platform-specific init()
// overrides them with the F16C versions when the CPU supports them.
var (
	kernelToFloat32   = toFloat32Portable
	kernelFromFloat32 = fromFloat32Portable
	kernelDecode      = decodePortable
	kernelEncode      = encodePortable
)

// ToFloat32 converts a binary16 bit-pattern to float32.
// Total over all 16-bit patterns, including Inf and NaN encodings.
func ToFloat32(h Bits) float32 {
	return kernelToFloat32(h)
}

// FromFloat32 converts a float32 value into a binary16 bit-pattern.
// Rounds to nearest-even; overflow saturates to signed infinity; NaN maps
// to a quiet NaN. Never fails.
func FromFloat32(f float32) Bits {
	return kernelFromFloat32(f)
}

// Decode converts a slice of binary16 bit-patterns to float32.
// dst must have length >= len(src).
func Decode(dst []float32, src []Bits) {
	kernelDecode(dst, src)
}

// Encode converts a slice of float32 to binary16.
// dst must have length >= len(src).
func Encode(dst []Bits, src []float32) {
	kernelEncode(dst, src)
}
