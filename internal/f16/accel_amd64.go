//go:build amd64 && !noasm

package f16

// accelCompiled reports whether an accelerated conversion kernel is part
// of this binary. Distinct from whether it is selected at runtime.
const accelCompiled = true
