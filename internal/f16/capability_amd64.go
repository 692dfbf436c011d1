//go:build amd64

package f16

import "github.com/klauspost/cpuid/v2"

func init() {
	// The F16C kernels are VEX-encoded, so AVX is required as well.
	hasF16C = cpuid.CPU.Supports(cpuid.F16C, cpuid.AVX)
	initCapabilities()
}
