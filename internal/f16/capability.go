package f16

import (
	"os"
	"strings"
)

// Strategy identifies a conversion implementation.
type Strategy uint8

const (
	// Portable is the pure Go bit-manipulation implementation.
	Portable Strategy = iota
	// F16C is the x86-64 hardware implementation (VCVTPH2PS/VCVTPS2PH).
	F16C
)

// String returns the string representation of a Strategy.
func (s Strategy) String() string {
	switch s {
	case Portable:
		return "portable"
	case F16C:
		return "f16c"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a string into a Strategy value.
func ParseStrategy(s string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "portable":
		return Portable, true
	case "f16c":
		return F16C, true
	default:
		return Portable, false
	}
}

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	// activeStrategy is the selected conversion implementation.
	activeStrategy Strategy

	// hasOverride is true if HALFVEC_SIMD forced the active strategy.
	hasOverride bool

	// CPU feature flags (set by platform-specific init)
	hasF16C bool // x86-64 F16C (half-precision convert, implies AVX here)
	hasFPHP bool // ARM64 half-precision FP (reported, no kernel bound yet)
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	hasOverride = false

	// Check for environment override. An override only counts as
	// effective when the requested strategy is actually usable;
	// otherwise fall through to auto-detection.
	if override := os.Getenv("HALFVEC_SIMD"); override != "" {
		if s, ok := ParseStrategy(override); ok && isStrategyAvailable(s) {
			activeStrategy = s
			hasOverride = true
			return
		}
	}

	activeStrategy = selectBestStrategy()
}

// isStrategyAvailable checks if a strategy is usable on this CPU and build.
func isStrategyAvailable(s Strategy) bool {
	switch s {
	case Portable:
		return true
	case F16C:
		return accelCompiled && hasF16C
	default:
		return false
	}
}

// selectBestStrategy chooses the optimal strategy for the current platform.
func selectBestStrategy() Strategy {
	if accelCompiled && hasF16C {
		return F16C
	}
	return Portable
}

// Active returns the currently active conversion strategy.
func Active() Strategy {
	return activeStrategy
}

// IsOverridden returns true if HALFVEC_SIMD forced the active strategy.
// A rejected override (unparsable, or requesting an unavailable
// strategy) is not reported.
func IsOverridden() bool {
	return hasOverride
}

// HasF16C returns true if the CPU supports x86-64 F16C.
func HasF16C() bool {
	return hasF16C
}

// HasFPHP returns true if the CPU supports ARM64 half-precision FP.
func HasFPHP() bool {
	return hasFPHP
}

// AccelerationCompiled returns true if the accelerated conversion kernel
// is compiled into this binary.
func AccelerationCompiled() bool {
	return accelCompiled
}
