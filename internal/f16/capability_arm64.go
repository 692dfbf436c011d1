//go:build arm64

package f16

import "golang.org/x/sys/cpu"

func init() {
	hasFPHP = cpu.ARM64.HasFPHP && cpu.ARM64.HasASIMDHP
	initCapabilities()
}
