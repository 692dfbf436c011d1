//go:build !amd64 || noasm

package f16

const accelCompiled = false
