//go:build !amd64 && !arm64

package f16

func init() {
	initCapabilities()
}
