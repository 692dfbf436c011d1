//go:build amd64 && !noasm

package f16

import "unsafe"

// init binds the F16C kernels when the active strategy calls for them.
// This runs after capability_amd64.go init() has detected CPU features
// and selected the active strategy.
func init() {
	if activeStrategy == F16C {
		setF16CKernels()
	}
}

func setF16CKernels() {
	kernelToFloat32 = toFloat32F16C
	kernelFromFloat32 = fromFloat32F16C
	kernelDecode = decodeF16C
	kernelEncode = encodeF16C
}

func decodeF16C(dst []float32, src []Bits) {
	if len(src) == 0 {
		return
	}
	cvtph2psAsm(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), int64(len(src)))
}

func encodeF16C(dst []Bits, src []float32) {
	if len(src) == 0 {
		return
	}
	cvtps2phAsm(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), int64(len(src)))
}

// Assembly routines, defined in f16c_amd64.s. Callers must have verified
// F16C+AVX support.
//
//go:noescape
func toFloat32F16C(h Bits) float32

//go:noescape
func fromFloat32F16C(f float32) Bits

//go:noescape
func cvtph2psAsm(dst, src unsafe.Pointer, n int64)

//go:noescape
func cvtps2phAsm(dst, src unsafe.Pointer, n int64)
