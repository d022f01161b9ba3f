// Package simd implements the aligned block copy and block swap used for the
// inline storage of a string.
//
// Both primitives move data in 16-byte chunks with 128-bit loads and stores
// when the operands are 16-byte aligned, a multiple of 16 bytes long and the
// CPU has a vector unit. Every other case goes through an exact byte-wise
// path, so results never depend on which path ran.
package simd

import (
	"unsafe"

	"github.com/rawbytedev/simdstring/internal/common"
	"go.uber.org/atomic"
)

// Width is the size in bytes of one vector chunk.
const Width = common.Alignment

var enabled = atomic.NewBool(hasVector)

// Enabled reports whether the vector path is in use.
func Enabled() bool {
	return enabled.Load()
}

// SetEnabled turns the vector path on or off and returns the previous
// setting. Turning it on is ignored on CPUs without a vector unit.
func SetEnabled(on bool) bool {
	return enabled.Swap(on && hasVector)
}

// Eligible reports whether b can be handed to the vector path.
func Eligible(b []byte) bool {
	return len(b)%Width == 0 && common.IsAligned(b)
}

// Copy copies min(len(dst), len(src)) bytes from src to dst and returns the
// count. The vector path is taken when both operands are eligible and of
// equal length; otherwise the copy is byte-wise.
func Copy(dst, src []byte) int {
	n := min(len(dst), len(src))
	if n == 0 {
		return 0
	}
	if enabled.Load() && n%Width == 0 && common.IsAligned(dst) && common.IsAligned(src) &&
		!common.Overlaps(dst[:n], src[:n]) {
		copyBlocks(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), uintptr(n))
		return n
	}
	return copy(dst, src)
}

// Swap exchanges the contents of a and b, which must have the same length
// and must not overlap.
func Swap(a, b []byte) {
	if len(a) != len(b) {
		panic("simd: Swap of unequal lengths")
	}
	if len(a) == 0 {
		return
	}
	if common.Overlaps(a, b) {
		panic("simd: Swap of overlapping buffers")
	}
	if enabled.Load() && Eligible(a) && Eligible(b) {
		swapBlocks(unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), uintptr(len(a)))
		return
	}
	swapBytes(a, b)
}

func swapBytes(a, b []byte) {
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}
}
