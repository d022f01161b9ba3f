//go:build !amd64 || purego

package simd

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Without assembly the chunk loops below move [Width]byte values, which the
// compiler lowers to 128-bit loads and stores where the target has them.
var hasVector = cpu.ARM64.HasASIMD

type chunk = [Width]byte

func copyBlocks(dst, src unsafe.Pointer, n uintptr) {
	for off := uintptr(0); off < n; off += Width {
		*(*chunk)(unsafe.Add(dst, off)) = *(*chunk)(unsafe.Add(src, off))
	}
}

func swapBlocks(a, b unsafe.Pointer, n uintptr) {
	for off := uintptr(0); off < n; off += Width {
		pa := (*chunk)(unsafe.Add(a, off))
		pb := (*chunk)(unsafe.Add(b, off))
		*pa, *pb = *pb, *pa
	}
}
