//go:build amd64 && !purego

package simd

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

var hasVector = cpu.X86.HasSSE2

// copyBlocks copies n bytes from src to dst with aligned 128-bit moves.
// n must be a multiple of Width and both pointers must be Width-aligned.
//
//go:noescape
func copyBlocks(dst, src unsafe.Pointer, n uintptr)

// swapBlocks exchanges n bytes between a and b with aligned 128-bit moves.
//
//go:noescape
func swapBlocks(a, b unsafe.Pointer, n uintptr)
