// Package alloc provides the memory strategies a string uses for its heap
// blocks.
//
// Every block handed out is 16-byte aligned and has len equal to the
// requested size. Pooled blocks may carry a larger cap, which the owner must
// hand back untouched. A block is owned by exactly one string between
// Allocate and Deallocate; Deallocate must be called at most once per block.
package alloc

import (
	"unsafe"

	"github.com/rawbytedev/simdstring/internal/common"
)

// Allocator hands out and takes back heap blocks.
type Allocator interface {
	// Allocate returns an aligned block with len n.
	Allocate(n int) []byte
	// Deallocate returns a block obtained from Allocate.
	Deallocate(b []byte)
}

// Stats is a snapshot of allocator activity.
type Stats struct {
	Allocs     int64 // Blocks handed out
	Frees      int64 // Blocks returned
	LiveBlocks int64 // Allocs - Frees
	LiveBytes  int64 // Bytes in blocks not yet returned
}

// Heap is the default allocator. It is stateless, so storing it in a string
// costs nothing beyond the interface header. Deallocate leaves the block to
// the garbage collector.
type Heap struct{}

// Allocate returns an aligned block of n bytes from the Go heap.
func (Heap) Allocate(n int) []byte {
	return Aligned(n)
}

// Deallocate is a no-op; the collector reclaims unreachable blocks.
func (Heap) Deallocate([]byte) {}

// Aligned returns a zeroed n-byte slice whose first byte sits on a 16-byte
// boundary. Returns nil if n <= 0.
func Aligned(n int) []byte {
	if n <= 0 {
		return nil
	}
	raw := make([]byte, n+common.Alignment-1)
	off := common.AlignOffset(unsafe.Pointer(&raw[0]))
	return raw[off : off+n : off+n]
}
