package alloc

import (
	"fmt"
	"sync"
	"unsafe"

	"go.uber.org/atomic"
)

// Tracking wraps another allocator and records every live block. It panics
// on a double free or on freeing a block it never handed out, which makes
// ownership bugs fail loudly in tests.
type Tracking struct {
	inner Allocator

	mu   sync.Mutex
	live map[uintptr]int

	allocs    atomic.Int64
	frees     atomic.Int64
	liveBytes atomic.Int64
}

// NewTracking wraps inner. A nil inner means Heap{}.
func NewTracking(inner Allocator) *Tracking {
	if inner == nil {
		inner = Heap{}
	}
	return &Tracking{inner: inner, live: make(map[uintptr]int)}
}

func blockKey(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

// Allocate records and returns a block from the wrapped allocator.
func (t *Tracking) Allocate(n int) []byte {
	b := t.inner.Allocate(n)
	if len(b) == 0 {
		return b
	}
	t.mu.Lock()
	t.live[blockKey(b)] = len(b)
	t.mu.Unlock()
	t.allocs.Inc()
	t.liveBytes.Add(int64(len(b)))
	return b
}

// Deallocate releases b, panicking if b is not live.
func (t *Tracking) Deallocate(b []byte) {
	if len(b) == 0 {
		return
	}
	key := blockKey(b)
	t.mu.Lock()
	n, ok := t.live[key]
	if !ok {
		t.mu.Unlock()
		panic(fmt.Sprintf("alloc: free of unknown or already freed block %#x", key))
	}
	delete(t.live, key)
	t.mu.Unlock()
	t.frees.Inc()
	t.liveBytes.Sub(int64(n))
	t.inner.Deallocate(b)
}

// Stats returns a snapshot of the tracked activity.
func (t *Tracking) Stats() Stats {
	allocs, frees := t.allocs.Load(), t.frees.Load()
	return Stats{
		Allocs:     allocs,
		Frees:      frees,
		LiveBlocks: allocs - frees,
		LiveBytes:  t.liveBytes.Load(),
	}
}
