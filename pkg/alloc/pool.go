package alloc

import (
	"sync"

	"go.uber.org/atomic"
)

// Size classes for pooled blocks. Requests above the largest class bypass
// the pool.
const (
	class256B  = 256
	class1KB   = 1024
	class4KB   = 4096
	class16KB  = 16384
	class64KB  = 65536
	numClasses = 5

	// DefaultMaxPooled is the largest block size kept by a Pool.
	DefaultMaxPooled = class64KB
)

var classSizes = [numClasses]int{class256B, class1KB, class4KB, class16KB, class64KB}

// PoolOptions configures a Pool.
type PoolOptions struct {
	// MaxPooled caps the class sizes the pool keeps. Zero means DefaultMaxPooled.
	MaxPooled int
}

// PoolStats contains pool hit/miss statistics. A miss is any allocation
// served by a fresh block.
type PoolStats struct {
	Hits   int64
	Misses int64
	Puts   int64
}

// Pool is a size-class allocator that recycles returned blocks through
// sync.Pool, so strings that repeatedly grow past their inline storage stop
// hitting the garbage collector. Safe for concurrent use by many strings.
type Pool struct {
	pools     [numClasses]sync.Pool
	maxPooled int
	hits      atomic.Int64
	miss      atomic.Int64
	puts      atomic.Int64
}

// NewPool creates a Pool.
func NewPool(opts PoolOptions) *Pool {
	p := &Pool{maxPooled: opts.MaxPooled}
	if p.maxPooled <= 0 {
		p.maxPooled = DefaultMaxPooled
	}
	return p
}

// selectClass returns the index of the smallest class that fits n bytes, or
// -1 when n is above the pooled range.
func (p *Pool) selectClass(n int) int {
	if n > p.maxPooled {
		return -1
	}
	for i := 0; i < numClasses; i++ {
		if n <= classSizes[i] {
			return i
		}
	}
	return -1
}

// classByCap maps a returned block back to its class.
func classByCap(c int) int {
	for i := 0; i < numClasses; i++ {
		if c == classSizes[i] {
			return i
		}
	}
	return -1
}

// Allocate returns an aligned block of n bytes, reusing a pooled block of
// the matching class when one is available.
func (p *Pool) Allocate(n int) []byte {
	if n <= 0 {
		return nil
	}
	idx := p.selectClass(n)
	if idx < 0 {
		p.miss.Inc()
		return Aligned(n)
	}
	v, _ := p.pools[idx].Get().(*[]byte)
	if v == nil {
		p.miss.Inc()
		return Aligned(classSizes[idx])[:n]
	}
	p.hits.Inc()
	b := *v
	clear(b[:n])
	return b[:n]
}

// Deallocate hands b back to its class. Blocks that did not come from a class
// are left to the garbage collector.
func (p *Pool) Deallocate(b []byte) {
	if b == nil {
		return
	}
	idx := classByCap(cap(b))
	if idx < 0 || classSizes[idx] > p.maxPooled {
		return
	}
	b = b[:cap(b)]
	p.puts.Inc()
	p.pools[idx].Put(&b)
}

// Stats returns the current pool counters.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Hits:   p.hits.Load(),
		Misses: p.miss.Load(),
		Puts:   p.puts.Load(),
	}
}
