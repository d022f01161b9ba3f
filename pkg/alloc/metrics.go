package alloc

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Instrumented wraps another allocator and exports its activity as
// Prometheus metrics.
type Instrumented struct {
	inner Allocator

	allocs    prometheus.Counter
	frees     prometheus.Counter
	allocated prometheus.Counter
	live      prometheus.Gauge
}

// NewInstrumented wraps inner and registers its metrics with reg. A nil inner
// means Heap{}; a nil reg leaves the metrics unregistered.
func NewInstrumented(inner Allocator, reg prometheus.Registerer) *Instrumented {
	if inner == nil {
		inner = Heap{}
	}
	i := &Instrumented{
		inner: inner,
		allocs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "simdstring",
			Name:      "heap_allocations_total",
			Help:      "Heap blocks handed out to strings.",
		}),
		frees: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "simdstring",
			Name:      "heap_deallocations_total",
			Help:      "Heap blocks returned by strings.",
		}),
		allocated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "simdstring",
			Name:      "heap_allocated_bytes_total",
			Help:      "Bytes handed out in heap blocks.",
		}),
		live: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "simdstring",
			Name:      "heap_live_bytes",
			Help:      "Bytes in heap blocks currently owned by strings.",
		}),
	}
	if reg != nil {
		reg.MustRegister(i.allocs, i.frees, i.allocated, i.live)
	}
	return i
}

// Allocate counts and returns a block from the wrapped allocator.
func (i *Instrumented) Allocate(n int) []byte {
	b := i.inner.Allocate(n)
	if len(b) > 0 {
		i.allocs.Inc()
		i.allocated.Add(float64(len(b)))
		i.live.Add(float64(len(b)))
	}
	return b
}

// Deallocate counts and forwards b.
func (i *Instrumented) Deallocate(b []byte) {
	if len(b) > 0 {
		i.frees.Inc()
		i.live.Sub(float64(len(b)))
	}
	i.inner.Deallocate(b)
}
