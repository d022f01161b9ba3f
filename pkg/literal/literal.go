// Package literal decides whether a pointer refers to memory that lives in
// the program's read-only static data, such as the bytes of a Go string
// constant. A string whose bytes sit there can be borrowed forever without
// copying.
//
// Every detector here errs toward false. A false negative costs a copy; a
// false positive only costs a clone later, since a borrowed Go string is
// immutable and kept alive by the collector.
package literal

import (
	"sort"
	"sync"
	"unsafe"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

var ErrUnsupported = errors.New("literal: memory map not available on this platform")

// Detector reports whether p lies in read-only static memory.
type Detector func(p unsafe.Pointer) bool

// Never treats nothing as a literal.
func Never(unsafe.Pointer) bool { return false }

// Always treats every non-nil pointer as a literal. Intended for tests that
// need the borrowed state for heap memory.
func Always(p unsafe.Pointer) bool { return p != nil }

var (
	logMu  sync.RWMutex
	logger log.Logger = log.NewNopLogger()
)

// SetLogger replaces the package logger. A nil logger restores the no-op one.
func SetLogger(l log.Logger) {
	if l == nil {
		l = log.NewNopLogger()
	}
	logMu.Lock()
	logger = l
	logMu.Unlock()
}

func getLogger() log.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return logger
}

// region is a half-open address range [lo, hi).
type region struct {
	lo, hi uintptr
}

var (
	loadOnce sync.Once
	regions  []region
)

// Static reports whether p points into a non-writable mapping of the running
// executable. The memory map is read once; if it cannot be read Static always
// returns false.
func Static(p unsafe.Pointer) bool {
	if p == nil {
		return false
	}
	loadOnce.Do(func() {
		rs, err := loadRegions()
		if err != nil {
			level.Debug(getLogger()).Log("msg", "literal detection disabled", "err", err)
			return
		}
		regions = rs
		level.Debug(getLogger()).Log("msg", "literal detection ready", "regions", len(rs))
	})
	return contains(regions, uintptr(p))
}

func contains(rs []region, addr uintptr) bool {
	i := sort.Search(len(rs), func(i int) bool { return rs[i].hi > addr })
	return i < len(rs) && rs[i].lo <= addr
}
