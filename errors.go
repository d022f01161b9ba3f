package simdstring

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument = errors.New("simdstring: invalid argument")
	ErrOutOfRange      = errors.New("simdstring: value out of range")
	ErrTruncated       = errors.New("simdstring: truncated input")
)

func panicf(format string, args ...any) {
	panic(fmt.Sprintf("simdstring: "+format, args...))
}

// checkIndex panics unless 0 <= i < n.
func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panicf("index %d out of range [0,%d)", i, n)
	}
}

// checkPos panics unless 0 <= pos <= n.
func checkPos(pos, n int) {
	if pos < 0 || pos > n {
		panicf("position %d out of range [0,%d]", pos, n)
	}
}

// clampCount returns the number of bytes available from pos when count was
// asked for. A negative count, such as NPos, means "to the end".
func clampCount(pos, count, n int) int {
	if count < 0 || count > n-pos {
		return n - pos
	}
	return count
}

// checkRange panics unless [first, last) is a valid range within n bytes.
func checkRange(first, last, n int) {
	if first < 0 || last < first || last > n {
		panicf("range [%d,%d) out of range [0,%d]", first, last, n)
	}
}
