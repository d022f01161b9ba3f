package simd

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"
	"unsafe"

	"github.com/rawbytedev/simdstring/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// alignedBuf returns an n-byte window starting at offset skew from a
// 16-byte boundary.
func alignedBuf(n, skew int) []byte {
	raw := make([]byte, n+2*Width)
	off := common.AlignOffset(unsafe.Pointer(&raw[0])) + skew
	return raw[off : off+n : off+n]
}

func fill(b []byte, seed int64) {
	r := rand.New(rand.NewSource(seed))
	r.Read(b)
}

// withEachPath runs fn once with the vector path on and once with it off.
func withEachPath(t *testing.T, fn func(t *testing.T)) {
	for _, on := range []bool{true, false} {
		t.Run(fmt.Sprintf("vector=%v", on), func(t *testing.T) {
			prev := SetEnabled(on)
			defer SetEnabled(prev)
			fn(t)
		})
	}
}

func TestCopy(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		dstSkew  int
		srcSkew  int
		eligible bool
	}{
		{"aligned 64", 64, 0, 0, true},
		{"aligned 16", 16, 0, 0, true},
		{"aligned 48", 48, 0, 0, true},
		{"odd length", 63, 0, 0, false},
		{"unaligned dst", 64, 1, 0, false},
		{"unaligned src", 64, 0, 3, false},
		{"both unaligned", 33, 7, 5, false},
	}
	withEachPath(t, func(t *testing.T) {
		for i, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				src := alignedBuf(tt.n, tt.srcSkew)
				dst := alignedBuf(tt.n, tt.dstSkew)
				fill(src, int64(i))
				assert.Equal(t, tt.eligible, Eligible(src) && Eligible(dst))

				n := Copy(dst, src)
				require.Equal(t, tt.n, n)
				assert.True(t, bytes.Equal(dst, src))
			})
		}
	})
}

func TestCopyShortDestination(t *testing.T) {
	withEachPath(t, func(t *testing.T) {
		src := alignedBuf(64, 0)
		fill(src, 7)
		dst := alignedBuf(32, 0)
		require.Equal(t, 32, Copy(dst, src))
		assert.Equal(t, src[:32], dst)
		assert.Zero(t, Copy(nil, src))
	})
}

func TestSwap(t *testing.T) {
	withEachPath(t, func(t *testing.T) {
		for _, skew := range []int{0, 1, 8} {
			for _, n := range []int{16, 64, 80, 65} {
				a := alignedBuf(n, skew)
				b := alignedBuf(n, 0)
				fill(a, 1)
				fill(b, 2)
				wantA := bytes.Clone(b)
				wantB := bytes.Clone(a)

				Swap(a, b)
				assert.Equal(t, wantA, a, "n=%d skew=%d", n, skew)
				assert.Equal(t, wantB, b, "n=%d skew=%d", n, skew)
			}
		}
	})
}

func TestSwapContractViolations(t *testing.T) {
	assert.Panics(t, func() { Swap(make([]byte, 16), make([]byte, 32)) })
	buf := alignedBuf(64, 0)
	assert.Panics(t, func() { Swap(buf[:32], buf[16:48]) })
	assert.NotPanics(t, func() { Swap(nil, nil) })
}

func TestSetEnabled(t *testing.T) {
	prev := SetEnabled(false)
	defer SetEnabled(prev)
	assert.False(t, Enabled())
	SetEnabled(true)
	assert.Equal(t, hasVector, Enabled())
}

func BenchmarkCopy64(b *testing.B) {
	src := alignedBuf(64, 0)
	dst := alignedBuf(64, 0)
	for _, on := range []bool{true, false} {
		b.Run(fmt.Sprintf("vector=%v", on), func(b *testing.B) {
			prev := SetEnabled(on)
			defer SetEnabled(prev)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Copy(dst, src)
			}
		})
	}
}

func BenchmarkSwap64(b *testing.B) {
	x := alignedBuf(64, 0)
	y := alignedBuf(64, 0)
	for _, on := range []bool{true, false} {
		b.Run(fmt.Sprintf("vector=%v", on), func(b *testing.B) {
			prev := SetEnabled(on)
			defer SetEnabled(prev)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Swap(x, y)
			}
		})
	}
}
