package literal

import (
	"bytes"
	"testing"
	"unsafe"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	rs := []region{{lo: 0x400000, hi: 0x452000}, {lo: 0x651000, hi: 0x652000}}
	tests := []struct {
		addr uintptr
		want bool
	}{
		{0x400000, true},
		{0x451fff, true},
		{0x452000, false},
		{0x651800, true},
		{0x652000, false},
		{0x3fffff, false},
		{0xe03000, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, contains(rs, tt.addr), "addr %#x", tt.addr)
	}
}

func TestContainsEmpty(t *testing.T) {
	assert.False(t, contains(nil, 0x1000))
}

func TestFixedDetectors(t *testing.T) {
	b := []byte("x")
	p := unsafe.Pointer(&b[0])
	assert.False(t, Never(p))
	assert.True(t, Always(p))
	assert.False(t, Always(nil))
	assert.False(t, Static(nil))
}

func TestStaticRejectsHeap(t *testing.T) {
	b := bytes.Repeat([]byte("heap"), 8)
	assert.False(t, Static(unsafe.Pointer(&b[0])))
	var local [32]byte
	assert.False(t, Static(unsafe.Pointer(&local[0])))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(log.NewLogfmtLogger(&buf))
	assert.NotNil(t, getLogger())
	SetLogger(nil)
	assert.NotNil(t, getLogger())
}
