// Package common holds the small byte and address helpers shared by the
// string core, the allocators and the codec.
package common

import "unsafe"

// Alignment is the byte alignment of every inline window and heap block.
const Alignment = 16

// AlignUp rounds off up to the next multiple of align. align must be a power of two.
func AlignUp(off, align uintptr) uintptr {
	mask := align - 1
	return (off + mask) &^ mask
}

// AlignOffset returns how many bytes must be skipped from p to reach an
// Alignment boundary.
func AlignOffset(p unsafe.Pointer) int {
	addr := uintptr(p)
	return int(AlignUp(addr, Alignment) - addr)
}

// IsAligned reports whether b starts on an Alignment boundary. Empty slices
// are considered aligned.
func IsAligned(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))%Alignment == 0
}

// Overlaps reports whether a and b share at least one byte of memory.
func Overlaps(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return a0 < b0+uintptr(len(b)) && b0 < a0+uintptr(len(a))
}

// WriteVarUint appends a varint to buf (allocating if needed).
func WriteVarUint(buf []byte, x uint64) []byte {
	for x >= 0x80 {
		buf = append(buf, byte(x)|0x80)
		x >>= 7
	}
	return append(buf, byte(x))
}

// ReadVarUint decodes a varint from b returning value and bytes consumed.
// A zero count means b ended before the varint did.
func ReadVarUint(b []byte) (uint64, int) {
	var x uint64
	var s uint
	for i, c := range b {
		if i == 10 {
			return 0, 0
		}
		x |= uint64(c&0x7F) << s
		if c&0x80 == 0 {
			return x, i + 1
		}
		s += 7
	}
	return 0, 0
}
