package simdstring

import (
	"iter"
	"unsafe"
)

// Len returns the number of content bytes.
func (s *String) Len() int { return s.length }

// Empty reports whether the string has no content.
func (s *String) Empty() bool { return s.length == 0 }

// Mode reports where the content lives.
func (s *String) Mode() Mode { return s.mode }

// CapacityTag returns 0 for a borrowed string, InternalSize for an inline
// one and the block size for a heap one.
func (s *String) CapacityTag() int { return s.capTag() }

// Cap returns the size of the storage in bytes, terminator included. For a
// borrowed string it is the length.
func (s *String) Cap() int {
	if s.mode == Borrowed {
		return s.length
	}
	return s.capTag()
}

// At returns the byte at i.
func (s *String) At(i int) byte {
	checkIndex(i, s.length)
	return s.bytes()[i]
}

// Set stores c at i, cloning a borrowed string first.
func (s *String) Set(i int, c byte) {
	checkIndex(i, s.length)
	s.reserveFor(s.length)[i] = c
}

// Ref returns a pointer to the byte at i, cloning a borrowed string first.
// The pointer is valid until the next call that changes the storage.
func (s *String) Ref(i int) *byte {
	checkIndex(i, s.length)
	return &s.reserveFor(s.length)[i]
}

// Front returns the first byte.
func (s *String) Front() byte { return s.At(0) }

// Back returns the last byte.
func (s *String) Back() byte { return s.At(s.length - 1) }

// Data returns a read-only pointer to the first content byte. Two strings
// sharing a borrowed literal return the same pointer.
func (s *String) Data() *byte {
	if s.mode == Borrowed {
		return unsafe.StringData(s.lit)
	}
	return &s.block()[0]
}

// Bytes returns the content. The slice must not be modified and is valid
// until the next mutation.
func (s *String) Bytes() []byte { return s.bytes() }

// MutableBytes returns the content as a writable slice, cloning a borrowed
// string first. The slice is valid until the next call that changes the
// storage.
func (s *String) MutableBytes() []byte {
	return s.reserveFor(s.length)[:s.length]
}

// CString returns the content followed by a 0 terminator. Owned strings
// return a view of their storage; a borrowed string returns a copy since Go
// constants carry no terminator.
func (s *String) CString() []byte {
	if s.mode == Borrowed {
		out := make([]byte, s.length+1)
		copy(out, s.lit)
		return out
	}
	return s.block()[:s.length+1]
}

// String returns the content as a Go string. A borrowed string is returned
// without copying.
func (s *String) String() string {
	if s.mode == Borrowed {
		return s.lit
	}
	return string(s.bytes())
}

// UnsafeString returns the content as a Go string without copying. The
// result must not be used after the next mutation of s.
func (s *String) UnsafeString() string {
	if s.mode == Borrowed {
		return s.lit
	}
	if s.length == 0 {
		return ""
	}
	return unsafe.String(&s.block()[0], s.length)
}

// All yields each index and byte in order.
func (s *String) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i, c := range s.bytes() {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Backward yields each index and byte from the end.
func (s *String) Backward() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		b := s.bytes()
		for i := len(b) - 1; i >= 0; i-- {
			if !yield(i, b[i]) {
				return
			}
		}
	}
}

// Values yields each byte in order.
func (s *String) Values() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for _, c := range s.bytes() {
			if !yield(c) {
				return
			}
		}
	}
}

// CopyTo copies up to len(dst) bytes starting at pos into dst and returns
// the count copied.
func (s *String) CopyTo(dst []byte, pos int) int {
	checkPos(pos, s.length)
	return copy(dst, s.bytes()[pos:])
}

// Substr returns count bytes starting at pos as a new string.
func (s *String) Substr(pos, count int) *String {
	return FromSub(s, pos, count)
}
