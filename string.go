package simdstring

import (
	"iter"

	"github.com/rawbytedev/simdstring/internal/simd"
	"github.com/rawbytedev/simdstring/pkg/alloc"
)

// New returns an empty inline string.
func New() *String {
	return &String{}
}

// NewRepeat returns a string of n copies of c.
func NewRepeat(n int, c byte) *String {
	s := &String{}
	s.AssignRepeat(n, c)
	return s
}

// NewByte returns the one-byte string c.
func NewByte(c byte) *String {
	s := &String{}
	s.AssignByte(c)
	return s
}

// NewString returns a string holding str. If str is a constant in static
// data it is borrowed, otherwise it is copied.
func NewString(str string) *String {
	s := &String{}
	s.AssignString(str)
	return s
}

// NewBytes returns a string holding a copy of b.
func NewBytes(b []byte) *String {
	s := &String{}
	s.AssignBytes(b)
	return s
}

// NewList returns a string made of the given bytes.
func NewList(bs ...byte) *String {
	return NewBytes(bs)
}

// NewFromSeq returns a string holding the bytes produced by seq.
func NewFromSeq(seq iter.Seq[byte]) *String {
	s := &String{}
	s.AssignSeq(seq)
	return s
}

// FromSub returns a copy of count bytes of o starting at pos. A borrowed o
// is shared instead of copied.
func FromSub(o *String, pos, count int) *String {
	s := &String{alloc: o.alloc}
	s.AssignSub(o, pos, count)
	return s
}

// Take returns a string holding o's content and leaves o empty. No bytes are
// copied unless o is inline.
func Take(o *String) *String {
	s := &String{}
	s.Move(o)
	return s
}

// Concat returns the concatenation of parts.
func Concat(parts ...*String) *String {
	n := 0
	for _, p := range parts {
		n += p.length
	}
	s := &String{}
	s.Grow(n)
	for _, p := range parts {
		s.appendBytes(p.bytes())
	}
	return s
}

// Clone returns an independent copy of s using the same allocator. A
// borrowed s is shared; a heap s gets a block of the same size.
func (s *String) Clone() *String {
	c := &String{alloc: s.alloc, length: s.length}
	switch s.mode {
	case Borrowed:
		c.mode = Borrowed
		c.lit = s.lit
	case Inline:
		simd.Copy(c.inline(), s.inline())
	case Heap:
		blk := c.allocator().Allocate(len(s.heap))
		copy(blk, s.heap[:s.length+1])
		c.install(blk)
	}
	return c
}

// Assign replaces the content with a copy of o. A borrowed o is shared.
func (s *String) Assign(o *String) *String {
	if s == o {
		return s
	}
	switch {
	case o.mode == Borrowed:
		s.borrow(o.lit)
	case o.mode == Inline && s.mode != Heap:
		s.dropStorage()
		s.mode = Inline
		simd.Copy(s.inline(), o.inline())
		s.length = o.length
	default:
		s.assignBytes(o.bytes())
	}
	return s
}

// AssignSub replaces the content with count bytes of o starting at pos.
// Any substring of a borrowed o is shared.
func (s *String) AssignSub(o *String, pos, count int) *String {
	checkPos(pos, o.length)
	s.copyFrom(o, pos, clampCount(pos, count, o.length))
	return s
}

// AssignString replaces the content with str, borrowing it when str is a
// constant in static data.
func (s *String) AssignString(str string) *String {
	if isLiteral(str) {
		s.borrow(str)
		return s
	}
	s.assignBytes(stringBytes(str))
	return s
}

// AssignBytes replaces the content with a copy of b.
func (s *String) AssignBytes(b []byte) *String {
	s.assignBytes(b)
	return s
}

// AssignRepeat replaces the content with n copies of c.
func (s *String) AssignRepeat(n int, c byte) *String {
	if n < 0 {
		panicf("negative repeat count %d", n)
	}
	blk := s.discardFor(n)
	fill(blk[:n], c)
	s.commit(n)
	return s
}

// AssignByte replaces the content with the single byte c.
func (s *String) AssignByte(c byte) *String {
	blk := s.discardFor(1)
	blk[0] = c
	s.commit(1)
	return s
}

// AssignSeq replaces the content with the bytes produced by seq. seq may
// range over s itself.
func (s *String) AssignSeq(seq iter.Seq[byte]) *String {
	t := String{alloc: s.alloc}
	for c := range seq {
		t.PushBack(c)
	}
	s.Move(&t)
	return s
}

// Move replaces the content of s with the content of o and leaves o empty.
// A heap block changes owner without being copied.
func (s *String) Move(o *String) *String {
	if s == o {
		return s
	}
	s.dropStorage()
	if o.mode == Inline {
		simd.Copy(s.inline(), o.inline())
	}
	s.length, s.mode, s.heap, s.lit, s.alloc = o.length, o.mode, o.heap, o.lit, o.alloc
	o.heap, o.lit = nil, ""
	o.mode = Inline
	o.commit(0)
	return s
}

// Swap exchanges the contents of s and o. Heap blocks and allocators change
// hands; inline windows are exchanged in place.
func (s *String) Swap(o *String) {
	if s == o {
		return
	}
	switch {
	case s.mode == Inline && o.mode == Inline:
		simd.Swap(s.inline(), o.inline())
	case s.mode == Inline:
		simd.Copy(o.inline(), s.inline())
	case o.mode == Inline:
		simd.Copy(s.inline(), o.inline())
	}
	s.length, o.length = o.length, s.length
	s.mode, o.mode = o.mode, s.mode
	s.heap, o.heap = o.heap, s.heap
	s.lit, o.lit = o.lit, s.lit
	s.alloc, o.alloc = o.alloc, s.alloc
}

// Clear empties the string. A heap block is released and the string goes
// back to inline storage.
func (s *String) Clear() {
	s.dropStorage()
	s.mode = Inline
	s.commit(0)
}

// Release frees the heap block, if any. The string is empty afterwards and
// can be reused. Strings on alloc.Heap never need it.
func (s *String) Release() {
	s.Clear()
}

// UseAllocator switches the allocator used for future heap blocks. A
// current heap block is moved into a block from a. A nil a selects the Go
// heap.
func (s *String) UseAllocator(a alloc.Allocator) {
	if a == nil {
		a = alloc.Heap{}
	}
	if s.mode == Heap {
		blk := a.Allocate(len(s.heap))
		copy(blk, s.heap[:s.length+1])
		s.allocator().Deallocate(s.heap)
		s.heap = blk
	}
	s.alloc = a
}

// Reserve makes room for n bytes of content. Moving to the heap allocates
// exactly n+1 bytes; storage that already fits n is left alone. A borrowed
// string is cloned.
func (s *String) Reserve(n int) {
	need := max(n, s.length) + 1
	if s.mode != Borrowed && need <= s.capTag() {
		return
	}
	s.relocate(need)
}

// Grow makes room for n more bytes using the regular growth policy.
func (s *String) Grow(n int) {
	if n < 0 {
		panicf("negative Grow count %d", n)
	}
	if n == 0 {
		return
	}
	s.reserveFor(s.length + n)
}

// ShrinkToFit reallocates a heap string to the policy size for its current
// length when that is smaller, moving it back inline when it fits there.
func (s *String) ShrinkToFit() {
	if s.mode != Heap {
		return
	}
	if size := chooseAllocationSize(s.length + 1); size < len(s.heap) {
		s.relocate(size)
	}
}
