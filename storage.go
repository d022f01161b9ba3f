package simdstring

import (
	"bytes"
	"sync"
	"unsafe"

	"github.com/rawbytedev/simdstring/internal/common"
	"github.com/rawbytedev/simdstring/internal/simd"
	"github.com/rawbytedev/simdstring/pkg/alloc"
	"github.com/rawbytedev/simdstring/pkg/literal"
)

// InternalSize is the size of the inline window, terminator included. It is
// a multiple of the block width so inline windows can be moved in whole
// vector chunks.
const InternalSize = 64

// NPos means "not found" when returned by a search and "to the end" when
// passed as a count.
const NPos = -1

// Mode reports where the content of a String lives.
type Mode uint8

const (
	Inline Mode = iota
	Borrowed
	Heap
)

func (m Mode) String() string {
	switch m {
	case Inline:
		return "inline"
	case Borrowed:
		return "borrowed"
	case Heap:
		return "heap"
	}
	return "unknown"
}

// noCopy makes go vet flag String values copied after first use.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// String is a byte string with inline, heap and borrowed storage. The zero
// value is an empty inline string that allocates from the default allocator.
type String struct {
	_ noCopy

	// raw holds the inline window at its first 16-byte boundary.
	raw    [InternalSize + common.Alignment]byte
	length int
	mode   Mode
	heap   []byte // Heap mode only; len(heap) is the capacity tag
	lit    string // Borrowed mode only
	alloc  alloc.Allocator
}

var (
	detectMu sync.RWMutex
	detect   literal.Detector = literal.Static

	allocMu      sync.RWMutex
	defaultAlloc alloc.Allocator = alloc.Heap{}
)

// SetDefaultAllocator replaces the allocator picked up by strings that were
// not given one, and returns the previous one. A string keeps the allocator
// it first allocated from. A nil allocator restores alloc.Heap.
func SetDefaultAllocator(a alloc.Allocator) alloc.Allocator {
	if a == nil {
		a = alloc.Heap{}
	}
	allocMu.Lock()
	prev := defaultAlloc
	defaultAlloc = a
	allocMu.Unlock()
	return prev
}

// SetLiteralDetector replaces the detector used to decide whether a Go
// string can be borrowed, and returns the previous one. A nil detector
// restores literal.Static.
func SetLiteralDetector(d literal.Detector) literal.Detector {
	if d == nil {
		d = literal.Static
	}
	detectMu.Lock()
	prev := detect
	detect = d
	detectMu.Unlock()
	return prev
}

func isLiteral(str string) bool {
	if len(str) == 0 {
		return false
	}
	detectMu.RLock()
	d := detect
	detectMu.RUnlock()
	return d(unsafe.Pointer(unsafe.StringData(str)))
}

// chooseAllocationSize returns the storage size for n bytes, terminator
// included.
func chooseAllocationSize(n int) int {
	if n <= InternalSize {
		return InternalSize
	}
	return max(2*n+1, 2*InternalSize+1)
}

// stringBytes views str as a byte slice. The result must not be written.
func stringBytes(str string) []byte {
	return unsafe.Slice(unsafe.StringData(str), len(str))
}

// allocator pins the default allocator on first use so that a block is
// always freed to the allocator it came from.
func (s *String) allocator() alloc.Allocator {
	if s.alloc == nil {
		allocMu.RLock()
		s.alloc = defaultAlloc
		allocMu.RUnlock()
	}
	return s.alloc
}

// inline returns the aligned inline window.
func (s *String) inline() []byte {
	off := common.AlignOffset(unsafe.Pointer(&s.raw[0]))
	return s.raw[off : off+InternalSize : off+InternalSize]
}

// capTag is 0 when borrowed, InternalSize when inline and the block size
// when on the heap.
func (s *String) capTag() int {
	switch s.mode {
	case Borrowed:
		return 0
	case Heap:
		return len(s.heap)
	}
	return InternalSize
}

// block returns the owned storage, or nil when borrowed.
func (s *String) block() []byte {
	switch s.mode {
	case Borrowed:
		return nil
	case Heap:
		return s.heap
	}
	return s.inline()
}

// bytes returns the content without resolving ownership. The result must
// not be written.
func (s *String) bytes() []byte {
	if s.mode == Borrowed {
		return stringBytes(s.lit)
	}
	return s.block()[:s.length]
}

// dropStorage frees the heap block, if any, and forgets the borrowed
// literal. The mode is left for the caller to set.
func (s *String) dropStorage() {
	if s.mode == Heap {
		s.allocator().Deallocate(s.heap)
		s.heap = nil
	}
	s.lit = ""
}

// install makes blk the storage. blk is either the inline window or a fresh
// heap block of more than InternalSize bytes.
func (s *String) install(blk []byte) {
	if len(blk) > InternalSize {
		s.heap = blk
		s.mode = Heap
		return
	}
	s.mode = Inline
}

// storageFor returns inline storage when size fits it, otherwise a fresh
// heap block of exactly size bytes.
func (s *String) storageFor(size int) []byte {
	if size <= InternalSize {
		return s.inline()
	}
	return s.allocator().Allocate(size)
}

// relocate moves the content into owned storage of the given size, which
// must exceed the length. The old heap block is freed after the copy.
func (s *String) relocate(size int) {
	if size <= InternalSize && s.mode == Inline {
		return
	}
	src := s.bytes()
	blk := s.storageFor(size)
	n := copy(blk, src)
	blk[n] = 0
	s.dropStorage()
	s.install(blk)
}

// reserveFor resolves the string for writing n bytes of content: a borrowed
// string is cloned and storage too small for n is grown by the policy. The
// existing content is preserved. Any slice obtained earlier is invalidated.
func (s *String) reserveFor(n int) []byte {
	need := max(n, s.length) + 1
	if s.mode == Borrowed || s.capTag() < need {
		s.relocate(chooseAllocationSize(need))
	}
	return s.block()
}

// commit sets the length to n and writes the terminator.
func (s *String) commit(n int) {
	blk := s.block()
	blk[n] = 0
	s.length = n
}

// discardFor prepares owned storage for n bytes of new content without
// keeping the old content. Storage that is already large enough is reused.
func (s *String) discardFor(n int) []byte {
	if s.mode != Borrowed && n+1 <= s.capTag() {
		return s.block()
	}
	blk := s.storageFor(chooseAllocationSize(n + 1))
	s.dropStorage()
	s.install(blk)
	s.length = 0
	return blk
}

// assignBytes replaces the content with a copy of src.
func (s *String) assignBytes(src []byte) {
	if s.aliases(src) {
		src = bytes.Clone(src)
	}
	blk := s.discardFor(len(src))
	copy(blk, src)
	s.commit(len(src))
}

// borrow makes str the content without copying. An empty str leaves an
// empty inline string.
func (s *String) borrow(str string) {
	s.dropStorage()
	if len(str) == 0 {
		s.mode = Inline
		s.commit(0)
		return
	}
	s.mode = Borrowed
	s.lit = str
	s.length = len(str)
}

// aliases reports whether src shares memory with the owned storage.
func (s *String) aliases(src []byte) bool {
	return s.mode != Borrowed && common.Overlaps(src, s.block())
}

// splice replaces the count bytes at pos with an n-byte hole and returns the
// hole for the caller to fill. Storage is grown or cloned as needed and the
// rest of the content is kept in place around the hole.
func (s *String) splice(pos, count, n int) []byte {
	newLen := s.length - count + n
	old := s.bytes()
	if s.mode != Borrowed && newLen+1 <= s.capTag() {
		blk := s.block()
		copy(blk[pos+n:], old[pos+count:])
		blk[newLen] = 0
		s.length = newLen
		return blk[pos : pos+n]
	}
	blk := s.storageFor(chooseAllocationSize(newLen + 1))
	copy(blk, old[:pos])
	copy(blk[pos+n:], old[pos+count:])
	blk[newLen] = 0
	s.dropStorage()
	s.install(blk)
	s.length = newLen
	return blk[pos : pos+n]
}

// replaceWith replaces the count bytes at pos with src.
func (s *String) replaceWith(pos, count int, src []byte) {
	if count == 0 && len(src) == 0 {
		return
	}
	if s.aliases(src) {
		src = bytes.Clone(src)
	}
	copy(s.splice(pos, count, len(src)), src)
}

// replaceFill replaces the count bytes at pos with n copies of c.
func (s *String) replaceFill(pos, count, n int, c byte) {
	if count == 0 && n == 0 {
		return
	}
	fill(s.splice(pos, count, n), c)
}

// appendBytes adds src at the end.
func (s *String) appendBytes(src []byte) {
	if len(src) == 0 {
		return
	}
	n := s.length + len(src)
	if s.aliases(src) && n+1 > s.capTag() {
		src = bytes.Clone(src)
	}
	blk := s.reserveFor(n)
	copy(blk[s.length:], src)
	s.commit(n)
}

// copyFrom makes s an owned or shared copy of o[pos:pos+count]. When both
// strings are inline and pos sits on a block boundary the window tail is
// moved in vector chunks.
func (s *String) copyFrom(o *String, pos, count int) {
	if o.mode == Borrowed {
		s.borrow(o.lit[pos : pos+count])
		return
	}
	if o.mode == Inline && pos%simd.Width == 0 && count+1 <= InternalSize && s.mode != Heap {
		s.dropStorage()
		s.mode = Inline
		simd.Copy(s.inline()[:InternalSize-pos], o.inline()[pos:])
		s.commit(count)
		return
	}
	s.assignBytes(o.bytes()[pos : pos+count])
}

func fill(b []byte, c byte) {
	for i := range b {
		b[i] = c
	}
}
