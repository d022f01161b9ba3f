// Package simdstring provides String, a mutable byte string that keeps short
// content inside the value itself, borrows string constants without copying
// them and copies on the first write.
//
// A String is in one of three modes:
//
//	Inline    content lives in a 16-byte aligned window of InternalSize bytes
//	          embedded in the String; no heap block exists.
//	Heap      content lives in an aligned block owned by this String alone,
//	          obtained from its allocator (see UseAllocator and
//	          SetDefaultAllocator).
//	Borrowed  content is a read-only Go string that the literal detector
//	          placed in static data. It is never written or freed.
//
// Owned storage always holds a 0 terminator after the content, so CString
// can hand out a terminated view without copying. Every mutating method
// first moves a borrowed string into owned storage and grows the storage
// through a single doubling policy, so a run of N single-byte appends
// reallocates O(log N) times.
//
// Copies and swaps between two inline windows use 128-bit block moves when
// the CPU supports them (see internal/simd); everything else is a byte copy
// with identical results.
//
// A String must not be copied by value after first use: a copy would share
// the heap block. Use Clone, Take or Assign instead. A single String is not
// safe for concurrent mutation.
package simdstring
