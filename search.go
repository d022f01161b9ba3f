package simdstring

import "bytes"

// byteSet is a 256-bit membership table. Sets are raw bytes, never runes.
type byteSet [8]uint32

func makeByteSet(chars string) byteSet {
	var as byteSet
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		as[c>>5] |= 1 << (c & 31)
	}
	return as
}

func (as *byteSet) has(c byte) bool {
	return as[c>>5]&(1<<(c&31)) != 0
}

// lastStart clamps a backward search start to the last valid index of an
// n-byte string. NPos means the end.
func lastStart(pos, n int) int {
	if pos < 0 || pos >= n {
		return n - 1
	}
	return pos
}

// Find returns the index of the first occurrence of needle at or after pos,
// or NPos. An empty needle matches at pos when pos <= Len.
func (s *String) Find(needle string, pos int) int {
	b := s.bytes()
	if pos < 0 || pos > len(b) {
		return NPos
	}
	if len(needle) == 0 {
		return pos
	}
	if i := bytes.Index(b[pos:], stringBytes(needle)); i >= 0 {
		return pos + i
	}
	return NPos
}

// FindByte returns the index of the first c at or after pos, or NPos.
func (s *String) FindByte(c byte, pos int) int {
	b := s.bytes()
	if pos < 0 || pos >= len(b) {
		return NPos
	}
	if i := bytes.IndexByte(b[pos:], c); i >= 0 {
		return pos + i
	}
	return NPos
}

// RFind returns the index of the last occurrence of needle starting at or
// before pos, or NPos. Pass NPos to search the whole string.
func (s *String) RFind(needle string, pos int) int {
	b := s.bytes()
	if len(needle) > len(b) {
		return NPos
	}
	start := len(b) - len(needle)
	if pos >= 0 && pos < start {
		start = pos
	}
	if len(needle) == 0 {
		return start
	}
	return bytes.LastIndex(b[:start+len(needle)], stringBytes(needle))
}

// RFindByte returns the index of the last c at or before pos, or NPos.
func (s *String) RFindByte(c byte, pos int) int {
	b := s.bytes()
	if len(b) == 0 {
		return NPos
	}
	return bytes.LastIndexByte(b[:lastStart(pos, len(b))+1], c)
}

// Contains reports whether needle occurs in s.
func (s *String) Contains(needle string) bool {
	return bytes.Contains(s.bytes(), stringBytes(needle))
}

// ContainsByte reports whether c occurs in s.
func (s *String) ContainsByte(c byte) bool {
	return bytes.IndexByte(s.bytes(), c) >= 0
}

// FindFirstOf returns the index of the first byte at or after pos that is in
// set, or NPos.
func (s *String) FindFirstOf(set string, pos int) int {
	return s.scanForward(set, pos, true)
}

// FindFirstNotOf returns the index of the first byte at or after pos that is
// not in set, or NPos.
func (s *String) FindFirstNotOf(set string, pos int) int {
	return s.scanForward(set, pos, false)
}

// FindLastOf returns the index of the last byte at or before pos that is in
// set, or NPos.
func (s *String) FindLastOf(set string, pos int) int {
	return s.scanBackward(set, pos, true)
}

// FindLastNotOf returns the index of the last byte at or before pos that is
// not in set, or NPos.
func (s *String) FindLastNotOf(set string, pos int) int {
	return s.scanBackward(set, pos, false)
}

func (s *String) scanForward(set string, pos int, in bool) int {
	b := s.bytes()
	if pos < 0 || pos >= len(b) {
		return NPos
	}
	if len(set) == 1 && in {
		return s.FindByte(set[0], pos)
	}
	as := makeByteSet(set)
	for i := pos; i < len(b); i++ {
		if as.has(b[i]) == in {
			return i
		}
	}
	return NPos
}

func (s *String) scanBackward(set string, pos int, in bool) int {
	b := s.bytes()
	if len(b) == 0 {
		return NPos
	}
	as := makeByteSet(set)
	for i := lastStart(pos, len(b)); i >= 0; i-- {
		if as.has(b[i]) == in {
			return i
		}
	}
	return NPos
}

// HasPrefix reports whether s begins with prefix.
func (s *String) HasPrefix(prefix string) bool {
	return bytes.HasPrefix(s.bytes(), stringBytes(prefix))
}

// HasSuffix reports whether s ends with suffix.
func (s *String) HasSuffix(suffix string) bool {
	return bytes.HasSuffix(s.bytes(), stringBytes(suffix))
}

// HasPrefixByte reports whether the first byte is c.
func (s *String) HasPrefixByte(c byte) bool {
	return s.length > 0 && s.bytes()[0] == c
}

// HasSuffixByte reports whether the last byte is c.
func (s *String) HasSuffixByte(c byte) bool {
	return s.length > 0 && s.bytes()[s.length-1] == c
}
