package simdstring

import "bytes"

// sameView reports whether a and b are the same memory, which makes them
// equal without a scan.
func sameView(a, b []byte) bool {
	return len(a) == len(b) && (len(a) == 0 || &a[0] == &b[0])
}

// Compare returns -1, 0 or +1 as s sorts before, equal to or after o.
// Bytes compare unsigned and a proper prefix sorts first.
func (s *String) Compare(o *String) int {
	a, b := s.bytes(), o.bytes()
	if sameView(a, b) {
		return 0
	}
	return bytes.Compare(a, b)
}

// CompareString compares s with str like Compare.
func (s *String) CompareString(str string) int {
	return bytes.Compare(s.bytes(), stringBytes(str))
}

// CompareSub compares count bytes of s starting at pos with str.
func (s *String) CompareSub(pos, count int, str string) int {
	checkPos(pos, s.length)
	count = clampCount(pos, count, s.length)
	return bytes.Compare(s.bytes()[pos:pos+count], stringBytes(str))
}

// Equal reports whether s and o hold the same bytes.
func (s *String) Equal(o *String) bool {
	a, b := s.bytes(), o.bytes()
	return sameView(a, b) || bytes.Equal(a, b)
}

// EqualString reports whether s holds exactly the bytes of str.
func (s *String) EqualString(str string) bool {
	return string(s.bytes()) == str
}

// Less reports whether s sorts before o.
func (s *String) Less(o *String) bool {
	return s.Compare(o) < 0
}
