package simdstring

const asciiSpace = " \t\n\v\f\r"

// TrimLeft removes leading bytes contained in set.
func (s *String) TrimLeft(set string) *String {
	i := s.FindFirstNotOf(set, 0)
	if i == NPos {
		i = s.length
	}
	return s.keep(i, s.length)
}

// TrimRight removes trailing bytes contained in set.
func (s *String) TrimRight(set string) *String {
	return s.keep(0, s.FindLastNotOf(set, NPos)+1)
}

// Trim removes leading and trailing bytes contained in set.
func (s *String) Trim(set string) *String {
	return s.TrimRight(set).TrimLeft(set)
}

// TrimSpace removes leading and trailing ASCII white space.
func (s *String) TrimSpace() *String {
	return s.Trim(asciiSpace)
}

// keep cuts the content down to [i, j). A borrowed string is re-sliced
// rather than cloned.
func (s *String) keep(i, j int) *String {
	switch {
	case i == 0 && j == s.length:
	case i >= j:
		s.Clear()
	case s.mode == Borrowed:
		s.borrow(s.lit[i:j])
	default:
		blk := s.block()
		copy(blk, blk[i:j])
		s.commit(j - i)
	}
	return s
}
