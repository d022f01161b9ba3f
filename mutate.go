package simdstring

// Append adds the content of o.
func (s *String) Append(o *String) *String {
	s.appendBytes(o.bytes())
	return s
}

// AppendSub adds count bytes of o starting at pos.
func (s *String) AppendSub(o *String, pos, count int) *String {
	checkPos(pos, o.length)
	count = clampCount(pos, count, o.length)
	s.appendBytes(o.bytes()[pos : pos+count])
	return s
}

// AppendString adds str.
func (s *String) AppendString(str string) *String {
	s.appendBytes(stringBytes(str))
	return s
}

// AppendBytes adds b.
func (s *String) AppendBytes(b []byte) *String {
	s.appendBytes(b)
	return s
}

// AppendByte adds c.
func (s *String) AppendByte(c byte) *String {
	blk := s.reserveFor(s.length + 1)
	blk[s.length] = c
	s.commit(s.length + 1)
	return s
}

// AppendRepeat adds n copies of c.
func (s *String) AppendRepeat(n int, c byte) *String {
	if n < 0 {
		panicf("negative repeat count %d", n)
	}
	if n == 0 {
		return s
	}
	end := s.length + n
	blk := s.reserveFor(end)
	fill(blk[s.length:end], c)
	s.commit(end)
	return s
}

// PushBack adds c.
func (s *String) PushBack(c byte) {
	s.AppendByte(c)
}

// PopBack removes the last byte. It panics on an empty string. A borrowed
// string stays borrowed.
func (s *String) PopBack() {
	if s.length == 0 {
		panicf("PopBack on empty string")
	}
	if s.mode == Borrowed {
		s.borrow(s.lit[:s.length-1])
		return
	}
	s.commit(s.length - 1)
}

// Insert inserts the content of o at pos.
func (s *String) Insert(pos int, o *String) *String {
	checkPos(pos, s.length)
	s.replaceWith(pos, 0, o.bytes())
	return s
}

// InsertString inserts str at pos.
func (s *String) InsertString(pos int, str string) *String {
	checkPos(pos, s.length)
	s.replaceWith(pos, 0, stringBytes(str))
	return s
}

// InsertBytes inserts b at pos.
func (s *String) InsertBytes(pos int, b []byte) *String {
	checkPos(pos, s.length)
	s.replaceWith(pos, 0, b)
	return s
}

// InsertByte inserts c at pos.
func (s *String) InsertByte(pos int, c byte) *String {
	checkPos(pos, s.length)
	s.replaceFill(pos, 0, 1, c)
	return s
}

// InsertRepeat inserts n copies of c at pos.
func (s *String) InsertRepeat(pos, n int, c byte) *String {
	checkPos(pos, s.length)
	if n < 0 {
		panicf("negative repeat count %d", n)
	}
	s.replaceFill(pos, 0, n, c)
	return s
}

// Replace replaces count bytes at pos with the content of o.
func (s *String) Replace(pos, count int, o *String) *String {
	checkPos(pos, s.length)
	s.replaceWith(pos, clampCount(pos, count, s.length), o.bytes())
	return s
}

// ReplaceString replaces count bytes at pos with str.
func (s *String) ReplaceString(pos, count int, str string) *String {
	checkPos(pos, s.length)
	s.replaceWith(pos, clampCount(pos, count, s.length), stringBytes(str))
	return s
}

// ReplaceBytes replaces count bytes at pos with b.
func (s *String) ReplaceBytes(pos, count int, b []byte) *String {
	checkPos(pos, s.length)
	s.replaceWith(pos, clampCount(pos, count, s.length), b)
	return s
}

// ReplaceRepeat replaces count bytes at pos with n copies of c.
func (s *String) ReplaceRepeat(pos, count, n int, c byte) *String {
	checkPos(pos, s.length)
	if n < 0 {
		panicf("negative repeat count %d", n)
	}
	s.replaceFill(pos, clampCount(pos, count, s.length), n, c)
	return s
}

// ReplaceRange replaces the bytes in [first, last) with str.
func (s *String) ReplaceRange(first, last int, str string) *String {
	checkRange(first, last, s.length)
	s.replaceWith(first, last-first, stringBytes(str))
	return s
}

// Erase removes count bytes starting at pos. Erasing everything releases
// any heap block and returns the string to inline storage. Erasing a prefix
// or suffix of a borrowed string keeps it borrowed.
func (s *String) Erase(pos, count int) *String {
	checkPos(pos, s.length)
	count = clampCount(pos, count, s.length)
	switch {
	case count == 0:
	case count == s.length:
		s.Clear()
	case s.mode == Borrowed && pos == 0:
		s.borrow(s.lit[count:])
	case s.mode == Borrowed && pos+count == s.length:
		s.borrow(s.lit[:pos])
	default:
		s.splice(pos, count, 0)
	}
	return s
}

// EraseAt removes the byte at i and returns i, the index of the byte that
// followed it.
func (s *String) EraseAt(i int) int {
	checkIndex(i, s.length)
	s.Erase(i, 1)
	return i
}

// EraseRange removes the bytes in [first, last) and returns first.
func (s *String) EraseRange(first, last int) int {
	checkRange(first, last, s.length)
	s.Erase(first, last-first)
	return first
}

// Resize sets the length to n. New bytes are set to c. Shrinking keeps the
// storage, and a borrowed string stays borrowed.
func (s *String) Resize(n int, c byte) {
	if n < 0 {
		panicf("negative length %d", n)
	}
	switch {
	case n == s.length:
	case n < s.length && s.mode == Borrowed:
		s.borrow(s.lit[:n])
	case n < s.length:
		s.commit(n)
	default:
		s.AppendRepeat(n-s.length, c)
	}
}
