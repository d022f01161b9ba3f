package simdstring

import (
	"strings"
	"testing"

	"github.com/rawbytedev/simdstring/pkg/literal"
	"github.com/stretchr/testify/assert"
)

func refFind(h, n string, pos int) int {
	if pos < 0 || pos > len(h) {
		return NPos
	}
	for i := pos; i+len(n) <= len(h); i++ {
		if h[i:i+len(n)] == n {
			return i
		}
	}
	return NPos
}

func refRFind(h, n string, pos int) int {
	if len(n) > len(h) {
		return NPos
	}
	start := len(h) - len(n)
	if pos >= 0 && pos < start {
		start = pos
	}
	for i := start; i >= 0; i-- {
		if h[i:i+len(n)] == n {
			return i
		}
	}
	return NPos
}

func refFirstOf(h, set string, pos int, in bool) int {
	if pos < 0 {
		return NPos
	}
	for i := pos; i < len(h); i++ {
		if (strings.IndexByte(set, h[i]) >= 0) == in {
			return i
		}
	}
	return NPos
}

func refLastOf(h, set string, pos int, in bool) int {
	start := pos
	if pos < 0 || pos >= len(h) {
		start = len(h) - 1
	}
	for i := start; i >= 0; i-- {
		if (strings.IndexByte(set, h[i]) >= 0) == in {
			return i
		}
	}
	return NPos
}

var searchHaystacks = []string{
	"",
	"abcabcabcabcabcabcabcdabcabcabcabc",
	"aaaaaaaaaaaaaaaaabaaaaaaaa",
	"----------",
	"The quick brown fox jumps over the lazy dog. Sphinx of black quartz, judge my vow.",
	"     a           b     m       c            d            e    t     f         ",
	"aaaaaaaa",
	"bin\x00ary\xff\x80data",
}

var searchNeedles = []string{
	"", "a", "d", "abcd", "ab", "********", "\xff", "\x00a", "dog", "e",
	"abcabcabcabcabcabcabcdabcabcabcabcasdf",
}

var searchSets = []string{
	"", " ", "a", "d", "mnop", "RST", ".,!?", "1234", "abcdef ", "abcdef", "jkl", "\x80\xff", "?",
}

var searchPositions = []int{NPos, 0, 1, 4, 10, 14, 35, 40, 69, 71, 90}

func TestFind(t *testing.T) {
	detectors(t, func(t *testing.T) {
		for _, h := range searchHaystacks {
			s := NewString(h)
			for _, n := range searchNeedles {
				for _, pos := range append(searchPositions, len(h)) {
					assert.Equal(t, refFind(h, n, pos), s.Find(n, pos), "Find(%q, %d) in %q", n, pos, h)
					assert.Equal(t, refRFind(h, n, pos), s.RFind(n, pos), "RFind(%q, %d) in %q", n, pos, h)
					if len(n) == 1 {
						assert.Equal(t, refFind(h, n, pos), s.FindByte(n[0], pos), "FindByte(%q, %d) in %q", n, pos, h)
						if pos < len(h) || len(h) == 0 {
							assert.Equal(t, refRFind(h, n, pos), s.RFindByte(n[0], pos), "RFindByte(%q, %d) in %q", n, pos, h)
						}
					}
				}
				assert.Equal(t, strings.Contains(h, n), s.Contains(n))
			}
		}
	})
}

func TestFindKnownPositions(t *testing.T) {
	withDetector(t, literal.Never)
	s := NewString("abcabcabcabcabcabcabcdabcabcabcabc")
	assert.Equal(t, 18, s.Find("abcd", 0))
	assert.Equal(t, NPos, s.Find("abcd", 19))
	assert.Equal(t, 21, s.FindByte('d', 0))
	assert.Equal(t, 18, s.RFind("abcd", NPos))
	assert.Equal(t, NPos, s.RFind("abcd", 10))
	assert.Equal(t, 21, s.RFindByte('d', NPos))
	assert.Equal(t, NPos, s.RFindByte('e', NPos))
	assert.Equal(t, 34, s.Find("", 34))
	assert.Equal(t, NPos, s.Find("", 35))
	assert.Equal(t, 34, s.RFind("", NPos))
	assert.Equal(t, NPos, NewRepeat(10, '-').Find(strings.Repeat("*", 8), 0))
	assert.Equal(t, NPos, New().Find("abcd", 0))
	assert.True(t, s.ContainsByte('d'))
	assert.False(t, s.ContainsByte('z'))
}

func TestFindOf(t *testing.T) {
	detectors(t, func(t *testing.T) {
		for _, h := range searchHaystacks {
			s := NewString(h)
			for _, set := range searchSets {
				for _, pos := range append(searchPositions, len(h), len(h)-1) {
					assert.Equal(t, refFirstOf(h, set, pos, true), s.FindFirstOf(set, pos), "FindFirstOf(%q, %d) in %q", set, pos, h)
					assert.Equal(t, refFirstOf(h, set, pos, false), s.FindFirstNotOf(set, pos), "FindFirstNotOf(%q, %d) in %q", set, pos, h)
					assert.Equal(t, refLastOf(h, set, pos, true), s.FindLastOf(set, pos), "FindLastOf(%q, %d) in %q", set, pos, h)
					assert.Equal(t, refLastOf(h, set, pos, false), s.FindLastNotOf(set, pos), "FindLastNotOf(%q, %d) in %q", set, pos, h)
				}
			}
		}
	})
}

func TestFindOfBytesNotRunes(t *testing.T) {
	s := NewBytes([]byte{'a', 0xc3, 0xa9, 'b'})
	assert.Equal(t, 1, s.FindFirstOf("\xc3", 0))
	assert.Equal(t, 2, s.FindFirstOf("\xa9", 0))
	assert.Equal(t, NPos, s.FindFirstOf("é"[1:], 3))
	assert.Equal(t, 3, s.FindFirstNotOf("a\xc3\xa9", 0))
}

func TestPrefixSuffix(t *testing.T) {
	detectors(t, func(t *testing.T) {
		s := NewString(sample)
		assert.True(t, s.HasPrefix("the"))
		assert.False(t, s.HasPrefix("woah"))
		assert.True(t, s.HasSuffix("dog"))
		assert.False(t, s.HasSuffix("woah"))
		assert.True(t, s.HasPrefix(""))
		assert.True(t, s.HasPrefixByte('t'))
		assert.True(t, s.HasSuffixByte('g'))
		assert.False(t, s.HasSuffixByte('t'))
		assert.False(t, New().HasPrefixByte(0))
		assert.False(t, New().HasSuffixByte(0))
	})
}
