package simdstring

import (
	"bytes"
	"sort"
	"strings"
	"testing"
	"testing/quick"

	"github.com/rawbytedev/simdstring/pkg/literal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	detectors(t, func(t *testing.T) {
		words := []string{"", "a", "abc", "abd", "ab", "b", "\xff", "a\x00", "the quick", strings.Repeat("z", 100)}
		for _, a := range words {
			for _, b := range words {
				sa, sb := NewString(a), NewString(b)
				want := strings.Compare(a, b)
				assert.Equal(t, want, sa.Compare(sb), "%q vs %q", a, b)
				assert.Equal(t, want, sa.CompareString(b), "%q vs %q", a, b)
				assert.Equal(t, a == b, sa.Equal(sb))
				assert.Equal(t, a == b, sa.EqualString(b))
				assert.Equal(t, a < b, sa.Less(sb))
			}
		}
	})
}

func TestCompareSelfAndShared(t *testing.T) {
	withDetector(t, literal.Always)
	a := NewString(strings.Clone("shared"))
	b := a.Clone()
	assert.Zero(t, a.Compare(a))
	assert.Zero(t, a.Compare(b))
	assert.True(t, a.Equal(b))
	assert.False(t, a.EqualString(""))
}

func TestCompareSub(t *testing.T) {
	s := NewString(sample)
	assert.Zero(t, s.CompareSub(4, 5, "quick"))
	assert.Equal(t, -1, s.CompareSub(4, 5, "quicker"))
	assert.Equal(t, 1, s.CompareSub(4, NPos, "quick"))
	assert.Zero(t, s.CompareSub(40, NPos, "dog"))
}

func TestCompareProperty(t *testing.T) {
	f := func(a, b []byte) bool {
		return NewBytes(a).Compare(NewBytes(b)) == bytes.Compare(a, b)
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestSortStrings(t *testing.T) {
	in := []string{"pear", "apple", "fig", "apple pie", ""}
	ss := make([]*String, len(in))
	for i, w := range in {
		ss[i] = NewString(w)
	}
	sort.Slice(ss, func(i, j int) bool { return ss[i].Less(ss[j]) })
	got := make([]string, len(ss))
	for i, s := range ss {
		got[i] = s.String()
	}
	assert.Equal(t, []string{"", "apple", "apple pie", "fig", "pear"}, got)
}

func TestTrim(t *testing.T) {
	detectors(t, func(t *testing.T) {
		tests := []struct {
			in, set           string
			left, right, both string
		}{
			{"  hi  ", " ", "hi  ", "  hi", "hi"},
			{"xxyyxx", "x", "yyxx", "xxyy", "yy"},
			{"xxxx", "x", "", "", ""},
			{"abc", "", "abc", "abc", "abc"},
			{"abc", "xyz", "abc", "abc", "abc"},
			{"--" + strings.Repeat("m", 90) + "--", "-", strings.Repeat("m", 90) + "--", "--" + strings.Repeat("m", 90), strings.Repeat("m", 90)},
		}
		for _, tt := range tests {
			l := NewString(tt.in).TrimLeft(tt.set)
			assert.Equal(t, tt.left, l.String(), "TrimLeft(%q, %q)", tt.in, tt.set)
			r := NewString(tt.in).TrimRight(tt.set)
			assert.Equal(t, tt.right, r.String(), "TrimRight(%q, %q)", tt.in, tt.set)
			b := NewString(tt.in).Trim(tt.set)
			assert.Equal(t, tt.both, b.String(), "Trim(%q, %q)", tt.in, tt.set)
			for _, s := range []*String{l, r, b} {
				checkInvariants(t, s)
			}
		}
		assert.Equal(t, "a b", NewString("\t\n a b \r\v\f").TrimSpace().String())
	})
}

func TestTrimBorrowedStaysBorrowed(t *testing.T) {
	withDetector(t, literal.Always)
	s := NewString(strings.Clone("  padded  "))
	s.TrimSpace()
	assert.Equal(t, Borrowed, s.Mode())
	assert.Equal(t, "padded", s.String())
}
