// Package workload holds the string workloads shared by the package
// benchmarks and the simdbench command. Each case runs against String and
// against the closest plain Go baseline.
package workload

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/rawbytedev/simdstring"
)

// literal is a constant so that NewString can borrow it.
const literal = "the quick brown fox jumps over the lazy dog"

// DefaultSizes are the payload lengths a run covers when none are given.
var DefaultSizes = []int{8, 32, 63, 128, 1024}

// Case is one workload. Both functions run b.N iterations over a payload of
// the requested length.
type Case struct {
	Name     string
	String   func(b *testing.B, payload string)
	Baseline func(b *testing.B, payload string)
}

var (
	sinkStr  *simdstring.String
	sinkInt  int
	sinkBool bool
	sinkGo   string
	sinkB    []byte
)

// Payload returns n bytes of printable text that never contains the search
// needle used by the find cases.
func Payload(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte('a' + byte(i%23))
	}
	return sb.String()
}

const needle = "zz"

// Cases returns every workload in a stable order.
func Cases() []Case {
	return []Case{
		{
			Name: "CtorDefault",
			String: func(b *testing.B, _ string) {
				for i := 0; i < b.N; i++ {
					sinkStr = simdstring.New()
				}
			},
			Baseline: func(b *testing.B, _ string) {
				for i := 0; i < b.N; i++ {
					sinkB = make([]byte, 0)
				}
			},
		},
		{
			Name: "ConstLiteralCtor",
			String: func(b *testing.B, _ string) {
				for i := 0; i < b.N; i++ {
					sinkStr = simdstring.NewString(literal)
				}
			},
			Baseline: func(b *testing.B, _ string) {
				for i := 0; i < b.N; i++ {
					sinkB = []byte(literal)
				}
			},
		},
		{
			Name: "Ctor",
			String: func(b *testing.B, p string) {
				for i := 0; i < b.N; i++ {
					sinkStr = simdstring.NewString(p)
				}
			},
			Baseline: func(b *testing.B, p string) {
				for i := 0; i < b.N; i++ {
					sinkB = []byte(p)
				}
			},
		},
		{
			Name: "CopyConstruct",
			String: func(b *testing.B, p string) {
				src := simdstring.NewString(p)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					sinkStr = src.Clone()
				}
			},
			Baseline: func(b *testing.B, p string) {
				src := []byte(p)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					sinkB = bytes.Clone(src)
				}
			},
		},
		{
			Name: "Assign",
			String: func(b *testing.B, p string) {
				src, dst := simdstring.NewString(p), simdstring.New()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					dst.Assign(src)
				}
				sinkStr = dst
			},
			Baseline: func(b *testing.B, p string) {
				src, dst := []byte(p), []byte(nil)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					dst = append(dst[:0], src...)
				}
				sinkB = dst
			},
		},
		{
			Name: "AppendToEmpty",
			String: func(b *testing.B, p string) {
				for i := 0; i < b.N; i++ {
					s := simdstring.New()
					s.AppendString(p)
					sinkStr = s
				}
			},
			Baseline: func(b *testing.B, p string) {
				for i := 0; i < b.N; i++ {
					var sb strings.Builder
					sb.WriteString(p)
					sinkGo = sb.String()
				}
			},
		},
		{
			Name: "Append",
			String: func(b *testing.B, p string) {
				for i := 0; i < b.N; i++ {
					s := simdstring.NewString(literal)
					s.AppendString(p)
					sinkStr = s
				}
			},
			Baseline: func(b *testing.B, p string) {
				for i := 0; i < b.N; i++ {
					sinkGo = literal + p
				}
			},
		},
		{
			Name: "PushBack",
			String: func(b *testing.B, p string) {
				for i := 0; i < b.N; i++ {
					s := simdstring.New()
					for j := 0; j < len(p); j++ {
						s.PushBack(p[j])
					}
					sinkStr = s
				}
			},
			Baseline: func(b *testing.B, p string) {
				for i := 0; i < b.N; i++ {
					var out []byte
					for j := 0; j < len(p); j++ {
						out = append(out, p[j])
					}
					sinkB = out
				}
			},
		},
		{
			Name: "Insert",
			String: func(b *testing.B, p string) {
				for i := 0; i < b.N; i++ {
					s := simdstring.NewString(p)
					s.InsertString(s.Len()/2, literal)
					sinkStr = s
				}
			},
			Baseline: func(b *testing.B, p string) {
				for i := 0; i < b.N; i++ {
					sinkGo = p[:len(p)/2] + literal + p[len(p)/2:]
				}
			},
		},
		{
			Name: "Concat",
			String: func(b *testing.B, p string) {
				x, y := simdstring.NewString(p), simdstring.NewString(literal)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					sinkStr = simdstring.Concat(x, y)
				}
			},
			Baseline: func(b *testing.B, p string) {
				for i := 0; i < b.N; i++ {
					sinkGo = p + literal
				}
			},
		},
		{
			Name: "FindNoMatch",
			String: func(b *testing.B, p string) {
				s := simdstring.NewString(p)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					sinkInt = s.Find(needle, 0)
				}
			},
			Baseline: func(b *testing.B, p string) {
				for i := 0; i < b.N; i++ {
					sinkInt = strings.Index(p, needle)
				}
			},
		},
		{
			Name: "RFindNoMatch",
			String: func(b *testing.B, p string) {
				s := simdstring.NewString(p)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					sinkInt = s.RFind(needle, simdstring.NPos)
				}
			},
			Baseline: func(b *testing.B, p string) {
				for i := 0; i < b.N; i++ {
					sinkInt = strings.LastIndex(p, needle)
				}
			},
		},
		{
			Name: "Reserve",
			String: func(b *testing.B, p string) {
				for i := 0; i < b.N; i++ {
					s := simdstring.New()
					s.Reserve(len(p))
					sinkStr = s
				}
			},
			Baseline: func(b *testing.B, p string) {
				for i := 0; i < b.N; i++ {
					sinkB = make([]byte, 0, len(p)+1)
				}
			},
		},
		{
			Name: "Equality",
			String: func(b *testing.B, p string) {
				x, y := simdstring.NewString(p), simdstring.NewString(p)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					sinkBool = x.Equal(y)
				}
			},
			Baseline: func(b *testing.B, p string) {
				x, y := []byte(p), []byte(p)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					sinkBool = bytes.Equal(x, y)
				}
			},
		},
		{
			Name: "Compare",
			String: func(b *testing.B, p string) {
				x, y := simdstring.NewString(p), simdstring.NewString(p+"!")
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					sinkInt = x.Compare(y)
				}
			},
			Baseline: func(b *testing.B, p string) {
				x, y := []byte(p), []byte(p+"!")
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					sinkInt = bytes.Compare(x, y)
				}
			},
		},
		{
			Name: "Getline",
			String: func(b *testing.B, p string) {
				line := p + "\n"
				s := simdstring.New()
				r := strings.NewReader(line)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					r.Reset(line)
					_ = s.ReadLine(r, '\n')
				}
				sinkStr = s
			},
			Baseline: func(b *testing.B, p string) {
				line := p + "\n"
				r := strings.NewReader(line)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					r.Reset(line)
					out, _ := io.ReadAll(io.LimitReader(r, int64(len(p))))
					sinkB = out
				}
			},
		},
		{
			Name: "Out",
			String: func(b *testing.B, p string) {
				s := simdstring.NewString(p)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, _ = s.WriteTo(io.Discard)
				}
			},
			Baseline: func(b *testing.B, p string) {
				for i := 0; i < b.N; i++ {
					_, _ = io.WriteString(io.Discard, p)
				}
			},
		},
		{
			Name: "Swap",
			String: func(b *testing.B, p string) {
				x, y := simdstring.NewString(p), simdstring.NewString(literal)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					x.Swap(y)
				}
			},
			Baseline: func(b *testing.B, p string) {
				x, y := []byte(p), []byte(literal)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					x, y = y, x
				}
				sinkB = x
			},
		},
	}
}

// Select returns the cases whose names appear in names, or every case when
// names is empty. Unknown names are returned separately.
func Select(names []string) (picked []Case, unknown []string) {
	all := Cases()
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]Case, len(all))
	for _, c := range all {
		byName[c.Name] = c
	}
	for _, n := range names {
		c, ok := byName[n]
		if !ok {
			unknown = append(unknown, n)
			continue
		}
		picked = append(picked, c)
	}
	return picked, unknown
}
