package main

import (
	"fmt"
	"io"
	"testing"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/rawbytedev/simdstring/internal/workload"
)

// row is one workload at one payload size, measured for both
// implementations.
type row struct {
	Name     string
	Size     int
	String   testing.BenchmarkResult
	Baseline testing.BenchmarkResult
}

func measure(c workload.Case, size int) row {
	p := workload.Payload(size)
	run := func(fn func(*testing.B, string)) testing.BenchmarkResult {
		return testing.Benchmark(func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(size))
			fn(b, p)
		})
	}
	return row{Name: c.Name, Size: size, String: run(c.String), Baseline: run(c.Baseline)}
}

// speedup is baseline time over simdstring time; above 1 means simdstring
// was faster.
func (r row) speedup() float64 {
	s := r.String.NsPerOp()
	if s == 0 {
		return 0
	}
	return float64(r.Baseline.NsPerOp()) / float64(s)
}

func throughput(res testing.BenchmarkResult) string {
	if res.Bytes == 0 || res.T <= 0 {
		return "-"
	}
	perSec := float64(res.Bytes) * float64(res.N) / res.T.Seconds()
	return humanize.Bytes(uint64(perSec)) + "/s"
}

func nsPerOp(res testing.BenchmarkResult) string {
	if res.N == 0 {
		return "-"
	}
	return time.Duration(res.NsPerOp()).String()
}

func writeReport(w io.Writer, rows []row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "workload\tsize\tsimdstring\tB/op\tallocs\tthroughput\tbaseline\tB/op\tallocs\tspeedup\t")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\t%d\t%.2fx\t\n",
			r.Name,
			humanize.IBytes(uint64(r.Size)),
			nsPerOp(r.String),
			humanize.IBytes(uint64(r.String.AllocedBytesPerOp())),
			r.String.AllocsPerOp(),
			throughput(r.String),
			nsPerOp(r.Baseline),
			humanize.IBytes(uint64(r.Baseline.AllocedBytesPerOp())),
			r.Baseline.AllocsPerOp(),
			r.speedup(),
		)
	}
	return tw.Flush()
}
