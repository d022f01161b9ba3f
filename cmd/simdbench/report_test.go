package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/simdstring"
	"github.com/rawbytedev/simdstring/pkg/alloc"
)

func TestWriteReport(t *testing.T) {
	rows := []row{
		{
			Name:     "Append",
			Size:     2048,
			String:   testing.BenchmarkResult{N: 1000, T: time.Millisecond, Bytes: 2048, MemAllocs: 1000, MemBytes: 4096000},
			Baseline: testing.BenchmarkResult{N: 1000, T: 2 * time.Millisecond, Bytes: 2048},
		},
		{Name: "Swap", Size: 8},
	}
	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, rows))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "speedup")
	assert.Contains(t, lines[1], "Append")
	assert.Contains(t, lines[1], "2.0 KiB")
	assert.Contains(t, lines[1], "1µs")
	assert.Contains(t, lines[1], "2.00x")
	assert.Contains(t, lines[1], "4.0 KiB")
	assert.Contains(t, lines[2], "Swap")
	assert.Contains(t, lines[2], "0.00x")
}

func TestThroughput(t *testing.T) {
	assert.Equal(t, "-", throughput(testing.BenchmarkResult{}))
	res := testing.BenchmarkResult{N: 1000, T: time.Second, Bytes: 1000}
	assert.Equal(t, "1.0 MB/s", throughput(res))
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	tr := alloc.NewTracking(nil)
	s := simdstring.New()
	s.UseAllocator(alloc.NewInstrumented(tr, reg))
	s.AppendString(strings.Repeat("m", 500))
	defer s.Release()

	srv := httptest.NewServer(newMux(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "simdstring_heap_allocations_total 1")
	assert.Contains(t, string(body), "simdstring_heap_live_bytes")

	resp, err = http.Get(srv.URL + "/debug/pprof/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
