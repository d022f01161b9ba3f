// Command simdbench runs the string workloads against simdstring and plain
// Go baselines and prints a comparison table.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"syscall"
	"testing"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/rawbytedev/simdstring"
	"github.com/rawbytedev/simdstring/internal/simd"
	"github.com/rawbytedev/simdstring/internal/workload"
	"github.com/rawbytedev/simdstring/pkg/alloc"
	"github.com/rawbytedev/simdstring/pkg/literal"
)

type options struct {
	configFile  string
	sizes       []int
	workloads   []string
	benchTime   time.Duration
	allocator   string
	noSIMD      bool
	logLevel    string
	memProfile  string
	profileRate int
	listenAddr  string
	hold        time.Duration
}

func main() {
	var opts options
	app := kingpin.New("simdbench", "Compare simdstring against plain Go strings and byte slices.")
	app.HelpFlag.Short('h')
	app.Flag("config.file", "YAML configuration file.").StringVar(&opts.configFile)
	app.Flag("size", "Payload size in bytes. Repeatable.").IntsVar(&opts.sizes)
	app.Flag("workload", "Workload to run. Repeatable; all when omitted.").StringsVar(&opts.workloads)
	app.Flag("benchtime", "Target run time per measurement.").DurationVar(&opts.benchTime)
	app.Flag("allocator", "Heap block allocator.").EnumVar(&opts.allocator, allocHeap, allocPool)
	app.Flag("no-simd", "Disable the vector copy paths.").BoolVar(&opts.noSIMD)
	app.Flag("log.level", "Only log messages with the given severity or above.").Default("info").EnumVar(&opts.logLevel, "debug", "info", "warn", "error")
	app.Flag("mem.profile", "Write a heap profile to this file after the run.").StringVar(&opts.memProfile)
	app.Flag("mem.profile-rate", "runtime.MemProfileRate while profiling; 0 keeps the default.").IntVar(&opts.profileRate)
	app.Flag("web.listen-address", "Serve /metrics and /debug/pprof on this address.").StringVar(&opts.listenAddr)
	app.Flag("hold", "Keep the listener up this long after the run.").DurationVar(&opts.hold)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := newLogger(opts.logLevel)
	if err := run(opts, logger); err != nil {
		level.Error(logger).Log("msg", "run failed", "err", err)
		os.Exit(1)
	}
}

func newLogger(lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = level.NewFilter(logger, levelOption(lvl))
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

func levelOption(lvl string) level.Option {
	switch lvl {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	}
	return level.AllowInfo()
}

// resolveConfig loads the file, if any, and applies the flags on top.
func resolveConfig(opts options) (Config, error) {
	cfg := DefaultConfig()
	if opts.configFile != "" {
		var err error
		if cfg, err = LoadConfig(opts.configFile); err != nil {
			return cfg, err
		}
	}
	if len(opts.sizes) > 0 {
		cfg.Sizes = opts.sizes
	}
	if len(opts.workloads) > 0 {
		cfg.Workloads = opts.workloads
	}
	if opts.benchTime > 0 {
		cfg.BenchTime = opts.benchTime
	}
	if opts.allocator != "" {
		cfg.Allocator = opts.allocator
	}
	if opts.noSIMD {
		off := false
		cfg.SIMD = &off
	}
	return cfg, cfg.Validate()
}

func run(opts options, logger log.Logger) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}
	literal.SetLogger(log.With(logger, "component", "literal"))

	testing.Init()
	if err := flag.Set("test.benchtime", cfg.BenchTime.String()); err != nil {
		return errors.Wrap(err, "set benchtime")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	base, pool := cfg.baseAllocator()
	prevAlloc := simdstring.SetDefaultAllocator(alloc.NewInstrumented(base, reg))
	defer simdstring.SetDefaultAllocator(prevAlloc)

	prevSIMD := simd.SetEnabled(cfg.SIMDEnabled())
	defer simd.SetEnabled(prevSIMD)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var errc <-chan error
	if opts.listenAddr != "" {
		exp := newExporter(opts.listenAddr, reg)
		errc = exp.start()
		defer func() {
			if err := exp.stop(); err != nil {
				level.Warn(logger).Log("msg", "stopping listener", "err", err)
			}
		}()
		level.Info(logger).Log("msg", "serving metrics and profiles", "addr", opts.listenAddr)
	}

	if opts.memProfile != "" && opts.profileRate > 0 {
		runtime.MemProfileRate = opts.profileRate
	}

	cases, _ := workload.Select(cfg.Workloads)
	level.Info(logger).Log("msg", "starting", "workloads", len(cases), "sizes", fmt.Sprint(cfg.Sizes),
		"allocator", cfg.Allocator, "simd", simd.Enabled(), "benchtime", cfg.BenchTime)

	var rows []row
	for _, c := range cases {
		for _, n := range cfg.Sizes {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r := measure(c, n)
			level.Debug(logger).Log("msg", "measured", "workload", c.Name, "size", n,
				"simdstring_ns", r.String.NsPerOp(), "baseline_ns", r.Baseline.NsPerOp())
			rows = append(rows, r)
		}
	}
	if err := writeReport(os.Stdout, rows); err != nil {
		return errors.Wrap(err, "write report")
	}
	if pool != nil {
		st := pool.Stats()
		level.Info(logger).Log("msg", "pool", "hits", st.Hits, "misses", st.Misses, "puts", st.Puts)
	}

	if opts.memProfile != "" {
		if err := writeHeapProfile(opts.memProfile); err != nil {
			return err
		}
		level.Info(logger).Log("msg", "wrote heap profile", "file", opts.memProfile)
	}

	if errc != nil && opts.hold > 0 {
		level.Info(logger).Log("msg", "holding listener", "for", opts.hold)
		select {
		case <-time.After(opts.hold):
		case <-ctx.Done():
		case err, ok := <-errc:
			if ok {
				return errors.Wrap(err, "listener")
			}
		}
	}
	return nil
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create heap profile")
	}
	defer f.Close()
	runtime.GC()
	return errors.Wrap(pprof.WriteHeapProfile(f), "write heap profile")
}
