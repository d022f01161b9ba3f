package main

import (
	"bytes"
	"os"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/simdstring/internal/workload"
	"github.com/rawbytedev/simdstring/pkg/alloc"
)

// Allocator names accepted in the config and on the command line.
const (
	allocHeap = "heap"
	allocPool = "pool"
)

// Config is the run configuration. Flags override values read from file.
type Config struct {
	Sizes     []int         `yaml:"sizes"`
	Workloads []string      `yaml:"workloads"`
	BenchTime time.Duration `yaml:"benchtime"`
	Allocator string        `yaml:"allocator"`
	SIMD      *bool         `yaml:"simd"`
	Pool      PoolConfig    `yaml:"pool"`
}

// PoolConfig configures the pool allocator.
type PoolConfig struct {
	MaxBlock datasize.ByteSize `yaml:"max_block"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Sizes:     append([]int(nil), workload.DefaultSizes...),
		BenchTime: time.Second,
		Allocator: allocHeap,
		Pool:      PoolConfig{MaxBlock: datasize.ByteSize(alloc.DefaultMaxPooled)},
	}
}

// LoadConfig reads a YAML file over the defaults. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, cfg.Validate()
}

// SIMDEnabled reports whether the vector paths should run.
func (c Config) SIMDEnabled() bool {
	return c.SIMD == nil || *c.SIMD
}

// Validate checks the configuration for values the run cannot use.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.New("no payload sizes configured")
	}
	for _, n := range c.Sizes {
		if n < 0 {
			return errors.Errorf("negative payload size %d", n)
		}
	}
	if c.BenchTime <= 0 {
		return errors.Errorf("benchtime must be positive, got %s", c.BenchTime)
	}
	switch c.Allocator {
	case allocHeap:
	case allocPool:
		if c.Pool.MaxBlock == 0 {
			return errors.New("pool.max_block must be set for the pool allocator")
		}
	default:
		return errors.Errorf("unknown allocator %q", c.Allocator)
	}
	if _, unknown := workload.Select(c.Workloads); len(unknown) > 0 {
		return errors.Errorf("unknown workloads %v", unknown)
	}
	return nil
}

// baseAllocator builds the configured allocator before instrumentation.
func (c Config) baseAllocator() (alloc.Allocator, *alloc.Pool) {
	if c.Allocator == allocPool {
		p := alloc.NewPool(alloc.PoolOptions{MaxPooled: int(c.Pool.MaxBlock.Bytes())})
		return p, p
	}
	return alloc.Heap{}, nil
}
