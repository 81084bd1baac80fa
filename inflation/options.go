// SPDX-License-Identifier: MIT
//
// options.go — functional options for the inflation package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs
//     (programmer error). Inflate itself never panics.
//   • No hidden globals; everything flows through config.

package inflation

import (
	"fmt"

	"github.com/katalvlaran/costmap/grid"
	"github.com/katalvlaran/costmap/kernel"
)

// Strategy selects how the kernel is applied.
type Strategy int

const (
	// Gather computes each output cell from its neighbourhood (sliding window).
	Gather Strategy = iota

	// Scatter radiates the kernel outward from each lethal cell.
	Scatter
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Gather:
		return "gather"
	case Scatter:
		return "scatter"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "gather" or "scatter" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "gather", "":
		return Gather, nil
	case "scatter":
		return Scatter, nil
	default:
		return Gather, fmt.Errorf("inflation: unknown strategy %q", name)
	}
}

// Defaults.
const (
	// DefaultWorkers runs the pass on the calling goroutine.
	DefaultWorkers = 1

	// DefaultStrategy is the sliding-window pass.
	DefaultStrategy = Gather

	// DefaultLethal is the occupancy value that radiates cost.
	DefaultLethal = grid.Lethal
)

// Option mutates the pass configuration.
type Option func(*config)

type config struct {
	workers  int
	strategy Strategy
	lethal   int
	cache    *kernel.Cache
}

func newConfig(opts []Option) config {
	c := config{
		workers:  DefaultWorkers,
		strategy: DefaultStrategy,
		lethal:   DefaultLethal,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithWorkers splits the Gather pass into n disjoint row bands.
// Each band writes only its own rows, so no locking is needed.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("inflation: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithStrategy selects Gather or Scatter. Panics on any other value.
func WithStrategy(s Strategy) Option {
	if s != Gather && s != Scatter {
		panic("inflation: WithStrategy(unknown)")
	}
	return func(c *config) {
		c.strategy = s
	}
}

// WithLethal sets the occupancy value treated as an obstacle.
func WithLethal(v int) Option {
	return func(c *config) {
		c.lethal = v
	}
}

// WithKernelCache makes NewInflater fetch its kernel from cache.
// Panics on nil. Ignored by Inflate and InflateInto.
func WithKernelCache(cache *kernel.Cache) Option {
	if cache == nil {
		panic("inflation: WithKernelCache(nil)")
	}
	return func(c *config) {
		c.cache = cache
	}
}
