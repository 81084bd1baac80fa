// SPDX-License-Identifier: MIT
//
// options.go — functional options for the mapgen package.
//
// Contract (strict):
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package mapgen

import (
	"math/rand"

	"github.com/katalvlaran/costmap/grid"
)

// defaultSeed is used when neither WithSeed nor WithRand is given.
const defaultSeed int64 = 1

// Option customizes a generator before any cell is painted.
type Option func(*genConfig)

type genConfig struct {
	rng   *rand.Rand
	value int
}

func newGenConfig(opts []Option) *genConfig {
	c := &genConfig{value: grid.Lethal}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return c
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
// *rand.Rand is not goroutine-safe; do not share it across concurrent generators.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("mapgen: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithValue sets the value painted into obstacle cells (default grid.Lethal).
// Panics if v is outside [0,254].
func WithValue(v int) Option {
	if v < grid.Free || v > grid.Lethal {
		panic("mapgen: WithValue(v outside [0,254])")
	}
	return func(c *genConfig) {
		c.value = v
	}
}
