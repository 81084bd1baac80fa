package inflation

import (
	"github.com/katalvlaran/costmap/grid"
	"github.com/katalvlaran/costmap/kernel"
)

// Inflater binds one parameter tuple to its kernel so repeated passes over
// fresh occupancy grids skip the kernel build.
// It holds no mutable state and is safe for concurrent use.
type Inflater struct {
	k    *kernel.Kernel
	opts []Option
}

// NewInflater builds (or fetches from WithKernelCache) the kernel for p.
// Returns kernel.ErrInvalidParameter before any pass can run.
func NewInflater(p kernel.Params, opts ...Option) (*Inflater, error) {
	cfg := newConfig(opts)
	var (
		k   *kernel.Kernel
		err error
	)
	if cfg.cache != nil {
		k, err = cfg.cache.Get(p)
	} else {
		k, err = kernel.Build(p)
	}
	if err != nil {
		return nil, err
	}

	return &Inflater{k: k, opts: opts}, nil
}

// Kernel returns the bound kernel.
func (in *Inflater) Kernel() *kernel.Kernel { return in.k }

// Params returns the bound parameter tuple.
func (in *Inflater) Params() kernel.Params { return in.k.Params() }

// Inflate runs one pass over occ with the options given to NewInflater.
func (in *Inflater) Inflate(occ *grid.Occupancy) (*grid.Cost, error) {
	return Inflate(occ, in.k, in.opts...)
}

// InflateInto runs one pass over occ into caller-owned dst.
func (in *Inflater) InflateInto(dst *grid.Cost, occ *grid.Occupancy) error {
	return InflateInto(dst, occ, in.k, in.opts...)
}
