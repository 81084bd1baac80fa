// SPDX-License-Identifier: MIT

package inflation

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/costmap/grid"
	"github.com/katalvlaran/costmap/kernel"
)

// Inflate allocates a cost grid shaped like occ and fills it via InflateInto.
// The kernel radius is the inflation radius of the pass.
// Complexity: see package doc.
func Inflate(occ *grid.Occupancy, k *kernel.Kernel, opts ...Option) (*grid.Cost, error) {
	if occ == nil || k == nil {
		return nil, fmt.Errorf("inflation.Inflate: %w", ErrNilInput)
	}
	dst, err := grid.New[float64](occ.Width(), occ.Height())
	if err != nil {
		return nil, err
	}
	if err = InflateInto(dst, occ, k, opts...); err != nil {
		return nil, err
	}

	return dst, nil
}

// InflateInto writes the inflated costs of occ into dst.
// Stage 1 (Validate): non-nil arguments, identical shapes.
// Stage 2 (Execute): run the configured strategy.
// Every cell of dst is overwritten, so dst can be reused across passes.
// On error dst is untouched.
func InflateInto(dst *grid.Cost, occ *grid.Occupancy, k *kernel.Kernel, opts ...Option) error {
	if dst == nil || occ == nil || k == nil {
		return fmt.Errorf("inflation.InflateInto: %w", ErrNilInput)
	}
	if err := grid.CheckShape(occ, dst); err != nil {
		return fmt.Errorf("inflation.InflateInto: %w", err)
	}
	cfg := newConfig(opts)
	p := newPass(dst, occ, k, cfg.lethal)

	if cfg.strategy == Scatter {
		p.scatter()
		return nil
	}

	return p.gatherParallel(cfg.workers)
}

// pass holds the flat views one inflation run reads and writes.
type pass struct {
	occ    *grid.Occupancy
	src    []int
	dst    []float64
	kv     []float64 // kernel, row dy+r, column dx+r
	r      int
	size   int
	w, h   int
	lethal int
}

func newPass(dst *grid.Cost, occ *grid.Occupancy, k *kernel.Kernel, lethal int) *pass {
	return &pass{
		occ:    occ,
		src:    occ.Raw(),
		dst:    dst.Raw(),
		kv:     k.Values(),
		r:      k.Radius(),
		size:   k.Size(),
		w:      occ.Width(),
		h:      occ.Height(),
		lethal: lethal,
	}
}

// gatherParallel splits [0,h) into at most workers contiguous bands.
// Bands cannot fail; the group only joins them, so Wait always returns nil.
func (p *pass) gatherParallel(workers int) error {
	if workers > p.h {
		workers = p.h
	}
	if workers <= 1 {
		p.gatherRows(0, p.h)
		return nil
	}

	var g errgroup.Group
	band := (p.h + workers - 1) / workers
	for y0 := 0; y0 < p.h; y0 += band {
		y0 := y0
		y1 := min(y0+band, p.h)
		g.Go(func() error {
			p.gatherRows(y0, y1)
			return nil
		})
	}

	return g.Wait()
}

// gatherRows computes output rows [y0,y1). Writes touch only those rows.
func (p *pass) gatherRows(y0, y1 int) {
	r := p.r
	for y := y0; y < y1; y++ {
		for x := 0; x < p.w; x++ {
			best := float64(p.src[y*p.w+x])
			for dy := -r; dy <= r; dy++ {
				krow := (dy + r) * p.size
				for dx := -r; dx <= r; dx++ {
					nx, ny := x+dx, y+dy
					if !p.occ.InBounds(nx, ny) {
						continue
					}
					if p.src[ny*p.w+nx] != p.lethal {
						continue
					}
					if v := p.kv[krow+dx+r]; v > best {
						best = v
					}
				}
			}
			p.dst[y*p.w+x] = best
		}
	}
}

// scatter seeds dst with the input and radiates the kernel from each obstacle.
// A cell (ox+ex, oy+ey) receives the entry gather would read for it, offset (-ex,-ey).
func (p *pass) scatter() {
	for i, v := range p.src {
		p.dst[i] = float64(v)
	}
	r := p.r
	for oy := 0; oy < p.h; oy++ {
		for ox := 0; ox < p.w; ox++ {
			if p.src[oy*p.w+ox] != p.lethal {
				continue
			}
			for ey := -r; ey <= r; ey++ {
				krow := (-ey + r) * p.size
				for ex := -r; ex <= r; ex++ {
					nx, ny := ox+ex, oy+ey
					if !p.occ.InBounds(nx, ny) {
						continue
					}
					i := ny*p.w + nx
					if v := p.kv[krow-ex+r]; v > p.dst[i] {
						p.dst[i] = v
					}
				}
			}
		}
	}
}
