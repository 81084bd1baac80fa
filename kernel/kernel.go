// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/costmap/grid"
)

// Kernel is a (2r+1)×(2r+1) table of costs indexed by offset (dx,dy) ∈ [-r,r]².
// Entry (dx,dy) is stored at row dy+r, column dx+r of a row-major buffer.
// A Kernel is immutable after Build and safe for concurrent readers.
type Kernel struct {
	params Params
	r      int
	size   int
	data   []float64
}

// Cost evaluates the inflation rule at a metric distance d for p.
//
//   - d ≤ InscribedRadius          → grid.Lethal
//   - d > InflationRadius*Resolution → 0
//   - otherwise                    → MaxDecayCost·exp(-CostScalingFactor·(d-InscribedRadius)), clamped ≥ 0
//
// The inscribed test runs first; the two orderings agree whenever the
// inscribed radius lies within the outer bound, and this one keeps the
// centre lethal even for InflationRadius=0.
// Cost does not validate p; Build does.
func Cost(d float64, p Params) float64 {
	if d <= p.InscribedRadius {
		return grid.Lethal
	}
	if d > p.OuterRadius() {
		return 0
	}
	c := MaxDecayCost * math.Exp(-p.CostScalingFactor*(d-p.InscribedRadius))
	if c < 0 {
		c = 0
	}

	return c
}

// Build precomputes the kernel for p.
// Stage 1 (Validate): p.Validate, fail fast with ErrInvalidParameter.
// Stage 2 (Execute): evaluate Cost at Resolution*hypot(dx,dy) for every offset.
// Complexity: O((2r+1)²) time and memory.
func Build(p Params) (*Kernel, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	r := p.InflationRadius
	size := p.Size()
	data := make([]float64, size*size)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d := p.Resolution * math.Hypot(float64(dx), float64(dy))
			data[(dy+r)*size+(dx+r)] = Cost(d, p)
		}
	}

	return &Kernel{params: p, r: r, size: size, data: data}, nil
}

// Params returns the tuple the kernel was built from.
func (k *Kernel) Params() Params { return k.params }

// Radius returns r, the inflation radius in cells.
func (k *Kernel) Radius() int { return k.r }

// Size returns the side length 2r+1.
func (k *Kernel) Size() int { return k.size }

// At returns the cost contributed at offset (dx,dy) from an obstacle.
// Returns ErrOutOfRange when |dx| > r or |dy| > r.
// Complexity: O(1).
func (k *Kernel) At(dx, dy int) (float64, error) {
	if dx < -k.r || dx > k.r || dy < -k.r || dy > k.r {
		return 0, fmt.Errorf("Kernel.At(%d,%d): %w", dx, dy, ErrOutOfRange)
	}

	return k.data[(dy+k.r)*k.size+(dx+k.r)], nil
}

// Values returns a copy of the row-major table, row dy+r, column dx+r.
// Hot loops take one copy per pass instead of calling At per offset.
func (k *Kernel) Values() []float64 {
	out := make([]float64, len(k.data))
	copy(out, k.data)

	return out
}

// Rows returns a copy indexed as rows[dy+r][dx+r].
func (k *Kernel) Rows() [][]float64 {
	rows := make([][]float64, k.size)
	for i := 0; i < k.size; i++ {
		rows[i] = make([]float64, k.size)
		copy(rows[i], k.data[i*k.size:(i+1)*k.size])
	}

	return rows
}

// String renders the table one row per line with "%6.1f " cells,
// dy=-r first.
func (k *Kernel) String() string {
	var sb strings.Builder
	for i := 0; i < k.size; i++ {
		for j := 0; j < k.size; j++ {
			fmt.Fprintf(&sb, "%6.1f ", k.data[i*k.size+j])
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
