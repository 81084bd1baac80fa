// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"math"

	"github.com/katalvlaran/costmap/grid"
)

// MaxDecayCost is the peak of the exponential decay curve, one below the
// lethal sentinel so decayed cells never read as obstacles.
const MaxDecayCost = grid.Lethal - 1

// Params fully determines a kernel; no other state affects it.
//
// Fields:
//   - CostScalingFactor — exponential decay rate (≥ 0, finite).
//   - InflationRadius   — maximum influence in cells (≥ 0).
//   - InscribedRadius   — robot radius in meters (≥ 0, finite).
//   - Resolution        — meters per cell (> 0, finite).
//
// Params is comparable and is used directly as the Cache key.
type Params struct {
	CostScalingFactor float64
	InflationRadius   int
	InscribedRadius   float64
	Resolution        float64
}

// DefaultParams mirrors a typical ground-robot setup: 5 cm cells, a 0.325 m
// inscribed radius, a 10-cell (50 cm) inflation radius and a scaling factor of 3.
func DefaultParams() Params {
	return Params{
		CostScalingFactor: 3.0,
		InflationRadius:   10,
		InscribedRadius:   0.325,
		Resolution:        0.05,
	}
}

// Validate reports the first field outside its domain as ErrInvalidParameter.
// Values are never corrected.
// Complexity: O(1).
func (p Params) Validate() error {
	if p.InflationRadius < 0 {
		return paramErrorf("InflationRadius", float64(p.InflationRadius), "must be >= 0")
	}
	if !finite(p.Resolution) || p.Resolution <= 0 {
		return paramErrorf("Resolution", p.Resolution, "must be finite and > 0")
	}
	if !finite(p.InscribedRadius) || p.InscribedRadius < 0 {
		return paramErrorf("InscribedRadius", p.InscribedRadius, "must be finite and >= 0")
	}
	if !finite(p.CostScalingFactor) || p.CostScalingFactor < 0 {
		return paramErrorf("CostScalingFactor", p.CostScalingFactor, "must be finite and >= 0")
	}

	return nil
}

// Size returns the kernel side length 2r+1.
func (p Params) Size() int {
	return 2*p.InflationRadius + 1
}

// OuterRadius returns the influence bound in meters (InflationRadius*Resolution).
func (p Params) OuterRadius() float64 {
	return float64(p.InflationRadius) * p.Resolution
}

// String formats the tuple for logs.
func (p Params) String() string {
	return fmt.Sprintf("radius=%d cells, inscribed=%gm, resolution=%gm/cell, scaling=%g",
		p.InflationRadius, p.InscribedRadius, p.Resolution, p.CostScalingFactor)
}

func paramErrorf(field string, v float64, rule string) error {
	return fmt.Errorf("kernel: %s=%g %s: %w", field, v, rule, ErrInvalidParameter)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
