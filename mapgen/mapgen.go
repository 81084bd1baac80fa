package mapgen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/costmap/grid"
)

// ErrInvalidArgument indicates a generator argument outside its domain.
var ErrInvalidArgument = errors.New("mapgen: invalid argument")

// Clustered returns a width×height grid, free everywhere except for
// clusters discs of obstacle cells.
// Each disc has a centre drawn uniformly from the grid and a radius drawn
// uniformly from [1, maxRadius]; cell (cx+dx, cy+dy) is painted when
// dx²+dy² ≤ radius² and it lies inside the grid.
// Complexity: O(W·H + clusters·maxRadius²).
func Clustered(width, height, clusters, maxRadius int, opts ...Option) (*grid.Occupancy, error) {
	if clusters < 0 {
		return nil, fmt.Errorf("mapgen.Clustered: clusters=%d: %w", clusters, ErrInvalidArgument)
	}
	if maxRadius <= 0 {
		return nil, fmt.Errorf("mapgen.Clustered: maxRadius=%d: %w", maxRadius, ErrInvalidArgument)
	}
	g, err := grid.New[int](width, height)
	if err != nil {
		return nil, err
	}
	cfg := newGenConfig(opts)
	cells := g.Raw()

	for c := 0; c < clusters; c++ {
		cx := cfg.rng.Intn(width)
		cy := cfg.rng.Intn(height)
		radius := 1 + cfg.rng.Intn(maxRadius)

		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if dx*dx+dy*dy > radius*radius {
					continue
				}
				nx, ny := cx+dx, cy+dy
				if g.InBounds(nx, ny) {
					cells[g.Index(nx, ny)] = cfg.value
				}
			}
		}
	}

	return g, nil
}

// Sprinkle returns a width×height grid where each cell independently becomes
// an obstacle with probability density.
// Complexity: O(W·H).
func Sprinkle(width, height int, density float64, opts ...Option) (*grid.Occupancy, error) {
	if !(density >= 0 && density <= 1) {
		return nil, fmt.Errorf("mapgen.Sprinkle: density=%g: %w", density, ErrInvalidArgument)
	}
	g, err := grid.New[int](width, height)
	if err != nil {
		return nil, err
	}
	cfg := newGenConfig(opts)
	cells := g.Raw()
	for i := range cells {
		if cfg.rng.Float64() < density {
			cells[i] = cfg.value
		}
	}

	return g, nil
}
