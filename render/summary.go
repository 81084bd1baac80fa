package render

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/costmap/grid"
)

// Summary condenses a cost grid into a few numbers for logs.
type Summary struct {
	Cells    int
	Min      float64
	Max      float64
	Mean     float64
	Lethal   int // cells ≥ 254
	Inflated int // cells in (0,254)
	Free     int // cells == 0
	Regions  int // 8-connected lethal regions
}

// Summarize computes a Summary over every cell of g; nil yields the zero Summary.
// Complexity: O(W·H).
func Summarize(g *grid.Cost) Summary {
	if g == nil {
		return Summary{}
	}
	vals := g.Raw()
	s := Summary{
		Cells: len(vals),
		Min:   floats.Min(vals),
		Max:   floats.Max(vals),
		Mean:  floats.Sum(vals) / float64(len(vals)),
	}
	for _, v := range vals {
		switch {
		case v >= grid.Lethal:
			s.Lethal++
		case v > 0:
			s.Inflated++
		case v == 0:
			s.Free++
		}
	}
	s.Regions = len(grid.Components(g, func(v float64) bool { return v >= grid.Lethal }, grid.Conn8))

	return s
}

// String formats the summary on one line.
func (s Summary) String() string {
	return fmt.Sprintf("cells=%d lethal=%d (%d regions) inflated=%d free=%d min=%.1f max=%.1f mean=%.2f",
		s.Cells, s.Lethal, s.Regions, s.Inflated, s.Free, s.Min, s.Max, s.Mean)
}
