package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/costmap/grid"
)

// HeatmapSize is the edge length of the saved image.
const HeatmapSize = 6 * vg.Inch

// costXYZ adapts a cost grid to plotter.GridXYZ; column c is x, row r is y.
type costXYZ struct {
	g *grid.Cost
}

var _ plotter.GridXYZ = costXYZ{}

func (c costXYZ) Dims() (cols, rows int) { return c.g.Width(), c.g.Height() }
func (c costXYZ) X(col int) float64       { return float64(col) }
func (c costXYZ) Y(row int) float64       { return float64(row) }
func (c costXYZ) Z(col, row int) float64 {
	v, _ := c.g.At(col, row)
	return v
}

// Heatmap draws g on a fixed [0,254] colour scale and saves it to path.
// The image format follows the extension (.png, .svg, .pdf, ...).
// Cells above 254 use the lethal colour.
func Heatmap(path string, g *grid.Cost, title string) error {
	if g == nil {
		return fmt.Errorf("render.Heatmap: %w", ErrNilGrid)
	}
	pal := palette.Heat(64, 1)
	h := plotter.NewHeatMap(costXYZ{g}, pal)
	h.Min = 0
	h.Max = grid.Lethal
	colors := pal.Colors()
	h.Overflow = colors[len(colors)-1]
	h.Underflow = color.Black

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (cells)"
	p.Y.Label.Text = "y (cells)"
	p.Add(h)

	if err := p.Save(HeatmapSize, HeatmapSize, path); err != nil {
		return fmt.Errorf("render: save heatmap %q: %w", path, err)
	}

	return nil
}
