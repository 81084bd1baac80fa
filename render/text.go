package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/costmap/grid"
	"github.com/katalvlaran/costmap/kernel"
)

// ErrNilGrid indicates a nil grid or kernel passed to a renderer.
var ErrNilGrid = errors.New("render: nil grid")

const (
	obstacleMark = " X "
	costFormat   = "%3.0f "
	occFormat    = "%2d "
)

// Cost writes g under an optional "=== title ===" header.
func Cost(w io.Writer, g *grid.Cost, title string) error {
	if g == nil {
		return fmt.Errorf("render.Cost: %w", ErrNilGrid)
	}
	bw := bufio.NewWriter(w)
	header(bw, title)
	for y := g.Height() - 1; y >= 0; y-- {
		for x := 0; x < g.Width(); x++ {
			v, _ := g.At(x, y)
			if v >= grid.Lethal {
				bw.WriteString(obstacleMark)
			} else {
				fmt.Fprintf(bw, costFormat, v)
			}
		}
		bw.WriteString("\n")
	}
	bw.WriteString("\n")

	return bw.Flush()
}

// Occupancy writes g under an optional "=== title ===" header.
func Occupancy(w io.Writer, g *grid.Occupancy, title string) error {
	if g == nil {
		return fmt.Errorf("render.Occupancy: %w", ErrNilGrid)
	}
	bw := bufio.NewWriter(w)
	header(bw, title)
	for y := g.Height() - 1; y >= 0; y-- {
		for x := 0; x < g.Width(); x++ {
			v, _ := g.At(x, y)
			if v == grid.Lethal {
				bw.WriteString(obstacleMark)
			} else {
				fmt.Fprintf(bw, occFormat, v)
			}
		}
		bw.WriteString("\n")
	}
	bw.WriteString("\n")

	return bw.Flush()
}

// Kernel writes the kernel table, dy=-r first, under a fixed header.
func Kernel(w io.Writer, k *kernel.Kernel) error {
	if k == nil {
		return fmt.Errorf("render.Kernel: %w", ErrNilGrid)
	}
	_, err := fmt.Fprintf(w, "=== Inflation Kernel ===\n%s\n", k)
	return err
}

func header(w *bufio.Writer, title string) {
	if title != "" {
		fmt.Fprintf(w, "=== %s ===\n", title)
	}
}
