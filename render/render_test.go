package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/costmap/grid"
	"github.com/katalvlaran/costmap/inflation"
	"github.com/katalvlaran/costmap/kernel"
	"github.com/katalvlaran/costmap/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallCost(t *testing.T) *grid.Cost {
	t.Helper()
	// y=0 row: 0, 33.39, 254.7 ; y=1 row: 1.5, 2.5, 300
	g, err := grid.FromFlat([]float64{0, 33.39, 254.7, 1.4, 2.6, 300}, 3, 2)
	require.NoError(t, err)
	return g
}

// TestCost_Layout checks row order, rounding and the obstacle marker.
func TestCost_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Cost(&buf, smallCost(t), "Inflated Map"))
	want := "=== Inflated Map ===\n" +
		"  1   3  X \n" +
		"  0  33  X \n" +
		"\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Cost mismatch (-want +got):\n%s", diff)
	}
}

// TestOccupancy_Layout checks the integer renderer without a title.
func TestOccupancy_Layout(t *testing.T) {
	g, err := grid.FromRows([][]int{{0, grid.Lethal}, {7, 0}})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, render.Occupancy(&buf, g, ""))
	assert.Equal(t, " 7  0 \n 0  X \n\n", buf.String())
}

// TestKernel_Header checks the kernel block.
func TestKernel_Header(t *testing.T) {
	k, err := kernel.Build(kernel.Params{InflationRadius: 0, Resolution: 1})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, render.Kernel(&buf, k))
	assert.Equal(t, "=== Inflation Kernel ===\n 254.0 \n\n", buf.String())
}

// TestParseOccupancy_RoundTrip reads back what Occupancy writes.
func TestParseOccupancy_RoundTrip(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{0, 0, grid.Lethal, 0},
		{5, 0, 0, 0},
		{0, grid.Lethal, 0, 12},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Occupancy(&buf, g, "Input Costmap"))
	back, err := render.ParseOccupancy(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(g.Rows(), back.Rows()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// TestParseOccupancy_Errors covers bad tokens, ragged rows and empty input.
func TestParseOccupancy_Errors(t *testing.T) {
	_, err := render.ParseOccupancy(strings.NewReader("0 1\n0 q\n"))
	assert.ErrorIs(t, err, render.ErrParse)

	_, err = render.ParseOccupancy(strings.NewReader("0 1\n0\n"))
	assert.ErrorIs(t, err, grid.ErrNonRectangular)

	_, err = render.ParseOccupancy(strings.NewReader("# nothing\n\n"))
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

// TestParseOccupancy_Orientation checks the top line is the highest y.
func TestParseOccupancy_Orientation(t *testing.T) {
	g, err := render.ParseOccupancy(strings.NewReader("# map\n1 2\n3 X\n"))
	require.NoError(t, err)
	v, _ := g.At(0, 1)
	assert.Equal(t, 1, v)
	v, _ = g.At(1, 0)
	assert.Equal(t, grid.Lethal, v)
}

// TestSummarize counts cells per band.
func TestSummarize(t *testing.T) {
	s := render.Summarize(smallCost(t))
	assert.Equal(t, 6, s.Cells)
	assert.Equal(t, 2, s.Lethal)
	assert.Equal(t, 3, s.Inflated)
	assert.Equal(t, 1, s.Free)
	assert.Equal(t, 1, s.Regions)
	assert.Equal(t, 0.0, s.Min)
	assert.Equal(t, 300.0, s.Max)
	assert.InDelta(t, (33.39+254.7+1.4+2.6+300)/6, s.Mean, 1e-9)
	assert.Contains(t, s.String(), "lethal=2")
}

// TestHeatmap writes PNG and SVG renderings of an inflated map.
func TestHeatmap(t *testing.T) {
	occ, err := grid.New[int](12, 8)
	require.NoError(t, err)
	require.NoError(t, occ.Set(4, 3, grid.Lethal))
	k, err := kernel.Build(kernel.Params{CostScalingFactor: 3, InflationRadius: 3, InscribedRadius: 0.325, Resolution: 1})
	require.NoError(t, err)
	cost, err := inflation.Inflate(occ, k)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"cost.png", "cost.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, render.Heatmap(path, cost, "inflated"))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

// TestHeatmap_BadPath surfaces the save error.
func TestHeatmap_BadPath(t *testing.T) {
	err := render.Heatmap(filepath.Join(t.TempDir(), "cost.unknownext"), smallCost(t), "x")
	assert.Error(t, err)
}

// TestNilGrid reports ErrNilGrid instead of panicking.
func TestNilGrid(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, render.Cost(&buf, nil, "x"), render.ErrNilGrid)
	assert.ErrorIs(t, render.Occupancy(&buf, nil, "x"), render.ErrNilGrid)
	assert.ErrorIs(t, render.Kernel(&buf, nil), render.ErrNilGrid)
	assert.ErrorIs(t, render.Heatmap(filepath.Join(t.TempDir(), "nil.png"), nil, "x"), render.ErrNilGrid)
	assert.Empty(t, buf.String())
	assert.Equal(t, render.Summary{}, render.Summarize(nil))
}
