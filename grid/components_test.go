package grid_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/costmap/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lethal(v int) bool { return v == grid.Lethal }

// TestComponents_Conn4 finds two obstacles of sizes 4 and 2.
//
// Grid (X = lethal), top row is y=0 here:
//
//	. X X .
//	X X . .
//	. . X X
func TestComponents_Conn4(t *testing.T) {
	L := grid.Lethal
	g, err := grid.FromRows([][]int{
		{0, L, L, 0},
		{L, L, 0, 0},
		{0, 0, L, L},
	})
	require.NoError(t, err)

	comps := grid.Components(g, lethal, grid.Conn4)
	require.Len(t, comps, 2)
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 4}, sizes)

	x, y := g.Coordinate(comps[0][0])
	assert.Equal(t, [2]int{1, 0}, [2]int{x, y}, "first component starts at its first row-major cell")
}

// TestComponents_Conn8 joins diagonal neighbours into one obstacle.
//
//	X . . . X
//	. X . X .
//	. . X . .
//	. X . X .
//	X . . . X
func TestComponents_Conn8(t *testing.T) {
	L := grid.Lethal
	g, err := grid.FromRows([][]int{
		{L, 0, 0, 0, L},
		{0, L, 0, L, 0},
		{0, 0, L, 0, 0},
		{0, L, 0, L, 0},
		{L, 0, 0, 0, L},
	})
	require.NoError(t, err)

	assert.Len(t, grid.Components(g, lethal, grid.Conn8), 1)
	assert.Len(t, grid.Components(g, lethal, grid.Conn4), 9)
}

// TestComponents_None returns nothing on a free grid.
func TestComponents_None(t *testing.T) {
	g, err := grid.New[float64](3, 3)
	require.NoError(t, err)
	assert.Empty(t, grid.Components(g, func(v float64) bool { return v >= grid.Lethal }, grid.Conn8))
}

// TestComponents_Nil returns nothing for a nil grid or predicate.
func TestComponents_Nil(t *testing.T) {
	assert.Nil(t, grid.Components[int](nil, lethal, grid.Conn4))
	g, err := grid.New[int](2, 2)
	require.NoError(t, err)
	assert.Nil(t, grid.Components(g, nil, grid.Conn8))
}
