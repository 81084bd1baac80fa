package grid

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Components finds contiguous regions of cells satisfying member, e.g. the
// separate obstacles of an occupancy grid.
// Each component is a slice of row-major indices in BFS order; components
// appear in row-major order of their first cell. Use Coordinate to map an
// index back to (x,y).
//
// A nil grid or nil member yields no components.
//
// Time:   O(W·H·d), d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func Components[T Cell](g *Grid[T], member func(T) bool, conn Connectivity) [][]int {
	if g == nil || member == nil {
		return nil
	}
	offsets := offsets4
	if conn == Conn8 {
		offsets = offsets8
	}
	seen := make([]bool, len(g.data))
	var comps [][]int

	for i0, v := range g.data {
		if seen[i0] || !member(v) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := g.Coordinate(queue[qi])
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if !g.InBounds(vx, vy) {
					continue
				}
				vi := vy*g.w + vx
				if !seen[vi] && member(g.data[vi]) {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
