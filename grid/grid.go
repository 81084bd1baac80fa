// SPDX-License-Identifier: MIT

// Row-major cell storage & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula y*W + x.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New: O(W*H) zero-init; At/Set: O(1); Clone/Rows/Flat: O(W*H).

package grid

import (
	"fmt"
	"strings"
)

// Cost domain sentinels.
const (
	// Free marks an unoccupied cell.
	Free = 0

	// Lethal marks a cell occupied by an obstacle; no path may pass through it.
	Lethal = 254
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// Cell constrains the value types a Grid may hold.
type Cell interface {
	~int | ~float64
}

// Grid is a fixed-size Width×Height array of cells.
//   - w,h hold dimensions (both > 0).
//   - data is a flat buffer of length w*h in row-major order (offset = y*w + x).
//
// A Grid is never resized after construction.
type Grid[T Cell] struct {
	w, h int
	data []T
}

// Occupancy is the inflation input: integer cells in [0,254].
type Occupancy = Grid[int]

// Cost is the inflation output: float cells in [0,254].
type Cost = Grid[float64]

var _ fmt.Stringer = (*Grid[int])(nil)

// New creates a width×height grid with every cell set to zero.
// Returns ErrInvalidDimensions if width or height is not positive.
// Complexity: O(W*H) time and memory.
func New[T Cell](width, height int) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid.New(%d,%d): %w", width, height, ErrInvalidDimensions)
	}

	return &Grid[T]{w: width, h: height, data: make([]T, width*height)}, nil
}

// FromRows builds a grid from rows indexed as rows[y][x].
// It deep-copies the input so later caller mutation does not leak in.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W*H).
func FromRows[T Cell](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	data := make([]T, 0, w*h)
	for y := 0; y < h; y++ {
		data = append(data, rows[y]...)
	}

	return &Grid[T]{w: w, h: h, data: data}, nil
}

// FromFlat reshapes a row-major buffer of length width*height into a grid.
// The buffer is copied; buf[y*width+x] becomes cell (x,y).
// Returns ErrInvalidDimensions for non-positive dimensions and
// ErrLengthMismatch when len(buf) != width*height.
// Complexity: O(W*H).
func FromFlat[T Cell](buf []T, width, height int) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid.FromFlat(%d,%d): %w", width, height, ErrInvalidDimensions)
	}
	if len(buf) != width*height {
		return nil, fmt.Errorf("grid.FromFlat: len %d, want %d: %w", len(buf), width*height, ErrLengthMismatch)
	}
	data := make([]T, len(buf))
	copy(data, buf)

	return &Grid[T]{w: width, h: height, data: data}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.h }

// Len returns Width*Height.
func (g *Grid[T]) Len() int { return len(g.data) }

// InBounds reports whether (x,y) lies within [0,W)×[0,H).
// Complexity: O(1).
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Index maps (x,y) to its row-major offset y*W + x without a bounds check.
func (g *Grid[T]) Index(x, y int) int {
	return y*g.w + x
}

// Coordinate converts a row-major offset back to (x,y).
func (g *Grid[T]) Coordinate(idx int) (x, y int) {
	return idx % g.w, idx / g.w
}

// At returns the value at (x,y) or ErrOutOfRange.
// Complexity: O(1).
func (g *Grid[T]) At(x, y int) (T, error) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, gridErrorf(ctxAt, x, y, ErrOutOfRange)
	}

	return g.data[y*g.w+x], nil
}

// Set assigns v at (x,y) or returns ErrOutOfRange.
// Complexity: O(1).
func (g *Grid[T]) Set(x, y int, v T) error {
	if !g.InBounds(x, y) {
		return gridErrorf(ctxSet, x, y, ErrOutOfRange)
	}
	g.data[y*g.w+x] = v

	return nil
}

// Fill assigns v to every cell.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Raw exposes the backing row-major buffer for hot loops.
// The slice aliases the grid: writes through it mutate the grid.
func (g *Grid[T]) Raw() []T {
	return g.data
}

// Flat returns a copy of the row-major buffer.
// Complexity: O(W*H).
func (g *Grid[T]) Flat() []T {
	out := make([]T, len(g.data))
	copy(out, g.data)

	return out
}

// Rows returns a deep copy indexed as rows[y][x].
// Complexity: O(W*H).
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.h)
	for y := 0; y < g.h; y++ {
		rows[y] = make([]T, g.w)
		copy(rows[y], g.data[y*g.w:(y+1)*g.w])
	}

	return rows
}

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{w: g.w, h: g.h, data: g.Flat()}
}

// Equal reports whether o has the same shape and identical cells.
func (g *Grid[T]) Equal(o *Grid[T]) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// Count returns how many cells satisfy pred.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range g.data {
		if pred(v) {
			n++
		}
	}

	return n
}

// String renders rows y=0..H-1 as "[a, b, c]" lines for debugging.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for y := 0; y < g.h; y++ {
		sb.WriteString("[")
		for x := 0; x < g.w; x++ {
			if x > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", g.data[y*g.w+x])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// SameShape reports whether a and b have identical dimensions.
// Either argument being nil yields false.
func SameShape[A, B Cell](a *Grid[A], b *Grid[B]) bool {
	if a == nil || b == nil {
		return false
	}

	return a.w == b.w && a.h == b.h
}

// CheckShape returns ErrInvalidDimensions wrapped with both shapes when a and b differ.
func CheckShape[A, B Cell](a *Grid[A], b *Grid[B]) error {
	if SameShape(a, b) {
		return nil
	}

	return fmt.Errorf("grid: shape %s vs %s: %w", shapeOf(a), shapeOf(b), ErrInvalidDimensions)
}

func shapeOf[T Cell](g *Grid[T]) string {
	if g == nil {
		return "nil"
	}

	return fmt.Sprintf("%dx%d", g.w, g.h)
}
