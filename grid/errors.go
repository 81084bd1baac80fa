// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations. Callers match them with errors.Is;
// methods wrap them with the failing call and coordinates.
var (
	// ErrInvalidDimensions indicates non-positive dimensions or two grids of different shape.
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")

	// ErrEmptyGrid indicates input rows have no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrLengthMismatch indicates a flat buffer whose length is not width*height.
	ErrLengthMismatch = errors.New("grid: buffer length does not match dimensions")

	// ErrOutOfRange indicates a coordinate outside the grid.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
)

// gridErrorf wraps err with the method name and the offending coordinate.
func gridErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, x, y, err)
}
