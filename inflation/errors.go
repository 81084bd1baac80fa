package inflation

import (
	"errors"

	"github.com/katalvlaran/costmap/grid"
)

var (
	// ErrNilInput indicates a nil grid, kernel or destination.
	ErrNilInput = errors.New("inflation: nil input")

	// ErrInvalidDimensions indicates a destination whose shape differs from the input.
	// It is the grid sentinel so errors.Is matches either name.
	ErrInvalidDimensions = grid.ErrInvalidDimensions
)
