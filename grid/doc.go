// Package grid provides the two-dimensional cell buffer shared by the
// kernel builder and the inflation processor.
//
// What:
//
//   - Grid[T] owns a flat row-major buffer of Width×Height cells (offset = y*Width + x).
//   - At/Set are bounds-checked and return ErrOutOfRange instead of panicking.
//   - FromRows and FromFlat convert caller data into a Grid; Rows and Flat copy it back out.
//   - Occupancy (int cells) is the inflation input, Cost (float64 cells) the output.
//
// Why:
//
//   - Grid sizes are runtime values; nothing depends on compiled-in dimensions.
//   - A single InBounds check centralizes the edge handling used by inflation.
//
// Complexity:
//
//   - New, FromRows, FromFlat, Rows, Flat, Clone: O(W×H) time and memory.
//   - At, Set, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height not positive, or shapes differ.
//   - ErrEmptyGrid: input rows have no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrLengthMismatch: flat buffer length != width*height.
//   - ErrOutOfRange: coordinate outside [0,W)×[0,H).
package grid
