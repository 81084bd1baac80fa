// Package inflation turns an occupancy grid into a graded cost grid by
// sliding a precomputed kernel over every cell.
//
// What:
//
//   - Inflate / InflateInto: for each cell, the maximum of its own value and
//     the kernel entry of every lethal neighbour within the kernel window.
//   - Gather (default): the sliding-window pass, one output cell at a time.
//   - Scatter: obstacle-driven pass that radiates the kernel from every lethal
//     cell. Same result; cheaper on sparse maps.
//   - Inflater: binds one parameter tuple to its kernel for repeated passes.
//
// Guarantees:
//
//   - Pure function of (grid, kernel): the input grid is never written.
//   - Combination is max, so loop order and worker split do not change a bit
//     of the output.
//   - Neighbours outside [0,W)×[0,H) are skipped; no wraparound, no clamping.
//
// Complexity:
//
//   - Gather: O(W·H·(2r+1)²) time, O(1) extra memory.
//   - Scatter: O(W·H + L·(2r+1)²) time for L lethal cells.
//
// Options:
//
//   - WithWorkers(n): split rows into n disjoint bands (Gather only).
//   - WithStrategy(Gather|Scatter).
//   - WithLethal(v): occupancy value that radiates cost (default 254).
//
// Errors:
//
//   - ErrNilInput: nil grid, kernel or destination.
//   - ErrInvalidDimensions: destination shape differs from the input.
package inflation
