// Package kernel precomputes the inflation lookup table: a square of
// cost values indexed by the (dx,dy) offset from an obstacle cell.
//
// What:
//
//   - Params holds the four values that fully determine a kernel.
//   - Build evaluates Cost at resolution*hypot(dx,dy) for every offset in [-r,r]².
//   - Kernel is immutable once built; At(dx,dy) reads one entry.
//   - Cache memoizes one Kernel per distinct Params tuple.
//
// Cost rule (d = metric distance):
//
//	d ≤ inscribed          → 254 (inside the robot footprint)
//	d > radius*resolution  → 0   (outside influence)
//	otherwise              → 253·exp(-scaling·(d - inscribed)), clamped ≥ 0
//
// Complexity:
//
//   - Build: O((2r+1)²) time and memory.
//   - At: O(1). Cache.Get: O(1) amortized after the first Build.
//
// Errors:
//
//   - ErrInvalidParameter: negative radius, non-positive resolution,
//     negative or non-finite inscribed radius or scaling factor.
//   - ErrOutOfRange: offset outside [-r,r]².
package kernel
