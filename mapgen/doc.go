// Package mapgen produces synthetic occupancy grids for tests, examples and
// benchmarks.
//
// What:
//
//   - Clustered paints circular (Euclidean-disk) obstacle clusters onto a free grid.
//   - Sprinkle marks individual cells lethal with a fixed probability.
//
// Determinism is explicit: pass WithSeed or WithRand. Without either, a fixed
// default seed is used so two calls with the same arguments agree.
//
// Errors:
//
//   - ErrInvalidArgument: negative cluster count, non-positive radius or a
//     density outside [0,1]. Grid dimension errors come from package grid.
package mapgen
