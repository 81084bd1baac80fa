// Package render formats occupancy grids, kernels and cost grids for humans.
//
// Display convention:
//
//   - Rows are printed from y=H-1 down to y=0, so the origin sits bottom-left.
//   - A cost ≥ 254 prints as " X "; anything else as its value rounded to
//     the nearest integer ("%3.0f ").
//   - An occupancy cell equal to 254 prints as " X "; anything else as "%2d ".
//
// ParseOccupancy reads the same layout back. Heatmap draws a cost grid with
// gonum/plot; Summarize reduces it to a handful of statistics.
package render
