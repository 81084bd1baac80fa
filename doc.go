// Package costmap inflates occupancy grids into graded cost grids for
// robot path planning.
//
// A lethal obstacle cell radiates an exponentially decaying cost to every
// cell within the inflation radius, so planners keep the robot footprint
// clear of obstacles instead of merely avoiding the obstacle cells.
//
// What:
//
//	grid/       - row-major Grid[T] (Occupancy, Cost), flat/2D conversion, connected regions
//	kernel/     - Params, Build, Cost, Kernel lookup table, concurrency-safe Cache
//	inflation/  - Inflate/InflateInto (gather or scatter), row-band workers, Inflater
//	mapgen/     - seeded clustered and sprinkled obstacle fixtures
//	render/     - text printers and parser, gonum/plot heatmap, Summary statistics
//	cmd/inflate - command-line driver over files or generated maps
//
// Quick start:
//
//	occ, _ := mapgen.Clustered(100, 100, 30, 4, mapgen.WithSeed(7))
//	inf, _ := inflation.NewInflater(kernel.DefaultParams())
//	cost, _ := inf.Inflate(occ)
//	_ = render.Cost(os.Stdout, cost, "Inflated Map")
//
// Cost domain:
//
//	0        free
//	(0,253]  inflated, decaying with distance from the nearest obstacle
//	254      lethal (obstacle or within the inscribed radius)
package costmap
