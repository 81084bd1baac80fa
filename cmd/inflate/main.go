// Command inflate builds an inflation kernel, inflates one or more occupancy
// maps and reports the resulting cost grids.
//
// Maps come from -input (text in the render.Occupancy layout) or are
// generated as clustered obstacle fields. Values from -config are applied
// first; explicitly set flags override them.
//
//	inflate -width 10 -height 10 -radius 2 -resolution 1 -print
//	inflate -config run.json -maps 20 -workers 4
//	inflate -input map.txt -heatmap cost.png
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/katalvlaran/costmap/grid"
	"github.com/katalvlaran/costmap/inflation"
	"github.com/katalvlaran/costmap/internal/config"
	"github.com/katalvlaran/costmap/internal/monitoring"
	"github.com/katalvlaran/costmap/mapgen"
	"github.com/katalvlaran/costmap/render"
)

// options collects the command line; zero values mean "not set".
type options struct {
	configPath  string
	inputPath   string
	heatmapPath string
	printMaps   bool
	printKernel bool
	quiet       bool

	overrides *config.RunConfig
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command and returns its exit code.
// Failures always reach stderr; -quiet mutes progress logs only.
func execute(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if err := run(opts, stdout); err != nil {
		fmt.Fprintf(stderr, "inflate: %v\n", err)
		return 1
	}

	return 0
}

// parseFlags reads args into options; only flags the user set land in overrides.
func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("inflate", flag.ContinueOnError)
	var (
		configPath  = fs.String("config", "", "Path to a JSON run configuration")
		inputPath   = fs.String("input", "", "Occupancy map text file (rows of ints, X = lethal); generates maps when empty")
		heatmapPath = fs.String("heatmap", "", "Write the last cost grid as an image (.png, .svg, .pdf)")
		printMaps   = fs.Bool("print", false, "Print input and inflated maps")
		printKernel = fs.Bool("kernel", false, "Print the inflation kernel")
		quiet       = fs.Bool("quiet", false, "Suppress log output")

		width     = fs.Int("width", 0, "Generated map width in cells (default 100)")
		height    = fs.Int("height", 0, "Generated map height in cells (default 100)")
		clusters  = fs.Int("clusters", 0, "Obstacle clusters per generated map (default 30)")
		maxRadius = fs.Int("max-radius", 0, "Maximum obstacle cluster radius in cells (default 4)")
		seed      = fs.Int64("seed", 0, "Random seed; 0 derives one from the clock")
		maps      = fs.Int("maps", 0, "Number of maps to generate and inflate (default 1)")

		radius     = fs.Int("radius", 0, "Inflation radius in cells")
		inscribed  = fs.Float64("inscribed", 0, "Inscribed robot radius in meters")
		resolution = fs.Float64("resolution", 0, "Map resolution in meters per cell")
		scaling    = fs.Float64("scaling", 0, "Cost scaling factor")

		workers  = fs.Int("workers", 0, "Row bands inflated in parallel (gather only)")
		strategy = fs.String("strategy", "", "gather or scatter")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	o := &options{
		configPath:  *configPath,
		inputPath:   *inputPath,
		heatmapPath: *heatmapPath,
		printMaps:   *printMaps,
		printKernel: *printKernel,
		quiet:       *quiet,
		overrides:   config.EmptyRunConfig(),
	}
	ov := o.overrides
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			ov.Width = width
		case "height":
			ov.Height = height
		case "clusters":
			ov.Clusters = clusters
		case "max-radius":
			ov.MaxClusterRadius = maxRadius
		case "seed":
			ov.Seed = seed
		case "maps":
			ov.Maps = maps
		case "radius":
			ov.InflationRadius = radius
		case "inscribed":
			ov.InscribedRadius = inscribed
		case "resolution":
			ov.Resolution = resolution
		case "scaling":
			ov.CostScalingFactor = scaling
		case "workers":
			ov.Workers = workers
		case "strategy":
			ov.Strategy = strategy
		}
	})

	return o, nil
}

// run loads configuration, builds the inflater once and processes every map.
func run(o *options, out io.Writer) error {
	if o.quiet {
		monitoring.SetLogger(nil)
	}

	cfg := config.EmptyRunConfig()
	if o.configPath != "" {
		loaded, err := config.LoadRunConfig(o.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		monitoring.Logf("loaded config %s", o.configPath)
	}
	merge(cfg, o.overrides)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	params := cfg.KernelParams()
	inf, err := inflation.NewInflater(params, cfg.InflationOptions()...)
	if err != nil {
		return err
	}
	monitoring.Logf("kernel %dx%d (%s), strategy=%s workers=%d",
		inf.Kernel().Size(), inf.Kernel().Size(), params, cfg.GetStrategy(), cfg.GetWorkers())
	if o.printKernel {
		if err := render.Kernel(out, inf.Kernel()); err != nil {
			return err
		}
	}

	source, total, err := mapSource(o, cfg)
	if err != nil {
		return err
	}

	var (
		last    *grid.Cost
		elapsed time.Duration
	)
	for i := 0; i < total; i++ {
		occ, err := source(i)
		if err != nil {
			return err
		}
		start := time.Now()
		cost, err := inf.Inflate(occ)
		if err != nil {
			return fmt.Errorf("map %d: %w", i, err)
		}
		took := time.Since(start)
		elapsed += took
		obstacles := grid.Components(occ, func(v int) bool { return v == grid.Lethal }, grid.Conn8)
		monitoring.Logf("map %d/%d %dx%d, %d obstacle(s), inflated in %v: %s",
			i+1, total, occ.Width(), occ.Height(), len(obstacles), took, render.Summarize(cost))

		if o.printMaps {
			if err := render.Occupancy(out, occ, "Input Costmap"); err != nil {
				return err
			}
			if err := render.Cost(out, cost, "Inflated Map"); err != nil {
				return err
			}
		}
		last = cost
	}
	monitoring.Logf("inflated %d map(s) in %v (avg %v)", total, elapsed, elapsed/time.Duration(total))

	if o.heatmapPath != "" && last != nil {
		if err := render.Heatmap(o.heatmapPath, last, "Inflated Map"); err != nil {
			return err
		}
		monitoring.Logf("wrote heatmap %s", o.heatmapPath)
	}

	return nil
}

// mapSource returns a per-index map supplier and the number of maps to run.
// An input file yields exactly one map.
func mapSource(o *options, cfg *config.RunConfig) (func(int) (*grid.Occupancy, error), int, error) {
	if o.inputPath != "" {
		f, err := os.Open(o.inputPath)
		if err != nil {
			return nil, 0, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		occ, err := render.ParseOccupancy(f)
		if err != nil {
			return nil, 0, fmt.Errorf("parse %s: %w", o.inputPath, err)
		}
		return func(int) (*grid.Occupancy, error) { return occ, nil }, 1, nil
	}

	seed := cfg.GetSeed()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	monitoring.Logf("generating %d map(s), seed=%d", cfg.GetMaps(), seed)
	gen := func(i int) (*grid.Occupancy, error) {
		return mapgen.Clustered(cfg.GetWidth(), cfg.GetHeight(), cfg.GetClusters(), cfg.GetMaxClusterRadius(),
			mapgen.WithSeed(seed+int64(i)))
	}

	return gen, cfg.GetMaps(), nil
}

// merge copies every non-nil field of src into dst.
func merge(dst, src *config.RunConfig) {
	if src.CostScalingFactor != nil {
		dst.CostScalingFactor = src.CostScalingFactor
	}
	if src.InflationRadius != nil {
		dst.InflationRadius = src.InflationRadius
	}
	if src.InscribedRadius != nil {
		dst.InscribedRadius = src.InscribedRadius
	}
	if src.Resolution != nil {
		dst.Resolution = src.Resolution
	}
	if src.Width != nil {
		dst.Width = src.Width
	}
	if src.Height != nil {
		dst.Height = src.Height
	}
	if src.Clusters != nil {
		dst.Clusters = src.Clusters
	}
	if src.MaxClusterRadius != nil {
		dst.MaxClusterRadius = src.MaxClusterRadius
	}
	if src.Seed != nil {
		dst.Seed = src.Seed
	}
	if src.Maps != nil {
		dst.Maps = src.Maps
	}
	if src.Workers != nil {
		dst.Workers = src.Workers
	}
	if src.Strategy != nil {
		dst.Strategy = src.Strategy
	}
}
