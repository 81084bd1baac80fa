package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/costmap/inflation"
	"github.com/katalvlaran/costmap/kernel"
)

// RunConfig holds the parameters of one inflation run.
// Fields omitted from the JSON file fall back to the Get* defaults, so
// partial configs are safe.
type RunConfig struct {
	// Kernel params
	CostScalingFactor *float64 `json:"cost_scaling_factor,omitempty"`
	InflationRadius   *int     `json:"inflation_radius,omitempty"` // cells
	InscribedRadius   *float64 `json:"inscribed_radius,omitempty"` // meters
	Resolution        *float64 `json:"resolution,omitempty"`       // meters per cell

	// Map generation params (ignored when an input map is given)
	Width            *int   `json:"width,omitempty"`
	Height           *int   `json:"height,omitempty"`
	Clusters         *int   `json:"clusters,omitempty"`
	MaxClusterRadius *int   `json:"max_cluster_radius,omitempty"`
	Seed             *int64 `json:"seed,omitempty"`
	Maps             *int   `json:"maps,omitempty"`

	// Pass params
	Workers  *int    `json:"workers,omitempty"`
	Strategy *string `json:"strategy,omitempty"` // "gather" or "scatter"
}

// EmptyRunConfig returns a RunConfig with all fields set to nil.
func EmptyRunConfig() *RunConfig {
	return &RunConfig{}
}

// LoadRunConfig loads a RunConfig from a JSON file.
// The file must have a .json extension and be under 1MB.
func LoadRunConfig(path string) (*RunConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyRunConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the fields that are set. Kernel fields are checked by
// kernel.Params.Validate so the rules live in one place.
func (c *RunConfig) Validate() error {
	if err := c.KernelParams().Validate(); err != nil {
		return err
	}
	if c.Width != nil && *c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", *c.Width)
	}
	if c.Height != nil && *c.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", *c.Height)
	}
	if c.Clusters != nil && *c.Clusters < 0 {
		return fmt.Errorf("clusters must be non-negative, got %d", *c.Clusters)
	}
	if c.MaxClusterRadius != nil && *c.MaxClusterRadius <= 0 {
		return fmt.Errorf("max_cluster_radius must be positive, got %d", *c.MaxClusterRadius)
	}
	if c.Maps != nil && *c.Maps <= 0 {
		return fmt.Errorf("maps must be positive, got %d", *c.Maps)
	}
	if c.Workers != nil && *c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", *c.Workers)
	}
	if c.Strategy != nil {
		if _, err := inflation.ParseStrategy(*c.Strategy); err != nil {
			return err
		}
	}

	return nil
}

// KernelParams assembles kernel.Params, filling unset fields from kernel.DefaultParams.
func (c *RunConfig) KernelParams() kernel.Params {
	p := kernel.DefaultParams()
	if c.CostScalingFactor != nil {
		p.CostScalingFactor = *c.CostScalingFactor
	}
	if c.InflationRadius != nil {
		p.InflationRadius = *c.InflationRadius
	}
	if c.InscribedRadius != nil {
		p.InscribedRadius = *c.InscribedRadius
	}
	if c.Resolution != nil {
		p.Resolution = *c.Resolution
	}
	return p
}

// GetWidth returns the width value or the default.
func (c *RunConfig) GetWidth() int {
	if c.Width == nil {
		return 100
	}
	return *c.Width
}

// GetHeight returns the height value or the default.
func (c *RunConfig) GetHeight() int {
	if c.Height == nil {
		return 100
	}
	return *c.Height
}

// GetClusters returns the clusters value or the default.
func (c *RunConfig) GetClusters() int {
	if c.Clusters == nil {
		return 30
	}
	return *c.Clusters
}

// GetMaxClusterRadius returns the max_cluster_radius value or the default.
func (c *RunConfig) GetMaxClusterRadius() int {
	if c.MaxClusterRadius == nil {
		return 4
	}
	return *c.MaxClusterRadius
}

// GetSeed returns the seed value or the default (0: derive from the clock).
func (c *RunConfig) GetSeed() int64 {
	if c.Seed == nil {
		return 0
	}
	return *c.Seed
}

// GetMaps returns the maps value or the default.
func (c *RunConfig) GetMaps() int {
	if c.Maps == nil {
		return 1
	}
	return *c.Maps
}

// GetWorkers returns the workers value or the default.
func (c *RunConfig) GetWorkers() int {
	if c.Workers == nil {
		return inflation.DefaultWorkers
	}
	return *c.Workers
}

// GetStrategy returns the parsed strategy or the default.
func (c *RunConfig) GetStrategy() inflation.Strategy {
	if c.Strategy == nil {
		return inflation.DefaultStrategy
	}
	s, err := inflation.ParseStrategy(*c.Strategy)
	if err != nil {
		return inflation.DefaultStrategy
	}
	return s
}

// InflationOptions converts the pass fields into inflation options.
func (c *RunConfig) InflationOptions() []inflation.Option {
	return []inflation.Option{
		inflation.WithWorkers(c.GetWorkers()),
		inflation.WithStrategy(c.GetStrategy()),
	}
}
