// Map generation: partition the grid into regions, find which regions touch,
// color them with terrains, and pick fill tile variants from simplex noise.
package world

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/hexregions/internal/entropy"
)

// GenConfig holds map generation parameters.
type GenConfig struct {
	Width    int   // Grid columns
	Height   int   // Grid rows
	Regions  int   // Number of regions to partition into
	Passes   int   // Relaxation passes before the final assignment
	Seed     int64 // Random seed (0 = random)
	Variants int   // Fill tile variants per terrain (1 = no variation)
}

// DefaultGenConfig returns the standard 16×9 map with 18 regions.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:    16,
		Height:   9,
		Regions:  18,
		Passes:   DefaultPasses,
		Seed:     0,
		Variants: 1,
	}
}

// SmallTestConfig returns a tiny map for rapid iteration.
func SmallTestConfig() GenConfig {
	return GenConfig{
		Width:    6,
		Height:   4,
		Regions:  4,
		Passes:   DefaultPasses,
		Seed:     42,
		Variants: 1,
	}
}

// Validate checks the configuration before any generation step runs.
func (c GenConfig) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("map size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Regions <= 0 {
		errs = append(errs, fmt.Errorf("region count %d must be positive", c.Regions))
	}
	if c.Passes < 0 {
		errs = append(errs, fmt.Errorf("pass count %d must not be negative", c.Passes))
	}
	if c.Variants <= 0 {
		errs = append(errs, fmt.Errorf("variant count %d must be positive", c.Variants))
	}
	return errors.Join(errs...)
}

// Generate creates a complete map. The same config and non-zero seed always
// produce the same map.
func Generate(cfg GenConfig) (*Map, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("gen config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = entropy.Seed()
	}
	rng := rand.New(rand.NewSource(seed))

	grid := NewGrid(cfg.Width, cfg.Height)
	regions := PartitionRegionsPasses(grid, cfg.Regions, cfg.Passes, rng)
	adj := BuildAdjacency(grid, regions)
	regionTerrain := ColorTerrains(adj)

	// Assign terrain to each hex.
	terrain := make([]Terrain, grid.Size())
	for i, r := range regions.Owner {
		terrain[i] = regionTerrain[r]
	}

	if empty := regions.EmptyRegions(); empty > 0 {
		slog.Debug("regions absorbed during relaxation", "empty", empty, "regions", cfg.Regions, "seed", seed)
	}

	return &Map{
		Grid:          grid,
		Seed:          seed,
		Passes:        cfg.Passes,
		Regions:       regions,
		Adjacency:     adj,
		RegionTerrain: regionTerrain,
		Terrain:       terrain,
		Variant:       pickVariants(grid, seed, cfg.Variants),
	}, nil
}

// pickVariants chooses a fill tile variant for every hex from low-frequency
// simplex noise, so neighboring hexes tend to share a variant.
func pickVariants(g *Grid, seed int64, variants int) []int {
	result := make([]int, g.Size())
	if variants <= 1 {
		return result
	}

	noise := opensimplex.NewNormalized(seed + 1)
	for i := range result {
		x, y := layoutPosition(g.ToHex(i))
		v := octaveNoise(noise, x, y, 2, 0.35, 0.5)
		result[i] = min(int(v*float64(variants)), variants-1)
	}
	return result
}

// layoutPosition returns the hex center in units of hex height, matching the
// flat-top layout where odd columns sit half a hex lower.
func layoutPosition(h HexCoord) (x, y float64) {
	x = float64(h.X) * 0.75
	y = float64(h.Y)
	if h.X&1 == 1 {
		y += 0.5
	}
	return x, y
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
