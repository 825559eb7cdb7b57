// Region partitioning: a discrete Lloyd relaxation ("Voronoi on a lattice").
package world

import "math"

// DefaultPasses is the number of recenter passes run before the final
// assignment.
const DefaultPasses = 4

// RegionMap assigns every hex on a grid to exactly one region.
// A region may own zero hexes if its neighbors absorbed it during
// relaxation; such a region keeps its id and its last center.
type RegionMap struct {
	NumRegions int        `json:"num_regions"`
	Owner      []int      `json:"owner"`   // region id per array index
	Centers    []HexCoord `json:"centers"` // last computed center per region
}

// Region returns the region owning the hex at index.
func (rm RegionMap) Region(index int) int {
	if index < 0 || index >= len(rm.Owner) {
		violated(ErrOutOfBounds, "index %d of %d-hex region map", index, len(rm.Owner))
	}
	return rm.Owner[index]
}

// Sizes returns the number of hexes owned by each region.
func (rm RegionMap) Sizes() []int {
	sizes := make([]int, rm.NumRegions)
	for _, r := range rm.Owner {
		sizes[r]++
	}
	return sizes
}

// EmptyRegions returns how many regions own no hexes.
func (rm RegionMap) EmptyRegions() int {
	n := 0
	for _, s := range rm.Sizes() {
		if s == 0 {
			n++
		}
	}
	return n
}

// validate panics unless rm covers exactly the hexes of g with in-range ids.
func (rm RegionMap) validate(g *Grid) {
	if rm.NumRegions <= 0 {
		violated(ErrInvalidRegion, "region count %d", rm.NumRegions)
	}
	if len(rm.Owner) != g.Size() {
		violated(ErrInvalidRegion, "region map covers %d hexes, grid has %d", len(rm.Owner), g.Size())
	}
	for i, r := range rm.Owner {
		if r < 0 || r >= rm.NumRegions {
			violated(ErrInvalidRegion, "hex %d has region %d, want [0,%d)", i, r, rm.NumRegions)
		}
	}
}

// PartitionRegions splits the grid into numRegions regions using the default
// number of relaxation passes.
func PartitionRegions(g *Grid, numRegions int, rng Rand) RegionMap {
	return PartitionRegionsPasses(g, numRegions, DefaultPasses, rng)
}

// PartitionRegionsPasses draws numRegions random centers, then repeatedly
// assigns every hex to its nearest center and moves each center to the
// truncated centroid of its hexes. Duplicate centers are allowed; they
// usually leave a region empty. The only randomness is the initial draw.
func PartitionRegionsPasses(g *Grid, numRegions, passes int, rng Rand) RegionMap {
	if numRegions <= 0 {
		violated(ErrInvalidRegion, "region count %d", numRegions)
	}
	if passes < 0 {
		violated(ErrInvalidGrid, "pass count %d", passes)
	}

	centers := make([]HexCoord, numRegions)
	for r := range centers {
		centers[r] = g.RandomHex(rng)
	}

	owner := make([]int, g.Size())
	for i := 0; i < passes; i++ {
		assignNearest(g, centers, owner)
		recenter(g, centers, owner)
	}
	assignNearest(g, centers, owner)

	return RegionMap{
		NumRegions: numRegions,
		Owner:      owner,
		Centers:    centers,
	}
}

// assignNearest sets owner[i] to the region whose center is closest to hex i.
func assignNearest(g *Grid, centers []HexCoord, owner []int) {
	for i := range owner {
		owner[i] = nearestCenter(g.ToHex(i), centers)
	}
}

// nearestCenter returns the closest center to h. Ties go to the lowest
// region id.
func nearestCenter(h HexCoord, centers []HexCoord) int {
	best := -1
	bestDist := math.MaxInt
	for r, c := range centers {
		if d := Distance(h, c); d < bestDist {
			best = r
			bestDist = d
		}
	}
	return best
}

// recenter moves each non-empty region's center to the truncated mean of its
// hexes. Empty regions keep their previous center.
func recenter(g *Grid, centers []HexCoord, owner []int) {
	sumX := make([]int, len(centers))
	sumY := make([]int, len(centers))
	count := make([]int, len(centers))

	for i, r := range owner {
		h := g.ToHex(i)
		sumX[r] += h.X
		sumY[r] += h.Y
		count[r]++
	}

	for r := range centers {
		if count[r] == 0 {
			continue
		}
		centers[r] = HexCoord{X: sumX[r] / count[r], Y: sumY[r] / count[r]}
	}
}
