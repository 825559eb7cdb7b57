package world

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// AdjacencyList maps each region id to the sorted ids of the regions that
// share at least one hex edge with it. It is symmetric and has no self-loops.
type AdjacencyList [][]int

// Neighbors returns the neighbors of region r.
func (adj AdjacencyList) Neighbors(r int) []int {
	if r < 0 || r >= len(adj) {
		violated(ErrInvalidRegion, "region %d of %d", r, len(adj))
	}
	return adj[r]
}

// Adjacent reports whether regions a and b border each other.
func (adj AdjacencyList) Adjacent(a, b int) bool {
	_, found := slices.BinarySearch(adj.Neighbors(a), b)
	return found
}

// BuildAdjacency records an edge between the regions of every pair of
// neighboring hexes that belong to different regions. Every region id gets
// an entry, empty regions included.
func BuildAdjacency(g *Grid, rm RegionMap) AdjacencyList {
	rm.validate(g)

	sets := make([]mapset.Set[int], rm.NumRegions)
	for r := range sets {
		sets[r] = mapset.New[int]()
	}

	for i, r := range rm.Owner {
		for _, n := range g.Neighbors(i) {
			if rn := rm.Owner[n]; rn != r {
				sets[r].Put(rn)
				sets[rn].Put(r)
			}
		}
	}

	adj := make(AdjacencyList, rm.NumRegions)
	for r, s := range sets {
		neighbors := make([]int, 0, s.Size())
		s.Each(func(n int) {
			neighbors = append(neighbors, n)
		})
		slices.Sort(neighbors)
		adj[r] = neighbors
	}
	return adj
}
