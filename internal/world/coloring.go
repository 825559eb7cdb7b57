package world

// ColorTerrains assigns a terrain to every region with a single greedy pass
// in increasing region id order. Region r gets the lowest terrain not used by
// any neighbor with a smaller id; neighbors with larger ids are not yet
// colored and do not count. When all terrains are taken it falls back to
// TerrainGrass, which can leave two adjacent regions with the same terrain.
func ColorTerrains(adj AdjacencyList) []Terrain {
	terrain := make([]Terrain, len(adj))

	for r, neighbors := range adj {
		var used [NumTerrains]bool
		for _, n := range neighbors {
			if n < 0 || n >= len(adj) {
				violated(ErrInvalidRegion, "region %d lists neighbor %d of %d", r, n, len(adj))
			}
			if n < r {
				used[terrain[n]] = true
			}
		}

		terrain[r] = TerrainGrass
		for t := Terrain(0); t < NumTerrains; t++ {
			if !used[t] {
				terrain[r] = t
				break
			}
		}
	}

	return terrain
}
