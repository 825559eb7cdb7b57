package world

import "fmt"

// Map holds a generated map: the grid, its regions, and the terrain of
// every region and hex.
type Map struct {
	Grid          *Grid         `json:"-"`
	Seed          int64         `json:"seed"`
	Passes        int           `json:"passes"`
	Regions       RegionMap     `json:"regions"`
	Adjacency     AdjacencyList `json:"adjacency"`
	RegionTerrain []Terrain     `json:"region_terrain"` // per region id
	Terrain       []Terrain     `json:"terrain"`        // per array index
	Variant       []int         `json:"variant"`        // fill tile variant per array index
}

// TerrainAt returns the terrain of the hex at coord.
func (m *Map) TerrainAt(coord HexCoord) Terrain {
	return m.Terrain[m.Grid.ToIndex(coord)]
}

// RegionAt returns the region owning the hex at coord.
func (m *Map) RegionAt(coord HexCoord) int {
	return m.Regions.Region(m.Grid.ToIndex(coord))
}

// HexCount returns the total number of hexes in the map.
func (m *Map) HexCount() int {
	return m.Grid.Size()
}

// String returns a summary of the map.
func (m *Map) String() string {
	return fmt.Sprintf("Map(%dx%d, regions=%d, empty=%d, seed=%d)",
		m.Grid.Width(), m.Grid.Height(), m.Regions.NumRegions, m.Regions.EmptyRegions(), m.Seed)
}

// TerrainCounts returns a summary of terrain type distribution over hexes.
func TerrainCounts(m *Map) map[Terrain]int {
	counts := make(map[Terrain]int)
	for _, t := range m.Terrain {
		counts[t]++
	}
	return counts
}
