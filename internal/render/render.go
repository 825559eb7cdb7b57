// Package render turns a generated map into tile placements for a host
// renderer. It never touches pixels: a Sink receives fill tiles and border
// decals as (position, tile) tuples and decides how to draw them.
package render

import "github.com/talgya/hexregions/internal/world"

// Sink receives tile placements in drawing order.
type Sink interface {
	// Fill places the base tile of a hex.
	Fill(pos world.HexCoord, terrain world.Terrain, variant int)
	// Edge places a border decal on pos along the side facing dir.
	Edge(pos world.HexCoord, dir world.Direction, border world.Terrain)
}

// Draw feeds every hex of m to the sink, column by column. Each hex emits
// its fill tile followed by one border decal per on-grid neighbor with a
// different terrain, in direction order.
func Draw(m *world.Map, sink Sink) {
	g := m.Grid
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			pos := world.HexCoord{X: x, Y: y}
			i := g.ToIndex(pos)
			terrain := m.Terrain[i]
			sink.Fill(pos, terrain, m.Variant[i])

			for _, dir := range world.Directions {
				n := g.Neighbor(i, dir)
				if n == world.OffGrid {
					continue
				}
				if border, ok := world.EdgeTerrain(terrain, m.Terrain[n]); ok {
					sink.Edge(pos, dir, border)
				}
			}
		}
	}
}

// Multi fans placements out to several sinks in order.
type Multi []Sink

func (ms Multi) Fill(pos world.HexCoord, terrain world.Terrain, variant int) {
	for _, s := range ms {
		s.Fill(pos, terrain, variant)
	}
}

func (ms Multi) Edge(pos world.HexCoord, dir world.Direction, border world.Terrain) {
	for _, s := range ms {
		s.Edge(pos, dir, border)
	}
}

// Tally is a Sink that counts placements.
type Tally struct {
	Fills map[world.Terrain]int // fill tiles per terrain
	Edges map[int]int           // border decals per edge tile index
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	return &Tally{
		Fills: make(map[world.Terrain]int),
		Edges: make(map[int]int),
	}
}

func (t *Tally) Fill(_ world.HexCoord, terrain world.Terrain, _ int) {
	t.Fills[terrain]++
}

func (t *Tally) Edge(_ world.HexCoord, dir world.Direction, border world.Terrain) {
	t.Edges[world.EdgeTileIndex(border, dir)]++
}

// EdgeCount returns the total number of border decals placed.
func (t *Tally) EdgeCount() int {
	n := 0
	for _, c := range t.Edges {
		n += c
	}
	return n
}
