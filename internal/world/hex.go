// Package world provides the hex grid, region partitioning, terrain
// assignment, and the edge rules used to draw borders between terrains.
// The grid uses "odd-q" offset coordinates: columns are vertical, and odd
// columns sit half a hex lower than even ones.
package world

import "fmt"

// HexCoord represents a position on the grid in offset coordinates.
type HexCoord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String returns "(x,y)".
func (h HexCoord) String() string {
	return fmt.Sprintf("(%d,%d)", h.X, h.Y)
}

// cube converts offset coordinates to cube coordinates (q, r, s).
func (h HexCoord) cube() (q, r, s int) {
	q = h.X
	r = h.Y - (h.X-(h.X&1))/2
	s = -q - r
	return q, r, s
}

// Direction is one of the six neighbor directions of a flat-top hex.
// The ordinal is used in tile index arithmetic, so the order is fixed.
type Direction uint8

const (
	DirN Direction = iota
	DirNE
	DirSE
	DirS
	DirSW
	DirNW

	NumDirections = 6
)

// Directions lists all directions in ordinal order.
var Directions = [NumDirections]Direction{DirN, DirNE, DirSE, DirS, DirSW, DirNW}

// Neighbor offsets for even and odd columns, indexed by Direction.
var (
	evenColumnOffsets = [NumDirections]HexCoord{
		{X: 0, Y: -1},  // N
		{X: 1, Y: -1},  // NE
		{X: 1, Y: 0},   // SE
		{X: 0, Y: 1},   // S
		{X: -1, Y: 0},  // SW
		{X: -1, Y: -1}, // NW
	}
	oddColumnOffsets = [NumDirections]HexCoord{
		{X: 0, Y: -1}, // N
		{X: 1, Y: 0},  // NE
		{X: 1, Y: 1},  // SE
		{X: 0, Y: 1},  // S
		{X: -1, Y: 1}, // SW
		{X: -1, Y: 0}, // NW
	}
)

// Step returns the coordinate one hex away in direction d. The result may be
// off the grid.
func (h HexCoord) Step(d Direction) HexCoord {
	offsets := &evenColumnOffsets
	if h.X&1 == 1 {
		offsets = &oddColumnOffsets
	}
	o := offsets[d]
	return HexCoord{X: h.X + o.X, Y: h.Y + o.Y}
}

// Opposite returns the direction pointing back the other way.
func (d Direction) Opposite() Direction {
	return (d + 3) % NumDirections
}

// String returns the compass abbreviation.
func (d Direction) String() string {
	switch d {
	case DirN:
		return "N"
	case DirNE:
		return "NE"
	case DirSE:
		return "SE"
	case DirS:
		return "S"
	case DirSW:
		return "SW"
	case DirNW:
		return "NW"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b HexCoord) int {
	aq, ar, as := a.cube()
	bq, br, bs := b.cube()
	dq := abs(aq - bq)
	dr := abs(ar - br)
	ds := abs(as - bs)
	// Max of the three absolute differences in cube coordinates.
	return max(dq, dr, ds)
}

// Terrain types for regions. Ordinals feed the greedy coloring (lowest
// first) and the edge tile index, so the order is fixed.
type Terrain uint8

const (
	TerrainGrass Terrain = iota
	TerrainDirt
	TerrainSand
	TerrainWater
	TerrainSwamp
	TerrainSnow

	NumTerrains = 6
)

// Valid reports whether t is one of the defined terrains.
func (t Terrain) Valid() bool {
	return t < NumTerrains
}

// String returns a human-readable name for a terrain type.
func (t Terrain) String() string {
	switch t {
	case TerrainGrass:
		return "Grass"
	case TerrainDirt:
		return "Dirt"
	case TerrainSand:
		return "Sand"
	case TerrainWater:
		return "Water"
	case TerrainSwamp:
		return "Swamp"
	case TerrainSnow:
		return "Snow"
	default:
		return "Unknown"
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
