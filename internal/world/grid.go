package world

import "fmt"

// OffGrid is returned by Grid.Neighbor when the neighbor falls outside the grid.
const OffGrid = -1

// Rand is the random source consumed by the grid. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Grid is a rectangular W×H hex grid. Hexes are stored row-major:
// index = y*W + x.
type Grid struct {
	width  int
	height int
}

// NewGrid creates a grid of the given size. Both dimensions must be positive.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		violated(ErrInvalidGrid, "size %dx%d", width, height)
	}
	return &Grid{width: width, height: height}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns the number of hexes on the grid.
func (g *Grid) Size() int { return g.width * g.height }

// InBounds returns true if the coordinate lies on the grid.
func (g *Grid) InBounds(h HexCoord) bool {
	return h.X >= 0 && h.X < g.width && h.Y >= 0 && h.Y < g.height
}

// ToIndex converts a coordinate to its array index.
func (g *Grid) ToIndex(h HexCoord) int {
	if !g.InBounds(h) {
		violated(ErrOutOfBounds, "hex %v on %dx%d grid", h, g.width, g.height)
	}
	return h.Y*g.width + h.X
}

// ToHex converts an array index back to its coordinate.
func (g *Grid) ToHex(index int) HexCoord {
	g.checkIndex(index)
	return HexCoord{X: index % g.width, Y: index / g.width}
}

// Neighbor returns the index of the neighbor of index in direction d, or
// OffGrid if that neighbor is not on the grid.
func (g *Grid) Neighbor(index int, d Direction) int {
	if d >= NumDirections {
		violated(ErrOutOfBounds, "direction %d", d)
	}
	n := g.ToHex(index).Step(d)
	if !g.InBounds(n) {
		return OffGrid
	}
	return n.Y*g.width + n.X
}

// Neighbors returns the indices of all on-grid neighbors of index, in
// direction order.
func (g *Grid) Neighbors(index int) []int {
	h := g.ToHex(index)
	result := make([]int, 0, NumDirections)
	for _, d := range Directions {
		n := h.Step(d)
		if g.InBounds(n) {
			result = append(result, n.Y*g.width+n.X)
		}
	}
	return result
}

// RandomHex returns a coordinate drawn uniformly from the whole grid.
func (g *Grid) RandomHex(rng Rand) HexCoord {
	return g.ToHex(rng.Intn(g.Size()))
}

// String returns a summary of the grid.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(%dx%d)", g.width, g.height)
}

func (g *Grid) checkIndex(index int) {
	if index < 0 || index >= g.Size() {
		violated(ErrOutOfBounds, "index %d on %dx%d grid", index, g.width, g.height)
	}
}
