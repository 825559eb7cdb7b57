package render

import (
	"strings"

	"github.com/talgya/hexregions/internal/world"
)

// Glyphs used by the text renderer, indexed by terrain.
var Glyphs = [world.NumTerrains]byte{
	world.TerrainGrass: '"',
	world.TerrainDirt:  '.',
	world.TerrainSand:  ':',
	world.TerrainWater: '~',
	world.TerrainSwamp: '%',
	world.TerrainSnow:  '*',
}

// Text is a Sink that draws the map as ASCII. Each grid row takes two
// lines: even columns on the first, odd columns (which sit half a hex
// lower) on the second. Border decals are not drawn.
type Text struct {
	lines [][]byte
}

// NewText creates a blank canvas for a width×height grid.
func NewText(width, height int) *Text {
	lines := make([][]byte, 2*height)
	for i := range lines {
		lines[i] = []byte(strings.Repeat(" ", 2*width))
	}
	return &Text{lines: lines}
}

func (t *Text) Fill(pos world.HexCoord, terrain world.Terrain, _ int) {
	line := 2*pos.Y + (pos.X & 1)
	t.lines[line][2*pos.X] = Glyphs[terrain]
}

func (t *Text) Edge(world.HexCoord, world.Direction, world.Terrain) {}

// String returns the canvas with trailing spaces trimmed.
func (t *Text) String() string {
	var b strings.Builder
	for _, line := range t.lines {
		b.WriteString(strings.TrimRight(string(line), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// Legend returns one "glyph name" pair per terrain.
func Legend() string {
	parts := make([]string, 0, world.NumTerrains)
	for t := world.Terrain(0); t < world.NumTerrains; t++ {
		parts = append(parts, string(Glyphs[t])+" "+t.String())
	}
	return strings.Join(parts, "  ")
}
