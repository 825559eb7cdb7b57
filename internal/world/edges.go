package world

// EdgeTerrain returns the terrain of the border decal drawn between a hex of
// terrain from and a neighbor of terrain to. The second result is false when
// the terrains match and no border is drawn. The rule is symmetric:
//
//   - water or sand against anything else gets a sand (beach) border
//   - dirt against grass gets a grass border
//   - any other pair gets a dirt border
func EdgeTerrain(from, to Terrain) (Terrain, bool) {
	if !from.Valid() || !to.Valid() {
		violated(ErrInvalidTerrain, "edge between %d and %d", from, to)
	}

	switch {
	case (from == TerrainWater) != (to == TerrainWater):
		return TerrainSand, true
	case (from == TerrainSand) != (to == TerrainSand):
		return TerrainSand, true
	case from == TerrainDirt && to == TerrainGrass,
		from == TerrainGrass && to == TerrainDirt:
		return TerrainGrass, true
	case from != to:
		return TerrainDirt, true
	}
	return 0, false
}

// EdgeTileIndex returns the position of a border tile in a tile set laid out
// as NumDirections consecutive tiles (N, NE, SE, S, SW, NW) per border
// terrain, ordered by terrain.
func EdgeTileIndex(border Terrain, d Direction) int {
	if !border.Valid() {
		violated(ErrInvalidTerrain, "border terrain %d", border)
	}
	if d >= NumDirections {
		violated(ErrOutOfBounds, "direction %d", d)
	}
	return int(border)*NumDirections + int(d)
}
