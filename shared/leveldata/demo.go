package leveldata

import "github.com/automoto/tilescene/shared/gamemath"

// Demo builds an image-less walled room with a few interior obstacles, a
// hero spawn and two patrols. It is used when no TMX level is given.
func Demo(cols, rows, tileSize int) *Level {
	level := &Level{
		Path:       "demo",
		Width:      cols,
		Height:     rows,
		TileWidth:  tileSize,
		TileHeight: tileSize,
		Tiles:      make(map[string]Tile),
	}

	put := func(x, y int) {
		c := gamemath.Pt(float64(x), float64(y))
		level.Tiles[c.Key()] = Tile{Coord: c}
	}

	for x := 0; x < cols; x++ {
		put(x, 0)
		put(x, rows-1)
	}
	for y := 1; y < rows-1; y++ {
		put(0, y)
		put(cols-1, y)
	}

	// Ledge across the upper third and a pillar on the right
	for x := 4; x < cols/2; x++ {
		put(x, rows/3)
	}
	for y := rows / 2; y < rows-4; y++ {
		put(cols*2/3, y)
	}

	// Half-height step below the ledge
	step := gamemath.Pt(float64(cols/4), float64(rows/3+3))
	level.Tiles[step.Key()] = Tile{
		Coord:    step,
		HitBoxes: []gamemath.HitBox{gamemath.NewHitBox(0, float64(tileSize)/2, float64(tileSize), float64(tileSize))},
	}

	ts := float64(tileSize)
	level.Spawns = []SpawnPoint{
		{Kind: SpawnHero, X: 2 * ts, Y: 2 * ts},
		{Kind: SpawnPatrol, X: 3 * ts, Y: float64(rows/2) * ts},
		{Kind: SpawnPatrol, X: float64(cols/3) * ts, Y: float64(rows/3+1) * ts, Vertical: true},
	}

	return level
}
