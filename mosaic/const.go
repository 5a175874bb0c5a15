// Copyright (c) 2026 Harry Huang
package mosaic

// Pixel values
const (
	PIXEL_FILLED = '#'
	PIXEL_EMPTY  = '.'
)

// Tile geometry limits
const (
	// Tiles carry a 1-pixel border on every side, so anything narrower has no interior.
	MIN_TILE_WIDTH = 3
	TILE_HEADER    = "Tile "
)

// Sea monster pattern. '#' cells must be filled in the composed image.
var SEA_MONSTER_ROWS = []string{
	"..................#.",
	"#....##....##....###",
	".#..#..#..#..#..#...",
}
