// Copyright (c) 2026 Harry Huang
package mosaic

import (
	"errors"
	"fmt"

	"github.com/forny/tilemosaic/pkg/orient"
)

var (
	ErrEmptyTileset = errors.New("tileset is empty")
	ErrNotSquare    = errors.New("tile count is not a perfect square")
	ErrTileWidth    = errors.New("invalid tile width")
	ErrTilePixel    = errors.New("invalid tile pixel")
	ErrDuplicateID  = errors.New("duplicate tile id")
)

// Tile is one square piece of the mosaic, border included.
type Tile struct {
	ID   int64
	Rows []string
}

// Width returns the side length of the tile including its border.
func (t *Tile) Width() int {
	return len(t.Rows)
}

// At returns the raw (untransformed) pixel at p.
func (t *Tile) At(p orient.Point) byte {
	return t.Rows[p.Y][p.X]
}

// Tileset is the read-only collection of tiles addressed by stable index.
type Tileset struct {
	tiles     []Tile
	tileWidth int
	gridWidth int
}

// NewTileset validates tiles and wraps them in a Tileset.
// The slice is copied; later changes to the argument do not affect the set.
func NewTileset(tiles []Tile) (*Tileset, error) {
	if len(tiles) == 0 {
		return nil, ErrEmptyTileset
	}

	gridWidth := intSqrt(len(tiles))
	if gridWidth*gridWidth != len(tiles) {
		return nil, fmt.Errorf("%w: %d tiles", ErrNotSquare, len(tiles))
	}

	width := tiles[0].Width()
	if width < MIN_TILE_WIDTH {
		return nil, fmt.Errorf("%w: tile %d is %d wide, need at least %d", ErrTileWidth, tiles[0].ID, width, MIN_TILE_WIDTH)
	}

	seen := make(map[int64]bool, len(tiles))
	owned := make([]Tile, len(tiles))
	for i, t := range tiles {
		if seen[t.ID] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, t.ID)
		}
		seen[t.ID] = true

		if t.Width() != width {
			return nil, fmt.Errorf("%w: tile %d has %d rows, expected %d", ErrTileWidth, t.ID, t.Width(), width)
		}
		for y, row := range t.Rows {
			if len(row) != width {
				return nil, fmt.Errorf("%w: tile %d row %d has %d pixels, expected %d", ErrTileWidth, t.ID, y, len(row), width)
			}
			for x := 0; x < len(row); x++ {
				if row[x] != PIXEL_FILLED && row[x] != PIXEL_EMPTY {
					return nil, fmt.Errorf("%w: tile %d (%d,%d) is %q", ErrTilePixel, t.ID, x, y, row[x])
				}
			}
		}

		owned[i] = Tile{ID: t.ID, Rows: append([]string(nil), t.Rows...)}
	}

	return &Tileset{
		tiles:     owned,
		tileWidth: width,
		gridWidth: gridWidth,
	}, nil
}

// Len returns the number of tiles.
func (ts *Tileset) Len() int { return len(ts.tiles) }

// Tile returns the tile at index i. The returned tile must not be modified.
func (ts *Tileset) Tile(i int) *Tile { return &ts.tiles[i] }

// TileWidth returns the side length shared by every tile, border included.
func (ts *Tileset) TileWidth() int { return ts.tileWidth }

// GridWidth returns N, the number of tiles along one side of the mosaic.
func (ts *Tileset) GridWidth() int { return ts.gridWidth }

func intSqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
