// Copyright (c) 2026 Harry Huang
package mosaic

import (
	"errors"
	"fmt"
	"sort"

	"github.com/forny/tilemosaic/pkg/orient"
)

var (
	ErrCellOccupied      = errors.New("grid cell already has a tile")
	ErrTileAlreadyPlaced = errors.New("tile already placed")
	ErrNotConverged      = errors.New("placements do not form a complete square mosaic")
	ErrNotFinalized      = errors.New("tile map is not finalized")
	ErrFinalized         = errors.New("tile map is finalized")
)

// Placement is a settled (tile, orientation) pair for one grid cell.
type Placement struct {
	Tile int         // index into the Tileset
	Flop orient.Flop // orientation the tile is viewed under
}

// Cell is a placement together with its grid coordinate.
type Cell struct {
	Pos orient.Point
	Placement
}

// TileMap maps signed grid coordinates to placements.
// It is written by the solver, then finalized and read-only afterwards.
type TileMap struct {
	tiles *Tileset
	cells map[orient.Point]Placement
	where map[int]orient.Point

	finalized bool
	start     orient.Point
	grid      [][]Placement // [y][x], relative to start
}

func NewTileMap(ts *Tileset) *TileMap {
	return &TileMap{
		tiles: ts,
		cells: make(map[orient.Point]Placement, ts.Len()),
		where: make(map[int]orient.Point, ts.Len()),
	}
}

// Tiles returns the tileset the map places.
func (m *TileMap) Tiles() *Tileset { return m.tiles }

// At returns the placement at p and whether the cell is populated.
func (m *TileMap) At(p orient.Point) (Placement, bool) {
	pl, ok := m.cells[p]
	return pl, ok
}

// Tile returns the tile index placed at p, or -1 when the cell is empty.
func (m *TileMap) Tile(p orient.Point) int {
	if pl, ok := m.cells[p]; ok {
		return pl.Tile
	}
	return -1
}

// Flop returns the orientation stored at p, or -1 when the cell is empty.
func (m *TileMap) Flop(p orient.Point) orient.Flop {
	if pl, ok := m.cells[p]; ok {
		return pl.Flop
	}
	return -1
}

// Placed reports whether tile index i is somewhere on the map.
func (m *TileMap) Placed(i int) bool {
	_, ok := m.where[i]
	return ok
}

// Len returns the number of populated cells.
func (m *TileMap) Len() int { return len(m.cells) }

// Set places tile index i at p under flop.
// Each cell and each tile can be placed only once.
func (m *TileMap) Set(p orient.Point, i int, flop orient.Flop) error {
	if m.finalized {
		return ErrFinalized
	}
	if i < 0 || i >= m.tiles.Len() {
		return fmt.Errorf("tile index %d out of range [0, %d)", i, m.tiles.Len())
	}
	if !flop.Valid() {
		return fmt.Errorf("invalid flop %d for tile %d", int(flop), i)
	}
	if prev, ok := m.cells[p]; ok {
		return fmt.Errorf("%w: (%d,%d) holds tile %d", ErrCellOccupied, p.X, p.Y, prev.Tile)
	}
	if at, ok := m.where[i]; ok {
		return fmt.Errorf("%w: tile %d at (%d,%d)", ErrTileAlreadyPlaced, m.tiles.Tile(i).ID, at.X, at.Y)
	}

	m.cells[p] = Placement{Tile: i, Flop: flop}
	m.where[i] = p
	return nil
}

// Finalize locates the N x N region the placements occupy.
// It fails unless every cell of that region is populated. Calling it again is a no-op.
func (m *TileMap) Finalize() error {
	if m.finalized {
		return nil
	}
	if len(m.cells) == 0 {
		return fmt.Errorf("%w: nothing placed", ErrNotConverged)
	}

	first := true
	var lo, hi orient.Point
	for p := range m.cells {
		if first {
			lo, hi = p, p
			first = false
			continue
		}
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}

	n := m.tiles.GridWidth()
	w, h := hi.X-lo.X+1, hi.Y-lo.Y+1
	if w != n || h != n || len(m.cells) != n*n {
		return fmt.Errorf("%w: %d of %d tiles placed in a %dx%d region, expected %dx%d",
			ErrNotConverged, len(m.cells), m.tiles.Len(), w, h, n, n)
	}

	grid := make([][]Placement, n)
	for y := 0; y < n; y++ {
		grid[y] = make([]Placement, n)
		for x := 0; x < n; x++ {
			grid[y][x] = m.cells[orient.Point{X: lo.X + x, Y: lo.Y + y}]
		}
	}

	m.start = lo
	m.grid = grid
	m.finalized = true
	return nil
}

// Finalized reports whether Finalize succeeded.
func (m *TileMap) Finalized() bool { return m.finalized }

// Start returns the grid coordinate of the mosaic's top-left cell.
func (m *TileMap) Start() orient.Point { return m.start }

// GridWidth returns N, the number of tiles along one side.
func (m *TileMap) GridWidth() int { return m.tiles.GridWidth() }

// ImageWidth returns the side length of the composed, border-stripped image.
func (m *TileMap) ImageWidth() int {
	return m.tiles.GridWidth() * (m.tiles.TileWidth() - 2)
}

// CornerIDProduct multiplies the IDs of the four corner tiles.
func (m *TileMap) CornerIDProduct() (int64, error) {
	if !m.finalized {
		return 0, ErrNotFinalized
	}
	last := m.tiles.GridWidth() - 1
	product := int64(1)
	for _, c := range [4]orient.Point{{X: 0, Y: 0}, {X: last, Y: 0}, {X: 0, Y: last}, {X: last, Y: last}} {
		product *= m.tiles.Tile(m.grid[c.Y][c.X].Tile).ID
	}
	return product, nil
}

// Pixel reads pixel (x, y) of the composed image viewed under global.
// The global flop is resolved over the composed image first, then the cell's own flop
// over the full tile width. Coordinates outside the image panic.
func (m *TileMap) Pixel(x, y int, global orient.Flop) byte {
	if !m.finalized {
		panic("mosaic: Pixel on a tile map that is not finalized")
	}
	tileWidth := m.tiles.TileWidth()
	inner := tileWidth - 2
	width := m.ImageWidth()
	if x < 0 || x >= width || y < 0 || y >= width {
		panic(fmt.Sprintf("mosaic: pixel (%d,%d) outside %dx%d image", x, y, width, width))
	}

	p := orient.Transform(orient.Point{X: x, Y: y}, width, global)
	cell := m.grid[p.Y/inner][p.X/inner]
	q := orient.Transform(orient.Point{X: p.X%inner + 1, Y: p.Y%inner + 1}, tileWidth, cell.Flop)
	return m.tiles.Tile(cell.Tile).At(q)
}

// Placements returns every populated cell ordered by row, then column.
func (m *TileMap) Placements() []Cell {
	cells := make([]Cell, 0, len(m.cells))
	for p, pl := range m.cells {
		cells = append(cells, Cell{Pos: p, Placement: pl})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Pos.Y != cells[j].Pos.Y {
			return cells[i].Pos.Y < cells[j].Pos.Y
		}
		return cells[i].Pos.X < cells[j].Pos.X
	})
	return cells
}
