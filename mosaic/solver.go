// Copyright (c) 2026 Harry Huang
package mosaic

import (
	"context"
	"fmt"

	"github.com/forny/tilemosaic/pkg/orient"
)

// SEED_CELL is where tile 0 is anchored. Any cell works since the map is sparse.
var SEED_CELL = orient.Point{X: 0, Y: 0}

// Solver grows a TileMap outward from a seed tile by matching borders.
type Solver struct {
	tiles *Tileset
	tm    *TileMap
	queue []orient.Point
}

func NewSolver(ts *Tileset) *Solver {
	return &Solver{
		tiles: ts,
		tm:    NewTileMap(ts),
	}
}

// Solve places every tile of ts and returns the finalized map.
func Solve(ts *Tileset) (*TileMap, error) {
	return SolveContext(context.Background(), ts)
}

// SolveContext is Solve with cancellation checked between queue items.
//
// Tile 0 is anchored at SEED_CELL with flop 0, which fixes the otherwise free global
// rotation and mirror of the result. Corner products do not depend on that choice;
// motif detection does, so the scanner tries all 8 orientations.
func SolveContext(ctx context.Context, ts *Tileset) (*TileMap, error) {
	s := NewSolver(ts)
	if err := s.Run(ctx); err != nil {
		return nil, err
	}
	return s.tm, nil
}

// Run seeds the map and propagates breadth first until the queue drains, then finalizes.
func (s *Solver) Run(ctx context.Context) error {
	if err := s.tm.Set(SEED_CELL, 0, orient.Identity); err != nil {
		return err
	}
	s.queue = append(s.queue[:0], SEED_CELL)

	for len(s.queue) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		from := s.queue[0]
		s.queue = s.queue[1:]
		for _, dir := range AllSides {
			if _, err := s.extend(from, dir); err != nil {
				return err
			}
		}
	}

	modLog().Debug().
		Int("placed", s.tm.Len()).
		Int("tiles", s.tiles.Len()).
		Msg("Propagation finished")

	if err := s.tm.Finalize(); err != nil {
		return fmt.Errorf("solve %d tiles: %w", s.tiles.Len(), err)
	}

	modLog().Info().
		Int("gridWidth", s.tiles.GridWidth()).
		Int("startX", s.tm.Start().X).
		Int("startY", s.tm.Start().Y).
		Msg("Mosaic solved")
	return nil
}

// Map returns the map being built.
func (s *Solver) Map() *TileMap { return s.tm }

// extend tries to place a tile on the dir side of the cell at from.
// Finding no match is not an error; the neighbour may simply lie outside the mosaic.
func (s *Solver) extend(from orient.Point, dir Side) (bool, error) {
	to := from.Add(dir.Delta())
	if _, ok := s.tm.At(to); ok {
		return false, nil
	}

	cur, _ := s.tm.At(from)
	want := NewEdge(s.tiles.Tile(cur.Tile), dir, cur.Flop)

	idx, flop, ok := s.findMatch(cur.Tile, want, dir.Opposite())
	if !ok {
		return false, nil
	}
	if err := s.tm.Set(to, idx, flop); err != nil {
		return false, err
	}
	s.queue = append(s.queue, to)

	modLog().Debug().
		Int64("tileID", s.tiles.Tile(idx).ID).
		Int("x", to.X).
		Int("y", to.Y).
		Stringer("flop", flop).
		Stringer("edge", want).
		Msg("Placed tile")
	return true, nil
}

// findMatch returns the first unplaced tile and flop whose side edge equals want.
// Tile index is scanned first, then flop; valid puzzles have a single match.
func (s *Solver) findMatch(skip int, want Edge, side Side) (int, orient.Flop, bool) {
	for i := 0; i < s.tiles.Len(); i++ {
		if i == skip || s.tm.Placed(i) {
			continue
		}
		t := s.tiles.Tile(i)
		for _, f := range orient.AllFlops {
			if EdgesEqual(want, NewEdge(t, side, f)) {
				return i, f, true
			}
		}
	}
	return -1, 0, false
}
