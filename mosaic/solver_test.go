package mosaic

import (
	"context"
	"errors"
	"testing"

	"github.com/forny/tilemosaic/pkg/orient"
)

func TestSolveExample(t *testing.T) {
	tm := solveExample(t)
	ts := tm.Tiles()

	if tm.Start() != pt(-1, -2) {
		t.Errorf("expected start (-1,-2), got %v", tm.Start())
	}

	type want struct {
		id   int64
		flop orient.Flop
	}
	layout := [3][3]want{
		{{2971, 0}, {1489, 0}, {1171, 2}},
		{{2729, 0}, {1427, 0}, {2473, 3}},
		{{1951, 0}, {2311, 0}, {3079, 6}},
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			p := tm.Start().Add(pt(x, y))
			pl, ok := tm.At(p)
			if !ok {
				t.Fatalf("cell (%d,%d) empty", x, y)
			}
			w := layout[y][x]
			if ts.Tile(pl.Tile).ID != w.id || pl.Flop != w.flop {
				t.Errorf("cell (%d,%d): expected %d/%s, got %d/%s", x, y, w.id, w.flop, ts.Tile(pl.Tile).ID, pl.Flop)
			}
		}
	}

	product, err := tm.CornerIDProduct()
	if err != nil {
		t.Fatalf("CornerIDProduct failed: %v", err)
	}
	if product != exampleCornerProduct {
		t.Errorf("expected corner product %d, got %d", exampleCornerProduct, product)
	}
}

func TestSolvePlacesEachTileOnce(t *testing.T) {
	tm := solveExample(t)
	seen := make(map[int]bool)
	for _, c := range tm.Placements() {
		if seen[c.Tile] {
			t.Fatalf("tile %d placed twice", c.Tile)
		}
		seen[c.Tile] = true
	}
	if len(seen) != tm.Tiles().Len() {
		t.Errorf("expected %d tiles placed, got %d", tm.Tiles().Len(), len(seen))
	}
}

func TestSolverInvariantDuringPropagation(t *testing.T) {
	s := NewSolver(loadExample(t))
	if err := s.Map().Set(SEED_CELL, 0, 0); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	s.queue = []orient.Point{SEED_CELL}

	for len(s.queue) > 0 {
		from := s.queue[0]
		s.queue = s.queue[1:]
		for _, dir := range AllSides {
			if _, err := s.extend(from, dir); err != nil {
				t.Fatalf("extend failed: %v", err)
			}
			seen := make(map[int]bool)
			for _, c := range s.Map().Placements() {
				if seen[c.Tile] {
					t.Fatalf("tile %d appears twice after extending %v %s", c.Tile, from, dir)
				}
				seen[c.Tile] = true
			}
		}
	}
	if s.Map().Len() != 9 {
		t.Errorf("expected 9 placements, got %d", s.Map().Len())
	}
}

func TestSolveScenario(t *testing.T) {
	ts := scenarioTiles(t)
	tm, err := Solve(ts)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	want := map[orient.Point]Placement{
		pt(0, 0): {Tile: 0, Flop: 0},
		pt(1, 0): {Tile: 2, Flop: 3},
		pt(0, 1): {Tile: 3, Flop: 6},
		pt(1, 1): {Tile: 1, Flop: 5},
	}
	for p, w := range want {
		got, ok := tm.At(p)
		if !ok || got != w {
			t.Errorf("cell %v: expected %+v, got %+v (ok=%v)", p, w, got, ok)
		}
	}
	if tm.Start() != pt(0, 0) {
		t.Errorf("expected start (0,0), got %v", tm.Start())
	}

	product, err := tm.CornerIDProduct()
	if err != nil {
		t.Fatalf("CornerIDProduct failed: %v", err)
	}
	if want := int64(1009 * 2003 * 3001 * 4007); product != want {
		t.Errorf("expected %d, got %d", want, product)
	}
}

func TestSolveNoMatches(t *testing.T) {
	full := []string{"###", "###", "###"}
	empty := []string{"...", "...", "..."}
	ts, err := NewTileset([]Tile{
		{ID: 1, Rows: full},
		{ID: 2, Rows: empty},
		{ID: 3, Rows: empty},
		{ID: 4, Rows: empty},
	})
	if err != nil {
		t.Fatalf("NewTileset failed: %v", err)
	}
	if _, err := Solve(ts); !errors.Is(err, ErrNotConverged) {
		t.Errorf("expected ErrNotConverged, got %v", err)
	}
}

func TestSolveAmbiguousInput(t *testing.T) {
	// identical tiles match everywhere, so propagation grows a plus shape instead of a square
	full := []string{"###", "###", "###"}
	ts, err := NewTileset([]Tile{
		{ID: 1, Rows: full},
		{ID: 2, Rows: full},
		{ID: 3, Rows: full},
		{ID: 4, Rows: full},
	})
	if err != nil {
		t.Fatalf("NewTileset failed: %v", err)
	}
	if _, err := Solve(ts); !errors.Is(err, ErrNotConverged) {
		t.Errorf("expected ErrNotConverged, got %v", err)
	}
}

func TestSolveContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := SolveContext(ctx, loadExample(t)); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestCornerProductAgreesWithAdjacency(t *testing.T) {
	ts := loadExample(t)
	tm, err := Solve(ts)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	fromMap, err := tm.CornerIDProduct()
	if err != nil {
		t.Fatalf("CornerIDProduct failed: %v", err)
	}
	fromGraph, err := AdjacencyCornerProduct(ts)
	if err != nil {
		t.Fatalf("AdjacencyCornerProduct failed: %v", err)
	}
	if fromMap != fromGraph {
		t.Errorf("solver product %d differs from adjacency product %d", fromMap, fromGraph)
	}
}
