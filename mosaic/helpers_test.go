package mosaic

import (
	"testing"

	"github.com/forny/tilemosaic/pkg/orient"
)

const (
	exampleCornerProduct = int64(20899048083289)
	exampleRoughness     = 273
)

func loadExample(t *testing.T) *Tileset {
	t.Helper()
	ts, err := LoadTiles("testdata/example.txt")
	if err != nil {
		t.Fatalf("LoadTiles failed: %v", err)
	}
	return ts
}

func solveExample(t *testing.T) *TileMap {
	t.Helper()
	tm, err := Solve(loadExample(t))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	return tm
}

// scenarioTiles is a 2x2 mosaic of 5x5 tiles. Tile 0 is stored upright; the
// others are stored rotated/mirrored so that only one placement fits.
func scenarioTiles(t *testing.T) *Tileset {
	t.Helper()
	ts, err := NewTileset([]Tile{
		{ID: 1009, Rows: []string{"..#..", ".#.#.", "....#", "#.#..", ".#..#"}},
		{ID: 4007, Rows: []string{"#.##.", ".#.#.", "##...", "###.#", "##..#"}},
		{ID: 2003, Rows: []string{".####", "..###", ".####", ".###.", "..#.#"}},
		{ID: 3001, Rows: []string{"#.##.", "#.###", ".####", ".....", ".#..#"}},
	})
	if err != nil {
		t.Fatalf("NewTileset failed: %v", err)
	}
	return ts
}

// singleTile builds a 1x1 mosaic from rows.
func singleTile(t *testing.T, id int64, rows []string) *TileMap {
	t.Helper()
	ts, err := NewTileset([]Tile{{ID: id, Rows: rows}})
	if err != nil {
		t.Fatalf("NewTileset failed: %v", err)
	}
	tm, err := Solve(ts)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	return tm
}

func pt(x, y int) orient.Point { return orient.Point{X: x, Y: y} }
