// Copyright (c) 2026 Harry Huang
package mosaic

import (
	"context"
	"errors"
	"fmt"

	"github.com/forny/tilemosaic/pkg/orient"
	"golang.org/x/sync/errgroup"
)

// Motif is a small pattern whose '#' cells must all be filled to match.
type Motif struct {
	cells  []orient.Point
	width  int
	height int
}

// SeaMonster is the motif searched for in composed images.
var SeaMonster = mustMotif(SEA_MONSTER_ROWS...)

func newMotif(rows ...string) (*Motif, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New("motif is empty")
	}
	m := &Motif{
		width:  len(rows[0]),
		height: len(rows),
	}
	for y, row := range rows {
		if len(row) != m.width {
			return nil, fmt.Errorf("motif row %d has width %d, expected %d", y, len(row), m.width)
		}
		for x := 0; x < len(row); x++ {
			if row[x] == PIXEL_FILLED {
				m.cells = append(m.cells, orient.Point{X: x, Y: y})
			}
		}
	}
	return m, nil
}

func mustMotif(rows ...string) *Motif {
	m, err := newMotif(rows...)
	if err != nil {
		panic(err)
	}
	return m
}

// Pixels returns the number of '#' cells in the motif.
func (m *Motif) Pixels() int { return len(m.cells) }

func (m *Motif) Width() int  { return m.width }
func (m *Motif) Height() int { return m.height }

// Cells returns the motif's '#' offsets relative to its top-left corner.
func (m *Motif) Cells() []orient.Point { return m.cells }

// Hit is one motif occurrence: its top-left corner in the image viewed under Flop.
type Hit struct {
	Flop orient.Flop
	X    int
	Y    int
}

// ScanResult summarises a motif search over a composed image.
type ScanResult struct {
	Filled      int                  // '#' pixels in the composed image
	Matches     int                  // occurrences over all orientations
	PerFlop     [orient.NumFlops]int // occurrences per orientation
	Hits        []Hit                // ordered by flop, then row, then column
	MotifPixels int                  // '#' cells in the motif
	Roughness   int                  // Filled minus pixels covered by occurrences

	motif *Motif
}

// BestFlop returns the orientation with the most occurrences, preferring the lowest code.
func (r *ScanResult) BestFlop() orient.Flop {
	best := orient.Identity
	for _, f := range orient.AllFlops {
		if r.PerFlop[f] > r.PerFlop[best] {
			best = f
		}
	}
	return best
}

// Covered returns the image pixels, viewed under f, that belong to an occurrence found at f.
func (r *ScanResult) Covered(f orient.Flop) map[orient.Point]bool {
	covered := make(map[orient.Point]bool)
	if r.motif == nil {
		return covered
	}
	for _, h := range r.Hits {
		if h.Flop != f {
			continue
		}
		for _, c := range r.motif.cells {
			covered[orient.Point{X: h.X + c.X, Y: h.Y + c.Y}] = true
		}
	}
	return covered
}

// Score returns the roughness of the composed image: filled pixels not covered by the motif.
func Score(tm *TileMap, m *Motif) (int, error) {
	r, err := Scan(tm, m)
	if err != nil {
		return 0, err
	}
	return r.Roughness, nil
}

// Scan counts filled pixels and motif occurrences under all 8 orientations.
func Scan(tm *TileMap, m *Motif) (*ScanResult, error) {
	return ScanContext(context.Background(), tm, m)
}

// ScanContext is Scan with cancellation. Orientations are scanned concurrently;
// each reads the finalized map and writes only its own slot.
// Occurrences are assumed not to overlap.
func ScanContext(ctx context.Context, tm *TileMap, m *Motif) (*ScanResult, error) {
	if !tm.Finalized() {
		return nil, ErrNotFinalized
	}

	width := tm.ImageWidth()
	filled := 0
	for y := 0; y < width; y++ {
		for x := 0; x < width; x++ {
			if tm.Pixel(x, y, orient.Identity) == PIXEL_FILLED {
				filled++
			}
		}
	}

	var perFlop [orient.NumFlops][]Hit
	g, gctx := errgroup.WithContext(ctx)
	for _, f := range orient.AllFlops {
		f := f
		g.Go(func() error {
			hits, err := scanFlop(gctx, tm, m, f)
			perFlop[f] = hits
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r := &ScanResult{
		Filled:      filled,
		MotifPixels: m.Pixels(),
		motif:       m,
	}
	for _, f := range orient.AllFlops {
		r.PerFlop[f] = len(perFlop[f])
		r.Matches += len(perFlop[f])
		r.Hits = append(r.Hits, perFlop[f]...)
	}
	r.Roughness = r.Filled - r.Matches*r.MotifPixels

	modLog().Info().
		Int("filled", r.Filled).
		Int("matches", r.Matches).
		Stringer("bestFlop", r.BestFlop()).
		Int("roughness", r.Roughness).
		Msg("Motif scan finished")
	return r, nil
}

func scanFlop(ctx context.Context, tm *TileMap, m *Motif, f orient.Flop) ([]Hit, error) {
	width := tm.ImageWidth()
	var hits []Hit
	for y := 0; y+m.height <= width; y++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for x := 0; x+m.width <= width; x++ {
			if matchAt(tm, m, f, x, y) {
				hits = append(hits, Hit{Flop: f, X: x, Y: y})
			}
		}
	}
	return hits, nil
}

func matchAt(tm *TileMap, m *Motif, f orient.Flop, x, y int) bool {
	for _, c := range m.cells {
		if tm.Pixel(x+c.X, y+c.Y, f) != PIXEL_FILLED {
			return false
		}
	}
	return true
}
