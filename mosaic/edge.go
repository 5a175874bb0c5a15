// Copyright (c) 2026 Harry Huang
package mosaic

import (
	"strings"

	"github.com/forny/tilemosaic/pkg/orient"
)

// Side names one border of a tile.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

// AllSides lists the sides in the order the solver tries them.
var AllSides = [4]Side{Top, Right, Bottom, Left}

var sideDeltas = [4]orient.Point{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

func (s Side) String() string {
	switch s {
	case Top:
		return "Top"
	case Right:
		return "Right"
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// Opposite returns the side facing s across a shared border.
func (s Side) Opposite() Side { return (s + 2) % 4 }

// Delta returns the grid step from a cell to its neighbour on side s.
func (s Side) Delta() orient.Point { return sideDeltas[s] }

// borderPoint returns the untransformed i-th point of the border on side s.
func (s Side) borderPoint(i, width int) orient.Point {
	switch s {
	case Top:
		return orient.Point{X: i, Y: 0}
	case Right:
		return orient.Point{X: width - 1, Y: i}
	case Bottom:
		return orient.Point{X: i, Y: width - 1}
	default:
		return orient.Point{X: 0, Y: i}
	}
}

// Edge is a view of one border of a tile seen under a flop.
type Edge struct {
	tile *Tile
	side Side
	flop orient.Flop
}

func NewEdge(t *Tile, side Side, flop orient.Flop) Edge {
	return Edge{tile: t, side: side, flop: flop}
}

// Len returns the number of pixels along the edge.
func (e Edge) Len() int { return e.tile.Width() }

// At returns the i-th border pixel after applying the edge's flop.
func (e Edge) At(i int) byte {
	w := e.tile.Width()
	p := orient.Transform(e.side.borderPoint(i, w), w, e.flop)
	return e.tile.At(p)
}

func (e Edge) String() string {
	var b strings.Builder
	b.Grow(e.Len())
	for i := 0; i < e.Len(); i++ {
		b.WriteByte(e.At(i))
	}
	return b.String()
}

// EdgesEqual reports whether a and b read the same pixels index by index.
func EdgesEqual(a, b Edge) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

// edgesEqualReversed compares a against b read back to front.
func edgesEqualReversed(a, b Edge) bool {
	n := a.Len()
	if n != b.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		if a.At(i) != b.At(n-1-i) {
			return false
		}
	}
	return true
}
