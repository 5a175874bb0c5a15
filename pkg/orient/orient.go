// Package orient maps points of a square under the 8 symmetries of the square.
//
// Every orientation in the module (tile borders, tile interiors and the
// composed mosaic) is resolved through Transform.
package orient

import "fmt"

// Point is an integer coordinate inside a square of known width.
type Point struct {
	X int
	Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Flop is an orientation code 0-7. The low 2 bits select the rotation
// (0, 90, 180, 270 degrees) and bit 4 mirrors the rotated result.
type Flop int

const (
	Identity  Flop = 0
	Rotate90  Flop = 1
	Rotate180 Flop = 2
	Rotate270 Flop = 3
	Mirror    Flop = 4

	// NumFlops is the order of the dihedral group of the square.
	NumFlops = 8
)

// AllFlops lists every orientation in scan order.
var AllFlops = [NumFlops]Flop{0, 1, 2, 3, 4, 5, 6, 7}

// Valid reports whether f is one of the 8 orientation codes.
func (f Flop) Valid() bool { return f >= 0 && f < NumFlops }

// Rotation returns the number of quarter turns encoded in f.
func (f Flop) Rotation() int { return int(f & 3) }

// Mirrored reports whether f mirrors after rotating.
func (f Flop) Mirrored() bool { return f&Mirror != 0 }

func (f Flop) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Flop(%d)", int(f))
	}
	s := fmt.Sprintf("rot%d", f.Rotation()*90)
	if f.Mirrored() {
		s += "+mirror"
	}
	return s
}

// Transform maps p inside a width x width square under f.
// The rotation is applied first, then the optional mirror.
func Transform(p Point, width int, f Flop) Point {
	if !f.Valid() {
		panic(fmt.Sprintf("orient: invalid flop %d", int(f)))
	}
	var q Point
	switch f.Rotation() {
	case 0:
		q = p
	case 1:
		q = Point{X: width - 1 - p.Y, Y: p.X}
	case 2:
		q = Point{X: width - 1 - p.X, Y: width - 1 - p.Y}
	case 3:
		q = Point{X: p.Y, Y: width - 1 - p.X}
	}
	if f.Mirrored() {
		q = Point{X: width - 1 - q.X, Y: q.Y}
	}
	return q
}
