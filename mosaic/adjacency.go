// Copyright (c) 2026 Harry Huang
package mosaic

import (
	"errors"
	"fmt"

	"github.com/forny/tilemosaic/pkg/orient"
	"gonum.org/v1/gonum/graph/simple"
)

var ErrCornerCount = errors.New("adjacency graph does not have exactly 4 corners")

// AdjacencyGraph links every pair of tiles that share a border in any orientation.
// Node IDs are tile indices.
func AdjacencyGraph(ts *Tileset) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < ts.Len(); i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < ts.Len(); i++ {
		for j := i + 1; j < ts.Len(); j++ {
			if sharesBorder(ts.Tile(i), ts.Tile(j)) {
				g.SetEdge(g.NewEdge(simple.Node(i), simple.Node(j)))
			}
		}
	}
	return g
}

// AdjacencyCorners returns the indices of tiles with exactly two neighbours, ascending.
func AdjacencyCorners(ts *Tileset) []int {
	g := AdjacencyGraph(ts)
	var corners []int
	for i := 0; i < ts.Len(); i++ {
		if g.From(int64(i)).Len() == 2 {
			corners = append(corners, i)
		}
	}
	return corners
}

// AdjacencyCornerProduct multiplies the IDs of the corner tiles found by border sharing alone,
// without placing anything. It cross-checks TileMap.CornerIDProduct.
func AdjacencyCornerProduct(ts *Tileset) (int64, error) {
	corners := AdjacencyCorners(ts)
	if len(corners) != 4 {
		return 0, fmt.Errorf("%w: found %d", ErrCornerCount, len(corners))
	}
	product := int64(1)
	for _, i := range corners {
		product *= ts.Tile(i).ID
	}
	return product, nil
}

func sharesBorder(a, b *Tile) bool {
	for _, sa := range AllSides {
		ea := NewEdge(a, sa, orient.Identity)
		for _, sb := range AllSides {
			eb := NewEdge(b, sb, orient.Identity)
			if EdgesEqual(ea, eb) || edgesEqualReversed(ea, eb) {
				return true
			}
		}
	}
	return false
}
