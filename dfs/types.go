package dfs

import "github.com/katalvlaran/vertigo/ident"

// Graph is the read-only view the traversal needs. *core.Graph[T]
// satisfies it for any T.
type Graph interface {
	// Roots returns every vertex with in-degree zero, ascending.
	Roots() []ident.ID
	// Vertices returns every vertex handle, ascending.
	Vertices() []ident.ID
	// OutNeighbors returns the successors of a vertex, lowest edge weight
	// first, handle order breaking ties.
	OutNeighbors(ident.ID) []ident.ID
	// VertexCount returns the number of vertices.
	VertexCount() int
	// Version returns the mutation counter used to detect concurrent
	// modification.
	Version() uint64
}

// vertex colors
const (
	gray  uint8 = iota + 1 // discovered, exploration in progress
	black                  // exploration finished
)

// frame is one entry of the explicit traversal stack. exit frames mark the
// end of a vertex's exploration and turn it black.
type frame struct {
	id   ident.ID
	exit bool
}
