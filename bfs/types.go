package bfs

import "github.com/katalvlaran/vertigo/ident"

// Graph is the read-only view the traversal needs. *core.Graph[T]
// satisfies it for any T.
type Graph interface {
	// Roots returns every vertex with in-degree zero, ascending.
	Roots() []ident.ID
	// OutNeighbors returns the successors of a vertex, lowest edge weight
	// first, handle order breaking ties.
	OutNeighbors(ident.ID) []ident.ID
	// VertexCount returns the number of vertices.
	VertexCount() int
	// Version returns the mutation counter used to detect concurrent
	// modification.
	Version() uint64
}
