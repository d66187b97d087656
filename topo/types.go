package topo

import "github.com/katalvlaran/vertigo/ident"

// Graph is the read-only view the ordering needs. *core.Graph[T]
// satisfies it for any T.
type Graph interface {
	// Roots returns every vertex with in-degree zero, ascending.
	Roots() []ident.ID
	// OutNeighbors returns the successors of a vertex, lowest edge weight
	// first, handle order breaking ties.
	OutNeighbors(ident.ID) []ident.ID
	// InNeighborsCount returns the in-degree of a vertex.
	InNeighborsCount(ident.ID) int
	// VertexCount returns the number of vertices.
	VertexCount() int
	// Version returns the mutation counter used to detect concurrent
	// modification.
	Version() uint64
}
