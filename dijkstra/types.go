package dijkstra

import (
	"errors"

	"github.com/katalvlaran/vertigo/ident"
)

var (
	// ErrVertexNotFound is returned when the requested source vertex does
	// not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found")
	// ErrNegativeWeight is returned when the graph carries an edge with a
	// negative weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight")
)

// Graph is the read-only view the computation needs. *core.Graph[T]
// satisfies it for any T.
type Graph interface {
	// Vertices returns every vertex handle, ascending.
	Vertices() []ident.ID
	// OutNeighbors returns the successors of a vertex, lowest edge weight
	// first, handle order breaking ties.
	OutNeighbors(ident.ID) []ident.ID
	// Weight returns the weight of an edge, false when absent.
	Weight(a, b ident.ID) (float64, bool)
	// HasVertex reports whether a handle names a vertex.
	HasVertex(ident.ID) bool
	// VertexCount returns the number of vertices.
	VertexCount() int
}

// pqItem is one candidate in the relaxation queue.
type pqItem struct {
	id   ident.ID
	dist float64
}

// nodePQ is a min-heap of candidates ordered by tentative distance, vertex
// handle breaking ties. Used with container/heap.
type nodePQ []pqItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id.Less(pq[j].id)
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(pqItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
