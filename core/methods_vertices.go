// Package core: vertex-table operations.
//
// AddVertex, payload access, cascading removal, predicate retention, and the
// sorted vertex/value listings.

package core

import (
	"sort"

	"github.com/katalvlaran/vertigo/ident"
)

// AddVertex inserts value as a new vertex and returns its fresh handle.
// The vertex starts with no edges, so it joins both the root set and the
// tip set. Never fails. Complexity: O(1) amortized.
func (g *Graph[T]) AddVertex(value T) ident.ID {
	id := g.gen.Next()

	g.vertices[id] = &value
	g.roots[id] = struct{}{}
	g.tips[id] = struct{}{}
	// Default label is derived from the handle, eagerly, so Label stays a
	// pure read.
	g.labels[id] = defaultLabel(id)
	g.version++

	return id
}

// HasVertex reports whether id names a vertex in the store. Complexity: O(1).
func (g *Graph[T]) HasVertex(id ident.ID) bool {
	_, ok := g.vertices[id]

	return ok
}

// Fetch returns a copy of the payload stored under id.
// The second result is false if id names no vertex. Complexity: O(1).
func (g *Graph[T]) Fetch(id ident.ID) (T, bool) {
	if p, ok := g.vertices[id]; ok {
		return *p, true
	}
	var zero T

	return zero, false
}

// FetchMut returns a pointer to the payload stored under id, for in-place
// mutation. The pointer stays valid until the vertex is removed. Payload
// edits do not advance Version — they cannot affect topology.
func (g *Graph[T]) FetchMut(id ident.ID) (*T, bool) {
	p, ok := g.vertices[id]

	return p, ok
}

// Remove deletes the vertex and every incident edge, then re-evaluates root
// and tip membership of each former neighbor. Idempotent: a no-op when id
// is absent. Complexity: O(deg(v) · sort of affected outbound lists).
func (g *Graph[T]) Remove(id ident.ID) {
	if !g.HasVertex(id) {
		return
	}
	delete(g.vertices, id)

	// Snapshot the adjacency slices: removeEdge rewrites them as it goes.
	preds := append([]ident.ID(nil), g.inbound[id]...)
	for _, p := range preds {
		g.removeEdge(p, id)
	}
	succs := append([]ident.ID(nil), g.outbound[id]...)
	for _, s := range succs {
		g.removeEdge(id, s)
	}

	delete(g.roots, id)
	delete(g.tips, id)
	delete(g.labels, id)
	g.version++
}

// Retain removes every vertex whose payload fails pred, via repeated Remove.
// Complexity: O(V) predicate calls plus the cost of each removal.
func (g *Graph[T]) Retain(pred func(T) bool) {
	var doomed []ident.ID
	for _, id := range g.Vertices() {
		if v, ok := g.Fetch(id); ok && !pred(v) {
			doomed = append(doomed, id)
		}
	}
	for _, id := range doomed {
		g.Remove(id)
	}
}

// VertexCount returns the number of stored vertices. Complexity: O(1).
func (g *Graph[T]) VertexCount() int {
	return len(g.vertices)
}

// Vertices returns all vertex handles in ascending handle order.
// Complexity: O(V log V).
func (g *Graph[T]) Vertices() []ident.ID {
	return sortedIDs(g.vertices)
}

// Values returns every stored payload, ordered by ascending vertex handle.
// Complexity: O(V log V).
func (g *Graph[T]) Values() []T {
	ids := g.Vertices()
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, *g.vertices[id])
	}

	return out
}

// sortedIDs returns the keys of m in ascending handle order.
func sortedIDs[V any](m map[ident.ID]V) []ident.ID {
	ids := make([]ident.ID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })

	return ids
}
