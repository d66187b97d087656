// Package core: adjacency and boundary-set queries.

package core

import "github.com/katalvlaran/vertigo/ident"

// OutNeighbors returns the successors of id, ordered by (edge weight
// ascending, handle ascending). The slice is a copy; callers may keep it.
// Returns nil for an absent or tip vertex.
func (g *Graph[T]) OutNeighbors(id ident.ID) []ident.ID {
	out := g.outbound[id]
	if len(out) == 0 {
		return nil
	}

	return append([]ident.ID(nil), out...)
}

// InNeighbors returns the predecessors of id. The slice is a copy.
// Returns nil for an absent or root vertex.
func (g *Graph[T]) InNeighbors(id ident.ID) []ident.ID {
	in := g.inbound[id]
	if len(in) == 0 {
		return nil
	}

	return append([]ident.ID(nil), in...)
}

// Neighbors returns the successors of id followed by its predecessors.
// A vertex that is both (a 2-cycle partner) appears once, on the successor
// side. The slice is a copy.
func (g *Graph[T]) Neighbors(id ident.ID) []ident.ID {
	out := g.outbound[id]
	res := append([]ident.ID(nil), out...)
	for _, p := range g.inbound[id] {
		if !g.HasEdge(id, p) {
			res = append(res, p)
		}
	}
	if len(res) == 0 {
		return nil
	}

	return res
}

// OutNeighborsCount returns the out-degree of id. Zero for absent vertices.
func (g *Graph[T]) OutNeighborsCount(id ident.ID) int {
	return len(g.outbound[id])
}

// InNeighborsCount returns the in-degree of id. Zero for absent vertices.
func (g *Graph[T]) InNeighborsCount(id ident.ID) int {
	return len(g.inbound[id])
}

// NeighborsCount returns the combined degree of id, counting a 2-cycle
// partner once.
func (g *Graph[T]) NeighborsCount(id ident.ID) int {
	n := len(g.outbound[id])
	for _, p := range g.inbound[id] {
		if !g.HasEdge(id, p) {
			n++
		}
	}

	return n
}

// Roots returns every vertex with in-degree zero, in ascending handle order.
// Complexity: O(R log R).
func (g *Graph[T]) Roots() []ident.ID {
	return sortedIDs(g.roots)
}

// RootsCount returns the number of roots. Complexity: O(1).
func (g *Graph[T]) RootsCount() int {
	return len(g.roots)
}

// Tips returns every vertex with out-degree zero, in ascending handle order.
// Complexity: O(T log T).
func (g *Graph[T]) Tips() []ident.ID {
	return sortedIDs(g.tips)
}

// TipsCount returns the number of tips. Complexity: O(1).
func (g *Graph[T]) TipsCount() int {
	return len(g.tips)
}
