// Package core: edge-table operations.
//
// Unchecked and cycle-checked insertion, weight access, removal, and the
// sorted edge listing. Outbound adjacency is kept ordered by (weight, handle)
// at all times so traversal engines can rely on it directly.

package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/vertigo/dfs"
	"github.com/katalvlaran/vertigo/ident"
)

// AddEdge inserts an unweighted (weight 0) edge a → b.
// A no-op returning nil when the edge already exists.
// Returns ErrCannotAddEdge wrapping ErrNoSuchVertex when either endpoint is
// absent. Complexity: O(deg(a) log deg(a)) for the outbound resort.
func (g *Graph[T]) AddEdge(a, b ident.ID) error {
	if g.HasEdge(a, b) {
		return nil
	}

	return g.doAddEdge(a, b, 0)
}

// AddEdgeWithWeight inserts edge a → b carrying the given weight.
// A no-op returning nil when the edge already exists, even if the supplied
// weight differs or is out of range. Returns ErrInvalidWeight when weight
// lies outside [MinWeight, MaxWeight].
func (g *Graph[T]) AddEdgeWithWeight(a, b ident.ID, weight float64) error {
	if g.HasEdge(a, b) {
		return nil
	}
	if weight < MinWeight || weight > MaxWeight {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, weight)
	}

	return g.doAddEdge(a, b, weight)
}

// AddEdgeCheckCycle inserts edge a → b only if doing so keeps the graph
// acyclic. The candidate edge is applied to a deep clone first; only when
// the probe stays acyclic is the live store touched, so a rejected call
// leaves the graph byte-identical to its prior state.
// Returns ErrCannotAddEdge wrapping ErrCycle on rejection.
// Complexity: O(V + E) for the probe.
func (g *Graph[T]) AddEdgeCheckCycle(a, b ident.ID) error {
	if g.HasEdge(a, b) {
		return nil
	}
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return fmt.Errorf("%w: %w", ErrCannotAddEdge, ErrNoSuchVertex)
	}

	trial := g.Clone()
	if err := trial.doAddEdge(a, b, 0); err != nil {
		return err
	}
	if dfs.New(trial).IsCyclic() {
		return fmt.Errorf("%w: %w", ErrCannotAddEdge, ErrCycle)
	}

	return g.doAddEdge(a, b, 0)
}

// doAddEdge commits edge a → b with the given weight. Callers have already
// ruled out duplicates and validated the weight.
func (g *Graph[T]) doAddEdge(a, b ident.ID, weight float64) error {
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return fmt.Errorf("%w: %w", ErrCannotAddEdge, ErrNoSuchVertex)
	}

	g.edges[edgeKey{a, b}] = weight
	g.outbound[a] = append(g.outbound[a], b)
	g.sortOutbound(a)
	g.inbound[b] = append(g.inbound[b], a)

	// b now has a predecessor; a now has a successor.
	delete(g.roots, b)
	delete(g.tips, a)
	g.version++

	return nil
}

// sortOutbound restores the (weight ascending, handle ascending) order of
// a's outbound adjacency list.
func (g *Graph[T]) sortOutbound(a ident.ID) {
	out := g.outbound[a]
	sort.Slice(out, func(i, j int) bool {
		wi := g.edges[edgeKey{a, out[i]}]
		wj := g.edges[edgeKey{a, out[j]}]
		if wi != wj {
			return wi < wj
		}

		return out[i].Less(out[j])
	})
}

// HasEdge reports whether edge a → b exists. Complexity: O(1).
func (g *Graph[T]) HasEdge(a, b ident.ID) bool {
	_, ok := g.edges[edgeKey{a, b}]

	return ok
}

// Weight returns the weight of edge a → b.
// The second result is false when the edge is absent.
func (g *Graph[T]) Weight(a, b ident.ID) (float64, bool) {
	w, ok := g.edges[edgeKey{a, b}]

	return w, ok
}

// SetWeight replaces the weight of the existing edge a → b.
// Returns ErrNoSuchEdge when the edge is absent and ErrInvalidWeight when
// weight lies outside [MinWeight, MaxWeight]; the store is untouched on
// either failure.
func (g *Graph[T]) SetWeight(a, b ident.ID, weight float64) error {
	if !g.HasEdge(a, b) {
		return ErrNoSuchEdge
	}
	if weight < MinWeight || weight > MaxWeight {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, weight)
	}

	g.edges[edgeKey{a, b}] = weight
	g.sortOutbound(a)
	g.version++

	return nil
}

// RemoveEdge deletes edge a → b and re-evaluates root/tip membership of both
// endpoints. Idempotent: a no-op when the edge is absent.
func (g *Graph[T]) RemoveEdge(a, b ident.ID) {
	if !g.HasEdge(a, b) {
		return
	}
	g.removeEdge(a, b)
	g.version++
}

// removeEdge deletes a known-present edge without advancing the version.
// Shared by RemoveEdge and vertex removal, which batch the bump.
func (g *Graph[T]) removeEdge(a, b ident.ID) {
	delete(g.edges, edgeKey{a, b})
	g.outbound[a] = withoutID(g.outbound[a], b)
	if len(g.outbound[a]) == 0 {
		delete(g.outbound, a)
	}
	g.inbound[b] = withoutID(g.inbound[b], a)
	if len(g.inbound[b]) == 0 {
		delete(g.inbound, b)
	}

	// A vertex mid-removal is already gone from the vertex table and must
	// not re-enter the root or tip sets.
	if g.HasVertex(b) && len(g.inbound[b]) == 0 {
		g.roots[b] = struct{}{}
	}
	if g.HasVertex(a) && len(g.outbound[a]) == 0 {
		g.tips[a] = struct{}{}
	}
}

// withoutID returns s with the first occurrence of id removed, preserving
// the order of the remaining elements.
func withoutID(s []ident.ID, id ident.ID) []ident.ID {
	for i, v := range s {
		if v == id {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}

// EdgeCount returns the number of stored edges. Complexity: O(1).
func (g *Graph[T]) EdgeCount() int {
	return len(g.edges)
}

// Edges returns every stored edge ordered by (From, To) ascending.
// Complexity: O(E log E).
func (g *Graph[T]) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for k, w := range g.edges {
		out = append(out, Edge{From: k.from, To: k.to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From.Less(out[j].From)
		}

		return out[i].To.Less(out[j].To)
	})

	return out
}
