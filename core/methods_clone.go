// Package core: whole-graph operations — deep cloning, reset, cycle
// detection, and the generic Fold/Map transforms.

package core

import (
	"github.com/katalvlaran/vertigo/dfs"
	"github.com/katalvlaran/vertigo/ident"
)

// Clone returns a deep copy of the graph. Payloads are copied by value, the
// handle generator continues the same sequence, and the version counter
// carries over. Subsequent mutations of either graph leave the other
// untouched. Complexity: O(V + E).
func (g *Graph[T]) Clone() *Graph[T] {
	c := &Graph[T]{
		gen:      g.gen.Clone(),
		capHint:  g.capHint,
		vertices: make(map[ident.ID]*T, len(g.vertices)),
		edges:    make(map[edgeKey]float64, len(g.edges)),
		roots:    make(map[ident.ID]struct{}, len(g.roots)),
		tips:     make(map[ident.ID]struct{}, len(g.tips)),
		inbound:  make(map[ident.ID][]ident.ID, len(g.inbound)),
		outbound: make(map[ident.ID][]ident.ID, len(g.outbound)),
		labels:   make(map[ident.ID]string, len(g.labels)),
		version:  g.version,
	}
	for id, p := range g.vertices {
		v := *p
		c.vertices[id] = &v
	}
	for k, w := range g.edges {
		c.edges[k] = w
	}
	for id := range g.roots {
		c.roots[id] = struct{}{}
	}
	for id := range g.tips {
		c.tips[id] = struct{}{}
	}
	for id, in := range g.inbound {
		c.inbound[id] = append([]ident.ID(nil), in...)
	}
	for id, out := range g.outbound {
		c.outbound[id] = append([]ident.ID(nil), out...)
	}
	for id, l := range g.labels {
		c.labels[id] = l
	}

	return c
}

// Clear removes every vertex and edge. The handle generator keeps its
// position, so handles are never reused across a Clear.
func (g *Graph[T]) Clear() {
	g.vertices = make(map[ident.ID]*T, g.capHint)
	g.edges = make(map[edgeKey]float64, g.capHint)
	g.roots = make(map[ident.ID]struct{}, g.capHint)
	g.tips = make(map[ident.ID]struct{}, g.capHint)
	g.inbound = make(map[ident.ID][]ident.ID, g.capHint)
	g.outbound = make(map[ident.ID][]ident.ID, g.capHint)
	g.labels = make(map[ident.ID]string, g.capHint)
	g.version++
}

// IsCyclic reports whether the graph contains at least one directed cycle.
// Complexity: O(V + E).
func (g *Graph[T]) IsCyclic() bool {
	return dfs.New(g).IsCyclic()
}

// Fold reduces every payload into a single accumulator, visiting vertices
// in depth-first order. Complexity: O(V + E).
func Fold[T, A any](g *Graph[T], initial A, fn func(T, A) A) A {
	acc := initial
	it := dfs.New(g)
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		acc = fn(*g.vertices[id], acc)
	}

	return acc
}

// Map builds a new graph with the same topology, weights, and labels, whose
// payloads are fn applied to the source payloads. Handles are preserved, so
// lookups valid on g are valid on the result. Complexity: O(V + E).
func Map[T, R any](g *Graph[T], fn func(T) R) *Graph[R] {
	c := &Graph[R]{
		gen:      g.gen.Clone(),
		capHint:  g.capHint,
		vertices: make(map[ident.ID]*R, len(g.vertices)),
		edges:    make(map[edgeKey]float64, len(g.edges)),
		roots:    make(map[ident.ID]struct{}, len(g.roots)),
		tips:     make(map[ident.ID]struct{}, len(g.tips)),
		inbound:  make(map[ident.ID][]ident.ID, len(g.inbound)),
		outbound: make(map[ident.ID][]ident.ID, len(g.outbound)),
		labels:   make(map[ident.ID]string, len(g.labels)),
		version:  g.version,
	}
	for id, p := range g.vertices {
		v := fn(*p)
		c.vertices[id] = &v
	}
	for k, w := range g.edges {
		c.edges[k] = w
	}
	for id := range g.roots {
		c.roots[id] = struct{}{}
	}
	for id := range g.tips {
		c.tips[id] = struct{}{}
	}
	for id, in := range g.inbound {
		c.inbound[id] = append([]ident.ID(nil), in...)
	}
	for id, out := range g.outbound {
		c.outbound[id] = append([]ident.ID(nil), out...)
	}
	for id, l := range g.labels {
		c.labels[id] = l
	}

	return c
}
