// Package core: vertex labels.
//
// Every vertex carries a human-readable label, assigned at insertion from
// its handle and replaceable afterward. Labels are metadata only — no
// operation keys on them.

package core

import "github.com/katalvlaran/vertigo/ident"

// defaultLabel derives the initial label of a freshly inserted vertex.
func defaultLabel(id ident.ID) string {
	return "N_" + id.String()
}

// Label returns the label of id. The second result is false when id names
// no vertex.
func (g *Graph[T]) Label(id ident.ID) (string, bool) {
	l, ok := g.labels[id]

	return l, ok
}

// LabelVertex replaces the label of id and returns the previous one.
// Returns ErrNoSuchVertex when id names no vertex.
func (g *Graph[T]) LabelVertex(id ident.ID, label string) (string, error) {
	old, ok := g.labels[id]
	if !ok {
		return "", ErrNoSuchVertex
	}
	g.labels[id] = label
	g.version++

	return old, nil
}

// MapLabels rewrites every label through fn, visiting vertices in ascending
// handle order. Complexity: O(V log V).
func (g *Graph[T]) MapLabels(fn func(id ident.ID, label string) string) {
	for _, id := range g.Vertices() {
		g.labels[id] = fn(id, g.labels[id])
	}
	g.version++
}
