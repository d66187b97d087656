// Package core: central types, sentinel errors, and the Graph constructor.
//
// This file declares Graph, Edge, Option, the sentinel errors, and NewGraph.
// Method implementations live in methods_vertices.go, methods_edges.go,
// methods_adjacent.go, methods_clone.go, and labels.go.

package core

import (
	"errors"

	"github.com/katalvlaran/vertigo/ident"
)

// Sentinel errors for store operations. Fallible operations return exactly
// these (possibly wrapped with context); none of them panics.
var (
	// ErrNoSuchVertex indicates an operation referenced a non-existent vertex.
	ErrNoSuchVertex = errors.New("core: no such vertex")

	// ErrNoSuchEdge indicates an operation referenced a non-existent edge.
	ErrNoSuchEdge = errors.New("core: no such edge")

	// ErrCannotAddEdge indicates an edge insertion failed. It always wraps
	// the specific cause (ErrNoSuchVertex or ErrCycle), so
	// errors.Is matches both the umbrella and the cause.
	ErrCannotAddEdge = errors.New("core: cannot add edge")

	// ErrInvalidWeight indicates a weight outside the closed interval [-1, 1].
	ErrInvalidWeight = errors.New("core: weight outside [-1, 1]")

	// ErrCycle indicates a cycle-checked insertion was rejected because the
	// edge would create a cycle. The store is observably unchanged.
	ErrCycle = errors.New("core: operation would create a cycle")
)

// Weight bounds for every edge in the store.
const (
	MinWeight = -1.0
	MaxWeight = 1.0
)

// Edge is the read-surface view of one stored edge: the ordered endpoint
// pair plus its weight. Edge identity is the (From, To) pair.
type Edge struct {
	// From is the outbound endpoint.
	From ident.ID

	// To is the inbound endpoint.
	To ident.ID

	// Weight is the edge weight in [-1, 1]; 0 when never set explicitly.
	Weight float64
}

// edgeKey is the edge-table key: the ordered endpoint pair.
type edgeKey struct {
	from ident.ID
	to   ident.ID
}

// Graph is the mutable directed-graph store.
//
// The zero Graph is not usable; construct with NewGraph. All operations are
// synchronous, perform no I/O, and hold no locks; see the package comment
// for the concurrency contract.
type Graph[T any] struct {
	// gen allocates vertex handles. Owned by the store unless injected via
	// WithGenerator.
	gen *ident.Generator

	// capHint pre-sizes the tables; set by WithCapacity.
	capHint int

	// vertices maps handle → payload.
	vertices map[ident.ID]*T

	// edges maps the ordered endpoint pair → weight.
	edges map[edgeKey]float64

	// roots holds every vertex with in-degree zero.
	roots map[ident.ID]struct{}

	// tips holds every vertex with out-degree zero.
	tips map[ident.ID]struct{}

	// inbound maps vertex → predecessors in insertion order.
	inbound map[ident.ID][]ident.ID

	// outbound maps vertex → successors sorted by (weight, successor handle).
	outbound map[ident.ID][]ident.ID

	// labels maps vertex → display label; filled eagerly at AddVertex so
	// label reads never mutate the store.
	labels map[ident.ID]string

	// version counts mutations. Live iterators snapshot it and panic if it
	// moves under them.
	version uint64
}

// Option configures a Graph before its tables are allocated.
type Option[T any] func(*Graph[T])

// WithGenerator makes the store allocate vertex handles from gen instead of
// a private generator. Injecting a generator started at a known point makes
// handle sequences reproducible in tests. Sharing one generator between
// stores is allowed; handles stay unique across all of them.
func WithGenerator[T any](gen *ident.Generator) Option[T] {
	return func(g *Graph[T]) {
		if gen != nil {
			g.gen = gen
		}
	}
}

// WithCapacity pre-sizes the internal tables for roughly n vertices.
// Purely an allocation hint; negative values are ignored.
func WithCapacity[T any](n int) Option[T] {
	return func(g *Graph[T]) {
		if n > 0 {
			g.capHint = n
		}
	}
}

// NewGraph creates an empty store. Complexity: O(1).
func NewGraph[T any](opts ...Option[T]) *Graph[T] {
	g := &Graph[T]{gen: ident.NewGenerator()}
	for _, opt := range opts {
		opt(g)
	}

	g.vertices = make(map[ident.ID]*T, g.capHint)
	g.edges = make(map[edgeKey]float64, g.capHint)
	g.roots = make(map[ident.ID]struct{}, g.capHint)
	g.tips = make(map[ident.ID]struct{}, g.capHint)
	g.inbound = make(map[ident.ID][]ident.ID, g.capHint)
	g.outbound = make(map[ident.ID][]ident.ID, g.capHint)
	g.labels = make(map[ident.ID]string, g.capHint)

	return g
}

// Version returns the mutation counter. It advances on every successful
// mutating operation (topology, weights, and labels alike) and is how live
// iterators detect that their read-only borrow of the store was violated.
// Payload edits through FetchMut are invisible to it — they cannot change
// traversal results.
func (g *Graph[T]) Version() uint64 {
	return g.version
}
