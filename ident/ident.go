// Package ident provides opaque vertex handles and the generator that
// allocates them.
//
// An ID carries no payload and no back-reference to its vertex; equality is
// the only operation the rest of the library relies on. IDs are comparable
// (usable as map keys) and totally ordered; the ordering has no semantic
// meaning and exists solely so that traversals can break ties
// deterministically.
//
// A Generator is an explicit object rather than process-global state: every
// Graph owns one (or receives one at construction), so two stores never
// contend for a shared counter and tests can replay an exact handle sequence
// by injecting a generator started at a known point.
package ident

import (
	"fmt"
	"sync/atomic"
)

// ID is an opaque handle naming a vertex. The zero value names no vertex.
type ID struct {
	v uint64
}

// Less reports whether id orders before other. Used only as a deterministic
// tie-break; no semantic ranking is implied.
func (id ID) Less(other ID) bool { return id.v < other.v }

// Compare returns -1, 0 or +1 per the total order on IDs.
func (id ID) Compare(other ID) int {
	switch {
	case id.v < other.v:
		return -1
	case id.v > other.v:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether id is the zero handle, which no generator ever
// allocates.
func (id ID) IsZero() bool { return id.v == 0 }

// String renders the handle as fixed-width hex. The representation is stable
// across processes for the same generator sequence, which makes it suitable
// as a seed for display labels.
func (id ID) String() string { return fmt.Sprintf("%016x", id.v) }

// Generator allocates process-unique IDs from a monotonic counter.
// The zero Generator is ready to use; the first allocated ID is never the
// zero ID.
type Generator struct {
	last atomic.Uint64
}

// NewGenerator returns a Generator whose first ID follows the zero handle.
func NewGenerator() *Generator { return &Generator{} }

// Next allocates a fresh ID. Every call returns a distinct handle for the
// lifetime of the generator.
func (g *Generator) Next() ID { return ID{v: g.last.Add(1)} }

// Clone returns a new Generator that continues the same sequence, so IDs it
// allocates never collide with IDs the receiver has already handed out.
// Used when deep-copying a graph.
func (g *Generator) Clone() *Generator {
	out := &Generator{}
	out.last.Store(g.last.Load())

	return out
}
