package topo

import "github.com/katalvlaran/vertigo/ident"

// Iterator is a lazy topological ordering. Create one with New, then pull
// vertices with Next. Not safe for concurrent use.
type Iterator struct {
	g Graph

	// ready holds vertices whose every predecessor has been emitted,
	// popped from the back.
	ready []ident.ID
	// remaining tracks how many predecessors of a vertex are still
	// unemitted, populated the first time the vertex is reached.
	remaining map[ident.ID]int
	emitted   int
	version   uint64
}

// New builds an iterator positioned before the first vertex.
// Complexity of a full drain: O(V + E).
func New(g Graph) *Iterator {
	return &Iterator{
		g:         g,
		ready:     g.Roots(),
		remaining: make(map[ident.ID]int, g.VertexCount()),
		version:   g.Version(),
	}
}

// Next returns the next vertex of the ordering. The second result is false
// once every vertex has been yielded. Panics with
// "topo: graph contains cycle(s)" if the graph is cyclic, and panics if the
// graph was mutated since New.
func (it *Iterator) Next() (ident.ID, bool) {
	if it.g.Version() != it.version {
		panic("topo: graph mutated during traversal")
	}

	if len(it.ready) == 0 {
		if it.emitted < it.g.VertexCount() {
			panic("topo: graph contains cycle(s)")
		}

		return ident.ID{}, false
	}

	u := it.ready[len(it.ready)-1]
	it.ready = it.ready[:len(it.ready)-1]
	it.emitted++

	for _, s := range it.g.OutNeighbors(u) {
		c, seen := it.remaining[s]
		if !seen {
			c = it.g.InNeighborsCount(s)
		}
		c--
		it.remaining[s] = c
		if c == 0 {
			it.ready = append(it.ready, s)
		}
	}

	return u, true
}

// IsCyclic runs the ordering to exhaustion without panicking and reports
// whether the graph contains a cycle. Complexity: O(V + E).
func IsCyclic(g Graph) bool {
	it := New(g)
	for len(it.ready) > 0 {
		u := it.ready[len(it.ready)-1]
		it.ready = it.ready[:len(it.ready)-1]
		it.emitted++
		for _, s := range it.g.OutNeighbors(u) {
			c, seen := it.remaining[s]
			if !seen {
				c = it.g.InNeighborsCount(s)
			}
			c--
			it.remaining[s] = c
			if c == 0 {
				it.ready = append(it.ready, s)
			}
		}
	}

	return it.emitted != g.VertexCount()
}
