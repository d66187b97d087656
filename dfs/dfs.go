package dfs

import "github.com/katalvlaran/vertigo/ident"

// Iterator is a lazy depth-first traversal. Create one with New, then pull
// vertices with Next. Not safe for concurrent use.
type Iterator struct {
	g Graph

	// unchecked holds the start candidates: roots first, then every vertex,
	// each batch ascending. Candidates already colored by an earlier
	// partition are skipped on arrival.
	unchecked []ident.ID
	next      int

	color   map[ident.ID]uint8
	pending []frame
	cyclic  bool
	version uint64
}

// New builds an iterator positioned before the first vertex.
// Complexity of a full drain: O(V + E).
func New(g Graph) *Iterator {
	roots := g.Roots()
	all := g.Vertices()
	unchecked := make([]ident.ID, 0, len(roots)+len(all))
	unchecked = append(unchecked, roots...)
	unchecked = append(unchecked, all...)

	return &Iterator{
		g:         g,
		unchecked: unchecked,
		color:     make(map[ident.ID]uint8, len(all)),
		version:   g.Version(),
	}
}

// Next returns the next vertex in pre-order. The second result is false
// once every vertex has been yielded. Panics if the graph was mutated since
// New.
func (it *Iterator) Next() (ident.ID, bool) {
	if it.g.Version() != it.version {
		panic("dfs: graph mutated during traversal")
	}

	for {
		// 1. Refill the stack from the next unvisited start candidate.
		for len(it.pending) == 0 {
			if it.next >= len(it.unchecked) {
				return ident.ID{}, false
			}
			cand := it.unchecked[it.next]
			it.next++
			if it.color[cand] == 0 {
				it.pending = append(it.pending, frame{id: cand})
			}
		}

		// 2. Pop one frame.
		f := it.pending[len(it.pending)-1]
		it.pending = it.pending[:len(it.pending)-1]

		if f.exit {
			it.color[f.id] = black
			continue
		}
		if it.color[f.id] != 0 {
			// Reached again through a sibling before its entry frame was
			// processed.
			continue
		}

		// 3. Discover: mark gray, schedule the exit frame, then the
		//    successors in reverse so the lightest edge pops first.
		it.color[f.id] = gray
		it.pending = append(it.pending, frame{id: f.id, exit: true})
		succ := it.g.OutNeighbors(f.id)
		for i := len(succ) - 1; i >= 0; i-- {
			switch it.color[succ[i]] {
			case gray:
				// Back edge into the active path.
				it.cyclic = true
			case black:
			default:
				it.pending = append(it.pending, frame{id: succ[i]})
			}
		}

		return f.id, true
	}
}

// IsCyclic drains the remaining traversal and reports whether a cycle was
// found. Calling Next afterward returns no further vertices.
func (it *Iterator) IsCyclic() bool {
	for {
		if _, ok := it.Next(); !ok {
			break
		}
	}

	return it.cyclic
}
