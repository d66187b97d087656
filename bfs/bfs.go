package bfs

import "github.com/katalvlaran/vertigo/ident"

// Iterator is a lazy breadth-first traversal. Create one with New, then
// pull vertices with Next. Not safe for concurrent use.
type Iterator struct {
	g Graph

	// rootsStack holds unprocessed root partitions, ascending, popped from
	// the back.
	rootsStack []ident.ID
	queue      []ident.ID
	visited    map[ident.ID]struct{}
	version    uint64
}

// New builds an iterator positioned before the first vertex.
// Complexity of a full drain: O(V + E).
func New(g Graph) *Iterator {
	return &Iterator{
		g:          g,
		rootsStack: g.Roots(),
		visited:    make(map[ident.ID]struct{}, g.VertexCount()),
		version:    g.Version(),
	}
}

// Next returns the next vertex in level order. The second result is false
// once every reachable vertex has been yielded. Panics if the graph was
// mutated since New.
func (it *Iterator) Next() (ident.ID, bool) {
	if it.g.Version() != it.version {
		panic("bfs: graph mutated during traversal")
	}

	for {
		// 1. Drain the current partition's queue.
		if len(it.queue) > 0 {
			u := it.queue[0]
			it.queue = it.queue[1:]
			for _, s := range it.g.OutNeighbors(u) {
				if _, seen := it.visited[s]; seen {
					continue
				}
				it.visited[s] = struct{}{}
				it.queue = append(it.queue, s)
			}

			return u, true
		}

		// 2. Start the next partition from the top of the root stack.
		if len(it.rootsStack) == 0 {
			return ident.ID{}, false
		}
		r := it.rootsStack[len(it.rootsStack)-1]
		it.rootsStack = it.rootsStack[:len(it.rootsStack)-1]
		if _, seen := it.visited[r]; seen {
			continue
		}
		it.visited[r] = struct{}{}
		it.queue = append(it.queue, r)
	}
}
