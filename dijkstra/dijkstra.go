package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/vertigo/ident"
)

// Solver holds the shortest-path tables for one source vertex.
// Create one with New; re-root with SetSource. Not safe for concurrent use.
type Solver struct {
	g      Graph
	source ident.ID
	dist   map[ident.ID]float64
	prev   map[ident.ID]ident.ID
}

// New validates source and the edge weights, then computes the tables.
// Returns ErrVertexNotFound when source is absent and ErrNegativeWeight
// when any edge weight is negative. Complexity: O((V + E) log V).
func New(g Graph, source ident.ID) (*Solver, error) {
	if !g.HasVertex(source) {
		return nil, ErrVertexNotFound
	}
	for _, a := range g.Vertices() {
		for _, b := range g.OutNeighbors(a) {
			if w, ok := g.Weight(a, b); ok && w < 0 {
				return nil, ErrNegativeWeight
			}
		}
	}

	s := &Solver{g: g, source: source}
	s.calcDistances()

	return s, nil
}

// Source returns the vertex the tables are rooted at.
func (s *Solver) Source() ident.ID {
	return s.source
}

// SetSource re-roots the solver at source and recomputes the tables.
// Returns ErrVertexNotFound when source is absent; the previous tables
// survive a failed call.
func (s *Solver) SetSource(source ident.ID) error {
	if !s.g.HasVertex(source) {
		return ErrVertexNotFound
	}
	s.source = source
	s.calcDistances()

	return nil
}

// Distance returns the shortest-path cost from the source to v.
// +Inf when v is unreachable or unknown.
func (s *Solver) Distance(v ident.ID) float64 {
	if d, ok := s.dist[v]; ok {
		return d
	}

	return math.Inf(1)
}

// PathTo returns the vertex sequence of a shortest path from the source to
// v, source first, v last. Nil when v is unreachable or unknown. For
// v == source the path is the single-element sequence.
func (s *Solver) PathTo(v ident.ID) []ident.ID {
	if _, ok := s.prev[v]; !ok {
		return nil
	}

	var path []ident.ID
	for cur := v; ; cur = s.prev[cur] {
		path = append(path, cur)
		if cur == s.source {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// calcDistances rebuilds the distance and predecessor tables from the
// current source.
func (s *Solver) calcDistances() {
	s.dist = make(map[ident.ID]float64, s.g.VertexCount())
	s.prev = make(map[ident.ID]ident.ID, s.g.VertexCount())
	s.dist[s.source] = 0
	// The source is its own predecessor; PathTo keys reachability on prev.
	s.prev[s.source] = s.source

	done := make(map[ident.ID]struct{}, s.g.VertexCount())
	pq := &nodePQ{{id: s.source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		if _, ok := done[item.id]; ok {
			continue // stale entry, already settled with a shorter path
		}
		done[item.id] = struct{}{}

		for _, b := range s.g.OutNeighbors(item.id) {
			w, ok := s.g.Weight(item.id, b)
			if !ok {
				continue
			}
			cand := item.dist + w
			if old, seen := s.dist[b]; !seen || cand < old {
				s.dist[b] = cand
				s.prev[b] = item.id
				heap.Push(pq, pqItem{id: b, dist: cand})
			}
		}
	}
}
