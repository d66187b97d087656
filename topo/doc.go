// Package topo provides a lazy topological ordering over a directed acyclic
// graph, plus a non-panicking cycle probe.
//
// What it does:
//
//   - Iterator yields every vertex exactly once, and every edge a → b has a
//     yielded before b. The order is Kahn's algorithm with a deterministic
//     twist: the ready set is a stack seeded from the sorted roots, so ties
//     resolve the same way on every run over the same graph.
//   - Next panics with "topo: graph contains cycle(s)" when the ready set
//     empties before every vertex is out. Use IsCyclic first when the graph
//     may be cyclic.
//   - An empty graph is trivially ordered; Next simply reports exhaustion.
//
// The iterator is snapshot-free: it reads the graph live and panics if the
// graph is mutated between Next calls.
package topo
