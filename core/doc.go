// Package core implements the mutable directed-graph store: a generic
// container of vertex payloads connected by weighted edges, with derived
// root and tip sets maintained incrementally under every mutation.
//
// What:
//
//   - Graph[T]: vertex table (payload keyed by ident.ID), edge table
//     (ordered pair → weight in [-1, 1]), inbound and outbound adjacency,
//     root set (in-degree 0) and tip set (out-degree 0)
//   - Mutations: AddVertex, AddEdge / AddEdgeWithWeight / AddEdgeCheckCycle,
//     SetWeight, Remove, RemoveEdge, Retain, Clear, label writes
//   - Queries: HasVertex/HasEdge, Weight, neighbor and degree lookups,
//     sorted Vertices/Roots/Tips/Edges/Values listings, Fetch/FetchMut
//   - Fold and Map (top-level generic functions), deep Clone, IsCyclic
//
// Invariants (restored before every mutating call returns, never lazily):
//
//   - an edge exists only if both endpoints exist in the vertex table
//   - v ∈ roots ⇔ in-degree(v) = 0; v ∈ tips ⇔ out-degree(v) = 0
//   - outbound[v] is sorted ascending by edge weight, ties broken by the
//     successor handle; a defaulted weight (0.0) orders like an explicit 0.0
//
// The sorted outbound order is what makes depth-first and breadth-first
// traversal deterministic, so it is treated as load-bearing, not cosmetic.
//
// Concurrency:
//
// The store holds no locks. All operations are synchronous and CPU-bound;
// concurrent mutation is undefined behavior unless the caller synchronizes
// externally or works on per-task Clones. Live traversal iterators detect
// store mutation through the Version counter and panic rather than yield
// garbage.
//
// Errors:
//
//	ErrNoSuchVertex  - operation referenced a vertex that is not in the store.
//	ErrNoSuchEdge    - operation referenced an edge that is not in the store.
//	ErrCannotAddEdge - an edge insertion failed; wraps the specific cause.
//	ErrInvalidWeight - weight outside the closed interval [-1, 1].
//	ErrCycle         - the cycle-checked insertion would create a cycle.
package core
