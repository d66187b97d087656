// Package dfs provides a lazy depth-first traversal over a directed graph,
// with cycle detection as a byproduct.
//
// What it does:
//
//   - Iterator yields every vertex exactly once, in pre-order: a vertex is
//     produced when first discovered, before any of its successors.
//   - Traversal starts from the graph's roots in ascending handle order,
//     then sweeps the remaining vertices (those only reachable through a
//     cycle) in ascending handle order, so every vertex is covered even in
//     graphs with no roots at all.
//   - Successors are explored lowest edge weight first, handle order
//     breaking ties.
//   - IsCyclic drains the traversal and reports whether any edge pointed
//     back into the active recursion path.
//
// Cycle detection uses the classic three-color scheme: a back edge is an
// edge into a vertex whose own exploration has not finished yet. Cross and
// forward edges into finished vertices never count, so diamond-shaped DAGs
// are reported acyclic.
//
// The iterator is snapshot-free: it reads the graph live and panics if the
// graph is mutated between Next calls.
package dfs
