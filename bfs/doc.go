// Package bfs provides a lazy breadth-first traversal over a directed graph.
//
// What it does:
//
//   - Iterator yields every vertex reachable from the graph's roots exactly
//     once, in level order: all vertices at distance d from a root come out
//     before any at distance d+1.
//   - Root partitions are processed one at a time. Roots are stacked in
//     ascending handle order and popped last-in first-out, so the highest
//     root starts. Within a partition, successors enter the queue lowest
//     edge weight first, handle order breaking ties.
//   - Vertices with no path from any root (those inside root-less cycles)
//     are not visited.
//
// The iterator is snapshot-free: it reads the graph live and panics if the
// graph is mutated between Next calls.
package bfs
