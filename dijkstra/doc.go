// Package dijkstra computes single-source shortest paths over a directed
// graph with non-negative edge weights.
//
// What it does:
//
//   - New validates the source and scans every edge for a negative weight,
//     then computes distance and predecessor tables eagerly.
//   - Distance returns the shortest-path cost to a vertex, +Inf when no
//     path exists or the vertex is unknown.
//   - PathTo reconstructs the vertex sequence from the source to a target,
//     nil when no path exists.
//   - SetSource re-roots the solver at another vertex and recomputes.
//
// The priority queue breaks distance ties by vertex handle, so equal-cost
// alternatives resolve identically on every run. Stale queue entries are
// skipped rather than re-keyed (lazy decrease-key).
//
// Results are a snapshot: mutating the graph after New or SetSource leaves
// the tables describing the graph as it was.
package dijkstra
