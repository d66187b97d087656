// Package vertigo is an in-memory container for directed graphs that are
// built and queried incrementally — dependency graphs, task graphs, DAG
// validators — with deterministic traversal and search on top.
//
// 🚀 What is vertigo?
//
//	A small, single-threaded library that brings together:
//		• ident/    — opaque vertex handles and an injectable handle generator
//		• core/     — the mutable graph store: payloads, weighted edges,
//		              sorted adjacency, incrementally maintained root/tip sets
//		• dfs/      — depth-first iteration with cycle detection
//		• bfs/      — breadth-first iteration across disconnected components
//		• topo/     — Kahn's topological ordering with a cyclic probe
//		• dijkstra/ — single-source shortest paths with path reconstruction
//
// ✨ Why choose vertigo?
//
//   - Deterministic by construction — every traversal order is reproducible:
//     outbound adjacency stays sorted by edge weight with handle tie-breaks
//   - Invariants, not eventual consistency — root and tip membership is
//     restored before every mutating call returns
//   - Pure Go — no cgo, no I/O, no hidden global state; inject a fixed
//     handle generator and your tests replay byte for byte
//   - Honest contracts — recoverable failures are error values, broken
//     preconditions are panics
//
// The store carries no locks and is not safe for concurrent mutation. Wrap
// it in a mutex or hand each task its own deep Clone. Traversal iterators
// borrow the store read-only for their lifetime; mutating the store while
// one is live is detected and panics.
//
// Quick ASCII example:
//
//	C──▶A──▶B
//	    │
//	    ▼
//	    D
//
// C is the sole root; B and D are tips. Depth-first order starts at C.
//
//	go get github.com/katalvlaran/vertigo
package vertigo
