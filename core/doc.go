// Package core defines the two graph representations the reachability
// queries operate on, and the traversal primitive they share.
//
// What:
//
//   - Vertex[T]: a node-graph vertex holding a value and a slice of
//     successor pointers. Identity is the pointer, never the value —
//     two vertices with equal Data are distinct. Cycles, self-loops and
//     reconverging paths are all legal shapes.
//   - MapGraph / NeighborSet: an adjacency map from integer vertex id
//     to the set of successor ids. Missing keys are handled
//     defensively: an id that appears only as a neighbor has no
//     expansion and is never dereferenced.
//   - Walker[N]: the visited-guarded depth-first walk. Parameterized by
//     a neighbor-expansion func and a per-vertex visit func, so each
//     query instantiates only its side effect (count, collect, match)
//     instead of duplicating traversal logic.
//
// Why:
//   - One guard, many queries: every algorithm in reach/ and network/
//     is a thin driver over Walker, so cycle safety is proved once
//   - Reference identity for node graphs falls out of map[N]struct{}
//     keyed on pointers; integer identity for map graphs keys the same
//     set on ids
//
// Complexity:
//
//   - Walker.Walk: Time O(V+E) over the reachable subgraph,
//     Memory O(V) for the visited set and recursion stack.
//
// Concurrency:
//
//   - Nothing in this package mutates a graph. A Walker is private to
//     one query call; concurrent queries over a shared, externally
//     unmutated graph are safe without locks.
package core
