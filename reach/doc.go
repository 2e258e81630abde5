// Package reach implements reachability queries over the node-graph and
// map-graph representations in core, all driven by the visited-guarded
// depth-first walk in core.Walker.
//
// What:
//
//   - OddVertices: count reachable vertices with odd values
//   - SortedReachable: collect reachable values, ascending, duplicates
//     preserved (one entry per vertex, not per distinct value)
//   - SortedReachableIDs: collect reachable map-graph ids, ascending
//     (ids are unique by construction, so no duplicates arise)
//   - CanReach: directed reachability between two vertices
//   - TwoWay: mutual reachability — a path each way, or the same vertex
//   - PositivePathExists: path existence where every vertex on the
//     path, intermediate ones included, has a strictly positive id
//
// Why:
//   - Teach the one hard part of graph reachability — traversing cyclic
//     structures without looping or double-counting — through five
//     queries that differ only in their per-vertex side effect
//   - Show the two classic representations side by side: pointer-linked
//     vertices (identity = address) and adjacency maps (identity = id)
//
// Contracts:
//
// Every query is total over its input domain. Invalid inputs — nil
// start, nil graph, missing key, non-positive endpoint — yield
// 0/empty/false with no traversal, never an error or panic. Queries
// never mutate their inputs; rerunning any query on an unmutated graph
// yields the same result.
//
// Complexity:
//
//   - All queries: Time O(V+E) over the reachable subgraph (plus
//     O(n log n) for the sorted collectors), Memory O(V).
//   - TwoWay runs two independent walks, each with its own visited set.
//
// Functions:
//
//   - OddVertices(start *core.Vertex[int]) int
//   - SortedReachable[T cmp.Ordered](start *core.Vertex[T]) []T
//   - SortedReachableIDs(g core.MapGraph, start int) []int
//   - CanReach[T any](start, target *core.Vertex[T]) bool
//   - TwoWay[T any](v1, v2 *core.Vertex[T]) bool
//   - PositivePathExists(g core.MapGraph, start, end int) bool
package reach
