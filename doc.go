// Package reachly answers reachability questions over small in-memory
// graphs — who can I reach, can we reach each other, and is there a
// path that satisfies a constraint.
//
// 🚀 What is reachly?
//
//	A compact, teaching-oriented library built around one primitive —
//	the visited-guarded depth-first walk — applied to three shapes of
//	graph data:
//		• Node graphs: pointer-linked Vertex[T] values (core)
//		• Map graphs: integer id → neighbor-id set adjacency (core)
//		• Labeled networks: Professional connection webs (network)
//
// ✨ Why choose reachly?
//
//   - Total contracts – every query answers 0/empty/false for invalid
//     input; nothing here returns an error or panics on any graph shape
//   - Cycle-proof – self-loops, mutual references and diamonds are all
//     handled by the shared visited guard, each vertex counted once
//   - Read-only – queries never mutate their inputs, so concurrent
//     readers over a shared graph are safe
//   - Pure Go – no cgo, no hidden deps
//
// The queries, one package per graph shape:
//
//	core/    — Vertex[T], MapGraph and the Walker traversal primitive
//	reach/   — OddVertices, SortedReachable(IDs), CanReach, TwoWay,
//	           PositivePathExists
//	network/ — Professional, HasExtendedConnectionAtCompany
//
// Quick ASCII example:
//
//	    5 ──▶ 4
//	    │     │
//	    ▼     ▼
//	    8 ──▶ 7 ◀── 1
//	    │
//	    ▼
//	    9
//
//	starting from 5, the reachable odd values are 5, 7 and 9,
//	so reach.OddVertices returns 3.
//
// Graph construction stays with the caller: build vertices and adjacency
// maps yourself (or in your own generators) and hand them in; reachly
// only ever reads them.
package reachly
