// This file holds the map-graph queries: reachable-id collection and
// predicate-filtered path existence over core.MapGraph adjacency maps.

package reach

import (
	"slices"

	"github.com/katalvlaran/reachly/core"
)

// SortedReachableIDs returns every vertex id reachable from start
// (start itself included) in ascending order. A nil graph or a start
// that is not a key yields an empty, non-nil slice.
//
// Ids are unique within a MapGraph, so the result has no duplicates.
// An id that appears only as a neighbor is still reachable and appears
// in the result; it simply expands to nothing.
func SortedReachableIDs(g core.MapGraph, start int) []int {
	ids := []int{}

	// 1. Validate entry: nil graph and missing key both fail HasVertex.
	if !g.HasVertex(start) {
		return ids
	}

	// 2. Guarded walk, collecting each id at first visit.
	core.NewWalker(g.Neighbors).Walk(start, func(id int) bool {
		ids = append(ids, id)

		return false
	})
	slices.Sort(ids)

	return ids
}

// PositivePathExists reports whether a path from start to end exists on
// which every vertex id, intermediates included, is strictly positive.
//
// Immediate false, with no traversal, when: g is nil, start or end is
// not a key of g, or start or end is non-positive. start == end is a
// path of length zero and succeeds once validated. Neighbor ids absent
// from the key set expand to nothing; since end is validated to be a
// key, such a dangling id can never be the target.
func PositivePathExists(g core.MapGraph, start, end int) bool {
	// 1. Entry validation: both endpoints must exist and be positive.
	if !g.HasVertex(start) || !g.HasVertex(end) {
		return false
	}
	if start <= 0 || end <= 0 {
		return false
	}

	// 2. Expansion admits only strictly positive successors. The entry
	//    check covered the endpoints; this filter covers intermediates.
	positive := func(id int) []int {
		nbs := g.Neighbors(id)
		out := nbs[:0] // Neighbors returns a copy, safe to filter in place
		for _, nb := range nbs {
			if nb > 0 {
				out = append(out, nb)
			}
		}

		return out
	}

	// 3. Guarded walk, short-circuiting on the target.
	return core.NewWalker(positive).Walk(start, func(id int) bool {
		return id == end
	})
}
