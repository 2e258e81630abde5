// This file holds the node-graph queries: counting, collecting, and
// one-way/mutual reachability over pointer-linked core.Vertex graphs.

package reach

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/reachly/core"
)

// nodeWalker returns a fresh Walker over a node graph of element type T,
// keyed on vertex pointers and expanding through Neighbors.
func nodeWalker[T any]() *core.Walker[*core.Vertex[T]] {
	return core.NewWalker(func(v *core.Vertex[T]) []*core.Vertex[T] {
		return v.Neighbors
	})
}

// OddVertices returns how many vertices reachable from start (start
// itself included) hold an odd value. A nil start reaches nothing and
// yields 0. Counting is per vertex: two distinct vertices holding the
// same odd value count twice.
func OddVertices(start *core.Vertex[int]) int {
	// 1. Nil start: defined result, no traversal.
	if start == nil {
		return 0
	}

	// 2. Guarded walk, counting odd values at first visit.
	count := 0
	nodeWalker[int]().Walk(start, func(v *core.Vertex[int]) bool {
		// Go's remainder keeps the dividend's sign, so != 0 also
		// classifies negative odds (-3%2 == -1) correctly.
		if v.Data%2 != 0 {
			count++
		}

		return false
	})

	return count
}

// SortedReachable returns every value reachable from start (start
// itself included) in ascending order. Values are collected per vertex,
// so equal values held by distinct vertices all appear. A nil start
// yields an empty, non-nil slice.
func SortedReachable[T cmp.Ordered](start *core.Vertex[T]) []T {
	out := []T{}
	if start == nil {
		return out
	}

	nodeWalker[T]().Walk(start, func(v *core.Vertex[T]) bool {
		out = append(out, v.Data)

		return false
	})
	slices.Sort(out)

	return out
}

// CanReach reports whether a directed path leads from start to target.
// Reachability is reflexive: CanReach(v, v) is true for non-nil v.
// Either argument nil yields false.
func CanReach[T any](start, target *core.Vertex[T]) bool {
	if start == nil || target == nil {
		return false
	}

	return nodeWalker[T]().Walk(start, func(v *core.Vertex[T]) bool {
		return v == target
	})
}

// TwoWay reports whether v1 and v2 can each reach the other. The same
// vertex passed twice is trivially true with no traversal; either
// argument nil is false. The vertices may belong to unrelated graphs —
// the two directed searches are independent, each with its own visited
// set.
func TwoWay[T any](v1, v2 *core.Vertex[T]) bool {
	// 1. Nil in either position: no connection by definition.
	if v1 == nil || v2 == nil {
		return false
	}

	// 2. Reflexive short-circuit on pointer identity.
	if v1 == v2 {
		return true
	}

	// 3. Both directions must hold.
	return CanReach(v1, v2) && CanReach(v2, v1)
}
