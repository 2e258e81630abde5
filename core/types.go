// This file declares the Vertex node-graph representation and the
// MapGraph adjacency-map representation, with their query accessors.
// Both are built and owned by the caller; nothing here mutates them.

package core

import "slices"

// Vertex represents a node in a directed node graph.
//
// Data holds the vertex value; Neighbors holds the outgoing successor
// references in insertion order. Identity is the *Vertex pointer: two
// vertices carrying equal Data are still distinct vertices, and a
// vertex may appear in its own Neighbors (self-loop).
type Vertex[T any] struct {
	// Data is the value stored at this vertex.
	Data T

	// Neighbors lists the direct successors of this vertex.
	// It may legally contain duplicates, self references, and members
	// of cycles; traversal handles all of these.
	Neighbors []*Vertex[T]
}

// NewVertex constructs a Vertex holding data with the given successors.
// Cyclic shapes are built by appending to Neighbors after construction.
// Complexity: O(len(neighbors)).
func NewVertex[T any](data T, neighbors ...*Vertex[T]) *Vertex[T] {
	return &Vertex[T]{Data: data, Neighbors: neighbors}
}

// NeighborSet is a set of integer vertex identifiers.
// Set semantics: no duplicates, no ordering.
type NeighborSet map[int]struct{}

// NewNeighborSet builds a NeighborSet from the given ids.
// Duplicate ids collapse into one membership.
// Complexity: O(len(ids)).
func NewNeighborSet(ids ...int) NeighborSet {
	ns := make(NeighborSet, len(ids))
	for _, id := range ids {
		ns[id] = struct{}{}
	}

	return ns
}

// Contains reports whether id is a member of the set.
// Complexity: O(1).
func (ns NeighborSet) Contains(id int) bool {
	_, ok := ns[id]

	return ok
}

// MapGraph is a directed graph keyed by integer vertex id: each key maps
// to the set of its successor ids.
//
// A vertex with no outgoing edges may map to an empty (or nil) set, or
// be absent entirely. Ids that appear only inside a NeighborSet are not
// vertices of the graph: they have no expansion, and looking them up is
// always safe.
type MapGraph map[int]NeighborSet

// HasVertex reports whether id exists as a key of g.
// A nil MapGraph has no vertices.
// Complexity: O(1).
func (g MapGraph) HasVertex(id int) bool {
	_, ok := g[id]

	return ok
}

// Neighbors returns the successor ids of id in ascending order, or nil
// when id is not a key of g (including g == nil). The returned slice is
// a fresh copy; callers may keep or reorder it freely.
// Sorting keeps traversal order deterministic across runs.
// Complexity: O(d log d), d = out-degree of id.
func (g MapGraph) Neighbors(id int) []int {
	ns, ok := g[id]
	if !ok || len(ns) == 0 {
		return nil
	}

	out := make([]int, 0, len(ns))
	for nb := range ns {
		out = append(out, nb)
	}
	slices.Sort(out)

	return out
}
