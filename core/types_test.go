package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/reachly/core"
)

func TestNewVertex_DataAndNeighbors(t *testing.T) {
	b := core.NewVertex(2)
	c := core.NewVertex(3)
	a := core.NewVertex(1, b, c)

	assert.Equal(t, 1, a.Data)
	assert.Equal(t, []*core.Vertex[int]{b, c}, a.Neighbors)
	assert.Empty(t, b.Neighbors)
}

func TestVertex_IdentityIsPointerNotValue(t *testing.T) {
	v1 := core.NewVertex(7)
	v2 := core.NewVertex(7)

	assert.NotSame(t, v1, v2, "equal data must not imply same vertex")
}

func TestVertex_SelfLoopIsLegal(t *testing.T) {
	v := core.NewVertex("loop")
	v.Neighbors = append(v.Neighbors, v)

	assert.Same(t, v, v.Neighbors[0])
}

func TestNewNeighborSet_DeduplicatesAndContains(t *testing.T) {
	ns := core.NewNeighborSet(3, 1, 3, 2)

	assert.Len(t, ns, 3)
	assert.True(t, ns.Contains(1))
	assert.True(t, ns.Contains(3))
	assert.False(t, ns.Contains(9))
}

func TestNeighborSet_NilContains(t *testing.T) {
	var ns core.NeighborSet
	assert.False(t, ns.Contains(1))
}

func TestMapGraph_HasVertex(t *testing.T) {
	g := core.MapGraph{
		1: core.NewNeighborSet(2),
		2: nil, // sink, explicitly present
	}

	assert.True(t, g.HasVertex(1))
	assert.True(t, g.HasVertex(2), "nil-set vertex is still a vertex")
	assert.False(t, g.HasVertex(3), "neighbor-only id is not a vertex")
}

func TestMapGraph_HasVertex_NilGraph(t *testing.T) {
	var g core.MapGraph
	assert.False(t, g.HasVertex(1))
}

func TestMapGraph_Neighbors_SortedCopy(t *testing.T) {
	g := core.MapGraph{1: core.NewNeighborSet(5, 2, 9)}

	got := g.Neighbors(1)
	assert.Equal(t, []int{2, 5, 9}, got)

	// Mutating the returned slice must not affect the graph.
	got[0] = 42
	assert.Equal(t, []int{2, 5, 9}, g.Neighbors(1))
}

func TestMapGraph_Neighbors_MissingAndEmpty(t *testing.T) {
	g := core.MapGraph{
		1: core.NewNeighborSet(),
		2: nil,
	}

	assert.Nil(t, g.Neighbors(1), "empty set expands to nothing")
	assert.Nil(t, g.Neighbors(2), "nil set expands to nothing")
	assert.Nil(t, g.Neighbors(99), "missing key expands to nothing")

	var nilG core.MapGraph
	assert.Nil(t, nilG.Neighbors(1))
}
