// Package core_test: edge insertion, weights, removal, and the
// cycle-checked insertion rollback guarantee.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vertigo/core"
	"github.com/katalvlaran/vertigo/ident"
)

// pair adds two connected vertices and returns their handles.
func pair(t *testing.T, g *core.Graph[int]) (ident.ID, ident.ID) {
	t.Helper()
	a := g.AddVertex(1)
	b := g.AddVertex(2)
	require.NoError(t, g.AddEdge(a, b))

	return a, b
}

func TestAddEdge_Basic(t *testing.T) {
	g := core.NewGraph[int]()
	a, b := pair(t, g)

	assert.True(t, g.HasEdge(a, b))
	assert.False(t, g.HasEdge(b, a), "edges are directed")
	w, ok := g.Weight(a, b)
	require.True(t, ok)
	assert.Zero(t, w)
}

func TestAddEdge_MissingEndpoint(t *testing.T) {
	g := core.NewGraph[int]()
	a := g.AddVertex(1)
	ghost := g.AddVertex(2)
	g.Remove(ghost)

	err := g.AddEdge(a, ghost)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrCannotAddEdge)
	assert.ErrorIs(t, err, core.ErrNoSuchVertex)
}

func TestAddEdge_DuplicateIsNoOp(t *testing.T) {
	g := core.NewGraph[int]()
	a, b := pair(t, g)
	require.NoError(t, g.SetWeight(a, b, 0.5))

	before := g.Version()
	require.NoError(t, g.AddEdge(a, b))
	assert.Equal(t, before, g.Version())
	w, _ := g.Weight(a, b)
	assert.Equal(t, 0.5, w, "duplicate insertion must not reset the weight")
}

func TestAddEdgeWithWeight_Range(t *testing.T) {
	g := core.NewGraph[int]()
	a := g.AddVertex(1)
	b := g.AddVertex(2)

	assert.ErrorIs(t, g.AddEdgeWithWeight(a, b, 1.5), core.ErrInvalidWeight)
	assert.ErrorIs(t, g.AddEdgeWithWeight(a, b, -1.01), core.ErrInvalidWeight)
	assert.False(t, g.HasEdge(a, b))

	require.NoError(t, g.AddEdgeWithWeight(a, b, -1))
	w, _ := g.Weight(a, b)
	assert.Equal(t, -1.0, w, "boundary weights are valid")
}

func TestAddEdgeWithWeight_DuplicateWinsOverValidation(t *testing.T) {
	// An existing edge short-circuits before the weight is inspected.
	g := core.NewGraph[int]()
	a, b := pair(t, g)

	require.NoError(t, g.AddEdgeWithWeight(a, b, 99))
	w, _ := g.Weight(a, b)
	assert.Zero(t, w)
}

func TestAddEdge_SelfLoop(t *testing.T) {
	g := core.NewGraph[int]()
	a := g.AddVertex(1)

	require.NoError(t, g.AddEdge(a, a))
	assert.True(t, g.HasEdge(a, a))
	// A self-looped vertex is neither root nor tip.
	assert.NotContains(t, g.Roots(), a)
	assert.NotContains(t, g.Tips(), a)
}

func TestSetWeight(t *testing.T) {
	g := core.NewGraph[int]()
	a, b := pair(t, g)

	require.NoError(t, g.SetWeight(a, b, 0.25))
	w, _ := g.Weight(a, b)
	assert.Equal(t, 0.25, w)

	assert.ErrorIs(t, g.SetWeight(b, a, 0.1), core.ErrNoSuchEdge)
	assert.ErrorIs(t, g.SetWeight(a, b, 2), core.ErrInvalidWeight)
	w, _ = g.Weight(a, b)
	assert.Equal(t, 0.25, w, "failed SetWeight must leave the old weight")
}

func TestSetWeight_ResortsOutbound(t *testing.T) {
	g := core.NewGraph[int]()
	a := g.AddVertex(0)
	b := g.AddVertex(1)
	c := g.AddVertex(2)
	require.NoError(t, g.AddEdgeWithWeight(a, b, 0.1))
	require.NoError(t, g.AddEdgeWithWeight(a, c, 0.9))
	require.Equal(t, []ident.ID{b, c}, g.OutNeighbors(a))

	require.NoError(t, g.SetWeight(a, c, 0.05))
	assert.Equal(t, []ident.ID{c, b}, g.OutNeighbors(a))
}

func TestRemoveEdge_Reclassifies(t *testing.T) {
	g := core.NewGraph[int]()
	a, b := pair(t, g)

	g.RemoveEdge(a, b)
	assert.False(t, g.HasEdge(a, b))
	assert.Contains(t, g.Roots(), b)
	assert.Contains(t, g.Tips(), a)
}

func TestRemoveEdge_AbsentIsNoOp(t *testing.T) {
	g := core.NewGraph[int]()
	a := g.AddVertex(1)
	b := g.AddVertex(2)

	before := g.Version()
	g.RemoveEdge(a, b)
	assert.Equal(t, before, g.Version())
}

func TestAddEdgeCheckCycle_AcceptsDAGEdge(t *testing.T) {
	g := core.NewGraph[int]()
	a := g.AddVertex(1)
	b := g.AddVertex(2)
	c := g.AddVertex(3)
	require.NoError(t, g.AddEdgeCheckCycle(a, b))
	require.NoError(t, g.AddEdgeCheckCycle(b, c))

	// Diamond closure: two paths to the same vertex is not a cycle.
	d := g.AddVertex(4)
	require.NoError(t, g.AddEdgeCheckCycle(a, d))
	require.NoError(t, g.AddEdgeCheckCycle(d, c))

	assert.False(t, g.IsCyclic())
}

func TestAddEdgeCheckCycle_RejectsBackEdge(t *testing.T) {
	g := core.NewGraph[int]()
	a := g.AddVertex(1)
	b := g.AddVertex(2)
	c := g.AddVertex(3)
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, c))

	err := g.AddEdgeCheckCycle(c, a)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrCannotAddEdge)
	assert.ErrorIs(t, err, core.ErrCycle)
	assert.False(t, g.HasEdge(c, a))
}

func TestAddEdgeCheckCycle_RejectsSelfLoop(t *testing.T) {
	g := core.NewGraph[int]()
	a := g.AddVertex(1)

	err := g.AddEdgeCheckCycle(a, a)
	assert.ErrorIs(t, err, core.ErrCycle)
}

func TestAddEdgeCheckCycle_RejectionLeavesStoreUntouched(t *testing.T) {
	g := core.NewGraph[int]()
	a := g.AddVertex(1)
	b := g.AddVertex(2)
	c := g.AddVertex(3)
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, c))

	edges := g.Edges()
	roots := g.Roots()
	tips := g.Tips()
	version := g.Version()

	require.Error(t, g.AddEdgeCheckCycle(c, a))

	assert.Equal(t, edges, g.Edges())
	assert.Equal(t, roots, g.Roots())
	assert.Equal(t, tips, g.Tips())
	assert.Equal(t, version, g.Version())
	assert.Equal(t, []ident.ID{b}, g.OutNeighbors(a))
	assert.Equal(t, []ident.ID{b}, g.InNeighbors(c))
}

func TestAddEdgeCheckCycle_DuplicateIsNoOp(t *testing.T) {
	g := core.NewGraph[int]()
	a, b := pair(t, g)

	before := g.Version()
	require.NoError(t, g.AddEdgeCheckCycle(a, b))
	assert.Equal(t, before, g.Version())
}

func TestEdges_SortedListing(t *testing.T) {
	g := core.NewGraph[int]()
	a := g.AddVertex(1)
	b := g.AddVertex(2)
	c := g.AddVertex(3)
	require.NoError(t, g.AddEdgeWithWeight(b, c, 0.3))
	require.NoError(t, g.AddEdgeWithWeight(a, c, 0.2))
	require.NoError(t, g.AddEdgeWithWeight(a, b, 0.1))

	got := g.Edges()
	require.Len(t, got, 3)
	assert.Equal(t, core.Edge{From: a, To: b, Weight: 0.1}, got[0])
	assert.Equal(t, core.Edge{From: a, To: c, Weight: 0.2}, got[1])
	assert.Equal(t, core.Edge{From: b, To: c, Weight: 0.3}, got[2])
}
