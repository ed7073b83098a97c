package dag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/critpath/dag"
)

// mustBuild constructs a graph over n vertices from the given edges, failing
// the test on any error.
func mustBuild(t *testing.T, n int, edges [][2]dag.VertexID) *dag.Graph {
	t.Helper()

	b := dag.NewBuilder(n)
	for _, e := range edges {
		require.NoError(t, b.AddEdge(e[0], e[1]))
	}
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

// TestBuilder_NegativeCountPanics verifies that a negative vertex count is a
// programming error.
func TestBuilder_NegativeCountPanics(t *testing.T) {
	assert.Panics(t, func() { dag.NewBuilder(-1) })
}

// TestBuilder_EdgeOutOfRange verifies AddEdge rejects endpoints outside [0, n).
func TestBuilder_EdgeOutOfRange(t *testing.T) {
	b := dag.NewBuilder(2)

	assert.ErrorIs(t, b.AddEdge(0, 2), dag.ErrVertexRange)
	assert.ErrorIs(t, b.AddEdge(5, 0), dag.ErrVertexRange)
	assert.NoError(t, b.AddEdge(0, 1))
}

// TestBuilder_CycleRejected verifies Build fails on a two-vertex cycle and on
// a self-loop.
func TestBuilder_CycleRejected(t *testing.T) {
	b := dag.NewBuilder(2)
	require.NoError(t, b.AddEdge(0, 1))
	require.NoError(t, b.AddEdge(1, 0))
	_, err := b.Build()
	assert.ErrorIs(t, err, dag.ErrCycleDetected)

	b = dag.NewBuilder(1)
	require.NoError(t, b.AddEdge(0, 0))
	_, err = b.Build()
	assert.ErrorIs(t, err, dag.ErrCycleDetected)
}

// TestBuilder_EmptyGraph covers the zero-vertex graph.
func TestBuilder_EmptyGraph(t *testing.T) {
	g := mustBuild(t, 0, nil)

	assert.Equal(t, 0, g.NumVertices())
	assert.Equal(t, 0, g.NumEdges())
	assert.Empty(t, g.TopoOrder())
}

// TestGraph_OutEdgesSorted verifies that OutEdges yields ascending target
// ids regardless of insertion order, and that duplicates survive.
func TestGraph_OutEdgesSorted(t *testing.T) {
	g := mustBuild(t, 4, [][2]dag.VertexID{{0, 3}, {0, 1}, {0, 2}, {0, 1}})

	assert.Equal(t, []dag.VertexID{1, 1, 2, 3}, g.OutEdges(0))
	assert.Empty(t, g.OutEdges(3))
}

// TestGraph_TopoOrderIsTopological verifies the earlier-to-later edge
// property on a branching DAG, plus the deterministic order on a chain.
func TestGraph_TopoOrderIsTopological(t *testing.T) {
	edges := [][2]dag.VertexID{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}}
	g := mustBuild(t, 5, edges)

	order := g.TopoOrder()
	require.Len(t, order, 5)

	pos := make(map[dag.VertexID]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, e := range edges {
		assert.Less(t, pos[e[0]], pos[e[1]], "edge %d->%d must go forward", e[0], e[1])
	}

	chain := mustBuild(t, 3, [][2]dag.VertexID{{0, 1}, {1, 2}})
	assert.Equal(t, []dag.VertexID{0, 1, 2}, chain.TopoOrder())
}

// TestGraph_TopoOrderReturnsCopy verifies callers may mutate the returned
// slice without affecting the graph.
func TestGraph_TopoOrderReturnsCopy(t *testing.T) {
	g := mustBuild(t, 2, [][2]dag.VertexID{{0, 1}})

	first := g.TopoOrder()
	first[0] = 99
	assert.Equal(t, []dag.VertexID{0, 1}, g.TopoOrder())
}

// TestGraph_Reversed verifies edge reversal, adjacency order, and the
// reversed topological order.
func TestGraph_Reversed(t *testing.T) {
	g := mustBuild(t, 4, [][2]dag.VertexID{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	r := g.Reversed()

	assert.Equal(t, g.NumVertices(), r.NumVertices())
	assert.Equal(t, g.NumEdges(), r.NumEdges())

	assert.Empty(t, r.OutEdges(0))
	assert.Equal(t, []dag.VertexID{0}, r.OutEdges(1))
	assert.Equal(t, []dag.VertexID{0}, r.OutEdges(2))
	assert.Equal(t, []dag.VertexID{1, 2}, r.OutEdges(3))

	fwd := g.TopoOrder()
	rev := r.TopoOrder()
	require.Len(t, rev, len(fwd))
	for i := range fwd {
		assert.Equal(t, fwd[i], rev[len(rev)-1-i])
	}
}

// TestNewVertexData verifies length and fill of allocated side-arrays.
func TestNewVertexData(t *testing.T) {
	g := mustBuild(t, 3, [][2]dag.VertexID{{0, 1}})

	data := dag.NewVertexData(g, uint64(7))
	require.Len(t, data, 3)
	for _, x := range data {
		assert.Equal(t, uint64(7), x)
	}

	data[1] = 9 // mutable in place
	assert.Equal(t, uint64(9), data[1])
}
