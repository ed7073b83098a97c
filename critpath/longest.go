package critpath

import (
	"fmt"

	"github.com/katalvlaran/critpath/dag"
)

// FindLongestPaths computes, for every vertex v of g, the cost of the
// longest path starting at v and following out-edges of g, together with a
// parent pointer reconstructing one such path.
//
// cost[v] is the maximum over all paths v = v₀ → v₁ → … → vₖ of
// Σ (runtimes[vᵢ], 1), summed as dag.PathCost. parent[v] holds the
// successor of v along a path achieving cost[v], or none when v has no
// out-edge.
//
// Precondition on order: it must visit every successor of v before v. For
// the forward graph that is the reverse of TopoOrder; for the reversed
// graph it is the forward graph's TopoOrder itself. The precondition is not
// checked; violating it silently produces wrong costs.
//
// Ties: among successors with equal cost the first one in edge-iteration
// order wins (strict-greater replacement), so the result is deterministic
// given the edge set.
//
// Complexity: O(V + E) time, O(V) space beyond the two outputs.
func FindLongestPaths(
	g *dag.Graph,
	order []dag.VertexID,
	runtimes dag.VertexData[uint64],
) (dag.VertexData[dag.PathCost], dag.VertexData[dag.OptionalVertexID]) {
	if len(runtimes) != g.NumVertices() {
		panic(fmt.Sprintf("critpath: runtimes length %d does not match %d vertices", len(runtimes), g.NumVertices()))
	}

	cost := dag.NewVertexData(g, dag.PathCost{})
	parent := dag.NewVertexData(g, dag.NoVertex)

	for _, v := range order {
		// Pick the best already-computed successor, first maximizer wins.
		var best dag.PathCost
		bestTo := dag.NoVertex
		for _, s := range g.OutEdges(v) {
			if bestTo.IsSome() && !best.Less(cost[s]) {
				continue
			}
			best = cost[s]
			bestTo = dag.SomeVertex(s)
		}

		cost[v] = dag.PathCost{Runtime: runtimes[v], Len: 1}.Add(best)
		parent[v] = bestTo
	}

	return cost, parent
}
