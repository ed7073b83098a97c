package critpath

import (
	"github.com/katalvlaran/critpath/dag"
)

// selectSink returns the vertex with the maximum cost-from-source and that
// cost. Ties are broken by the lowest VertexID: the scan runs in ascending
// id order and replaces only on strict improvement. ok is false when the
// graph has no vertices.
func selectSink(costFromSource dag.VertexData[dag.PathCost]) (sink dag.VertexID, best dag.PathCost, ok bool) {
	for v, c := range costFromSource {
		if !ok || best.Less(c) {
			sink, best, ok = dag.VertexID(v), c, true
		}
	}

	return sink, best, ok
}

// reconstructCriticalPath materializes the critical path ending at sink by
// walking predecessor pointers backwards from it. The result has length
// cost.Len and is indexed by CriticalPathIndex; position cost.Len-1 is the
// sink itself.
func reconstructCriticalPath(
	sink dag.VertexID,
	cost dag.PathCost,
	predecessors dag.VertexData[dag.OptionalVertexID],
) CriticalPathVertexData[dag.VertexID] {
	length := int(cost.Len)
	path := make(CriticalPathVertexData[dag.VertexID], length)

	v := sink
	for i := length - 1; ; i-- {
		path[i] = v
		if i == 0 {
			break
		}

		prev, ok := predecessors[v].Get()
		if !ok {
			// cost.Len promised i more vertices behind v; a missing pointer
			// means the longest-path pass is inconsistent with its costs.
			panic("critpath: critical path shorter than its recorded length")
		}
		v = prev
	}

	return path
}
