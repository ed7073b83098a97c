// Package dag provides the dense DAG substrate used by the critical-path
// analyses in this module: integer vertex ids, an immutable CSR graph,
// per-vertex side-arrays, and the vertex-weighted PathCost value type.
//
// Overview:
//
//   - Vertices are dense integers in [0, V), created by Builder and usable
//     as O(1) indices into any VertexData allocated from the graph.
//   - Builder accumulates edges and freezes them with Build, which rejects
//     cyclic input (ErrCycleDetected) and caches a topological order in the
//     same pass.
//   - Graph is immutable afterwards: OutEdges, Reversed, and TopoOrder never
//     fail and never observe concurrent mutation, so independent goroutines
//     may share one Graph without locks.
//   - PathCost is the lexicographic (runtime, length) pair under which
//     "longest path" is measured; ties in runtime go to the longer path.
//
// Determinism:
//
//   - OutEdges(v) yields ascending target ids, a pure function of the edge
//     set (insertion order is irrelevant).
//   - TopoOrder of a built Graph is Kahn's algorithm with a FIFO
//     ready-queue seeded in ascending id order; a Graph from Reversed
//     carries the original's order read backwards. Both are pure
//     functions of the edge set.
//
// Complexity:
//
//   - Build: O(V + E log E) time, O(V + E) space.
//   - OutEdges: O(1). Reversed: O(V + E). TopoOrder: O(V) (cached).
//   - NewVertexData: O(V).
//
// Errors (sentinel):
//
//   - ErrCycleDetected — Build found a cycle.
//   - ErrVertexRange   — AddEdge endpoint outside [0, V).
//
// After construction nothing fails: a VertexID outside [0, V) is a
// programming error and panics via slice bounds, not a reportable
// condition.
package dag
