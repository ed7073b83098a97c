// Package critpath computes critical paths and replacement costs over
// vertex-weighted DAGs of build actions.
//
// Overview:
//
//   - The critical path of a DAG under per-vertex runtimes is the path
//     maximizing dag.PathCost: summed runtime first, path length as the
//     tie-break.
//   - The replacement cost of a critical-path vertex answers a
//     counterfactual: what would the overall critical-path cost be had this
//     vertex taken zero time? It is the honest measure of how much latency
//     an operator can recover by optimizing that one action — shrinking a
//     vertex only helps until some other path through the graph takes over.
//
// The naive way to answer the counterfactual recomputes longest paths once
// per critical-path vertex, O(|CP| · (V+E)) — unusable at a million
// vertices. ComputeCriticalPathPotentials reaches the same answers with a
// constant number of graph traversals plus one heap-managed sweep:
//
//  1. Two longest-path passes (forward and on the reversed graph) give the
//     longest path from and to every vertex; their sum, minus the vertex's
//     own contribution, is the longest path through it.
//  2. Two marking walks from the critical-path vertices bound, for every
//     vertex v, the half-open interval of critical-path positions whose
//     removal leaves v's longest path untouched by the critical path.
//  3. A single sweep over positions, with a lazily-cleaned max-heap of
//     currently valid vertices, takes the best of that pool and the
//     "keep the critical path, just cheaper" baseline at each position.
//
// Complexity:
//
//   - Time:  O(V + E) for the passes, O(V log V) for the sweep.
//   - Space: a small constant number of O(V) dense arrays plus O(E) for the
//     reversed graph; intermediates are released as soon as consumed.
//
// Determinism:
//
//   - All tie-breaks (edge iteration, sink selection, longest-path argmax,
//     work-stream ordering) are pure functions of the edge set and runtime
//     vector, so equal inputs produce identical outputs across runs.
//
// Error handling:
//
//   - The package is total on its preconditions and returns no errors.
//     Acyclicity is enforced at dag.Builder.Build; a runtime vector of the
//     wrong length or a PathCost underflow is a programming error and
//     panics with a diagnostic.
//
// Concurrency:
//
//   - Single-threaded and synchronous; no I/O, no cancellation surface.
//     Inputs are read-only and outputs owned, so independent graphs may be
//     processed by independent goroutines sharing nothing.
package critpath
