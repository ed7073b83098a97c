package critpath

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/katalvlaran/critpath/dag"
)

// ComputeCriticalPathPotentials computes the critical path of deps under the
// per-vertex runtimes, and for every vertex on it the replacement cost: the
// overall critical-path cost had that vertex taken zero time.
//
// Returns the critical path as a vertex sequence, its cost, and the
// replacement costs aligned with the sequence. On an empty (or nil) graph
// all three results are empty. The replacement cost for position i is the
// maximum of the critical path with cp_i's runtime zeroed and the longest
// path in the graph that avoids cp_i entirely; the latter is computed for
// all positions in one heap-managed sweep rather than one longest-path pass
// per position.
//
// The function is total on its preconditions: deps is acyclic by
// construction and runtimes must hold one entry per vertex (a mismatch is a
// programming error and panics). It performs no I/O and allocates only
// O(V)-sized dense arrays plus the reversed graph; intermediates are
// released as soon as consumed to cap peak memory on large graphs.
//
// Determinism: for a given edge set and runtime vector the outputs are
// identical across runs. Ties in path cost are broken by path length, then
// by the deterministic edge-iteration and vertex-scan orders of dag.
//
// Complexity: O(V + E) graph passes plus O(V log V) for the sweep.
func ComputeCriticalPathPotentials(
	deps *dag.Graph,
	runtimes dag.VertexData[uint64],
) ([]dag.VertexID, dag.PathCost, []dag.PathCost) {
	if deps == nil || deps.NumVertices() == 0 {
		return nil, dag.PathCost{}, nil
	}
	if len(runtimes) != deps.NumVertices() {
		panic(fmt.Sprintf("critpath: runtimes length %d does not match %d vertices", len(runtimes), deps.NumVertices()))
	}

	rdeps := deps.Reversed()
	topo := deps.TopoOrder()

	// 1) Longest path starting at every vertex (towards the sinks). The
	//    parent pointers of this pass are never consulted; discard them
	//    immediately rather than holding a third O(V) array alive.
	revTopo := make([]dag.VertexID, len(topo))
	for i, v := range topo {
		revTopo[len(topo)-1-i] = v
	}
	costToSink, _ := FindLongestPaths(deps, revTopo, runtimes)

	// 2) Longest path ending at every vertex (from the sources), computed on
	//    the reversed graph; its parents are predecessors in deps.
	costFromSource, predecessors := FindLongestPaths(rdeps, topo, runtimes)

	// 3) The critical path ends at the vertex with the highest cost from a
	//    source; walk predecessors back from it. Predecessors are not needed
	//    afterwards.
	sink, criticalPathCost, ok := selectSink(costFromSource)
	if !ok {
		return nil, dag.PathCost{}, nil
	}
	criticalPath := reconstructCriticalPath(sink, criticalPathCost, predecessors)
	predecessors = nil

	// 4) For every vertex, the boundary positions of its validity interval:
	//    the last critical-path vertex with a path to it, and the first
	//    critical-path vertex it has a path to. Critical-path vertices mark
	//    themselves in both passes, which leaves their own interval empty.
	lastCPPredecessor := dag.NewVertexData(deps, NoCriticalPathIndex)
	for i := len(criticalPath) - 1; i >= 0; i-- {
		markReachable(deps, lastCPPredecessor, criticalPath[i], CriticalPathIndex(i))
	}

	firstCPSuccessor := dag.NewVertexData(deps, NoCriticalPathIndex)
	for i := 0; i < len(criticalPath); i++ {
		markReachable(rdeps, firstCPSuccessor, criticalPath[i], CriticalPathIndex(i))
	}

	// 5) Longest path through each vertex. Done in its own linear pass so
	//    the sweep below touches one array instead of three.
	verticesCost := dag.NewVertexData(deps, dag.PathCost{})
	for v := range verticesCost {
		own := dag.PathCost{Runtime: runtimes[v], Len: 1}
		verticesCost[v] = costFromSource[v].Add(costToSink[v]).Sub(own)
	}

	// 6) Lay the computation out as a work stream keyed by critical-path
	//    position: each vertex enters the candidate pool at the position
	//    where its longest path stops touching the critical-path prefix, and
	//    each position queries the pool after all of that position's
	//    arrivals.
	work := make([]workItem, 0, deps.NumVertices()+len(criticalPath))

	for i := range criticalPath {
		work = append(work, workItem{key: CriticalPathIndex(i), kind: workCompute})
	}

	for v := range lastCPPredecessor {
		validAt := CriticalPathIndex(0)
		if pred, ok := lastCPPredecessor[v].Get(); ok {
			validAt = pred.Successor()
		}

		work = append(work, workItem{
			key:       validAt,
			kind:      workNodeValid,
			idx:       dag.VertexID(v),
			invalidAt: firstCPSuccessor[v],
		})
	}

	// NodeValid sorts before Compute at equal keys; stability keeps the
	// remaining order a pure function of the input.
	sort.SliceStable(work, func(i, j int) bool {
		if work[i].key != work[j].key {
			return work[i].key < work[j].key
		}

		return work[i].kind < work[j].kind
	})

	// 7) Baseline: zeroing cp_i's runtime keeps the critical path itself as
	//    a candidate, cheaper by that runtime but no shorter.
	updated := make(CriticalPathVertexData[dag.PathCost], len(criticalPath))
	for i, v := range criticalPath {
		updated[i] = criticalPathCost.Sub(dag.PathCost{Runtime: runtimes[v], Len: 0})
	}

	// 8) Sweep. The max-heap holds the longest path through every currently
	//    valid vertex; entries whose invalid_at has passed are popped only
	//    when they surface at the top (each entry is pushed and popped at
	//    most once, so the lazy cleanup keeps the sweep near-linear).
	candidates := make(candidateHeap, 0, deps.NumVertices())

	for _, item := range work {
		if item.kind == workNodeValid {
			heap.Push(&candidates, candidate{cost: verticesCost[item.idx], invalidAt: item.invalidAt})

			continue
		}

		for len(candidates) > 0 {
			top := candidates[0]
			if invalid, ok := top.invalidAt.Get(); ok && invalid <= item.key {
				heap.Pop(&candidates)

				continue
			}

			if updated[item.key].Less(top.cost) {
				updated[item.key] = top.cost
			}

			break
		}
	}

	return criticalPath, criticalPathCost, updated
}

// markReachable marks every vertex reachable from start in g with idx,
// stopping at vertices already marked (by this walk or an earlier one).
// First writer wins, so callers control the recorded index by their visit
// order over the critical path.
//
// The walk uses an explicit worklist: recursion depth would equal the
// longest path of the DAG, which on million-vertex inputs overflows a goroutine
// stack long before the algorithm runs out of memory.
//
// Each vertex is marked at most once across all calls sharing one marks
// array, giving O(V + E) for the whole marking phase.
func markReachable(
	g *dag.Graph,
	marks dag.VertexData[OptionalCriticalPathIndex],
	start dag.VertexID,
	idx CriticalPathIndex,
) {
	if marks[start].IsSome() {
		return
	}
	marks[start] = SomeCriticalPathIndex(idx)

	stack := []dag.VertexID{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, s := range g.OutEdges(v) {
			if marks[s].IsSome() {
				continue
			}
			marks[s] = SomeCriticalPathIndex(idx)
			stack = append(stack, s)
		}
	}
}

// Work-stream item kinds. NodeValid must order before Compute at the same
// key so every arrival lands in the pool before that position's query.
const (
	workNodeValid = iota
	workCompute
)

// workItem is one event of the sweep, keyed by critical-path position.
// Tagged struct rather than an interface: two fixed variants, matched at a
// single site.
type workItem struct {
	key       CriticalPathIndex         // position this event fires at
	kind      int                       // workNodeValid or workCompute
	idx       dag.VertexID              // NodeValid: the vertex entering the pool
	invalidAt OptionalCriticalPathIndex // NodeValid: position the vertex expires at, if any
}

// candidate is a pool entry: the longest path through some vertex and the
// critical-path position at which that path starts touching the critical
// path again (none = never).
type candidate struct {
	cost      dag.PathCost
	invalidAt OptionalCriticalPathIndex
}

// candidateHeap is a max-heap of candidates ordered by cost. Stale entries
// are not removed when they expire; Compute pops them lazily from the top.
type candidateHeap []candidate

// Len returns the number of pooled candidates.
func (h candidateHeap) Len() int { return len(h) }

// Less orders i before j when i's cost is strictly greater: container/heap
// pops the minimum under Less, so inverting the comparison yields a
// max-heap.
func (h candidateHeap) Less(i, j int) bool { return h[j].cost.Less(h[i].cost) }

// Swap swaps two pooled candidates.
func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; used only via heap.Push.
func (h *candidateHeap) Push(x any) { *h = append(*h, x.(candidate)) }

// Pop removes and returns the last element; used only via heap.Pop.
func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
