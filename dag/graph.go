// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Builder and the immutable CSR Graph: edge accumulation, validation,
//       out-edge iteration, reversal, and the cached topological order.
// Policy:
//   - Graph is immutable after Build; read-only sharing across goroutines is
//     safe with no locking.
//   - All iteration orders are deterministic given the edge set alone
//     (ascending target id within a vertex), independent of insertion order.
//   - Out-of-range VertexIDs after construction are programming errors and
//     panic via slice bounds; only Builder.AddEdge reports them as errors.

package dag

import (
	"fmt"
	"sort"
)

// Builder accumulates edges for a fixed vertex set [0, n) and produces an
// immutable Graph.
//
// The zero Builder is not usable; create one with NewBuilder.
type Builder struct {
	n    int        // vertex count, fixed at construction
	from []VertexID // edge sources, parallel to to
	to   []VertexID // edge targets, parallel to from
}

// NewBuilder returns a Builder for a graph over exactly n vertices with ids
// 0..n-1. A negative n is a programming error and panics.
//
// Complexity: O(1).
func NewBuilder(n int) *Builder {
	if n < 0 {
		panic(fmt.Sprintf("dag: NewBuilder: negative vertex count %d", n))
	}

	return &Builder{n: n}
}

// NumVertices returns the fixed vertex count of the graph under construction.
func (b *Builder) NumVertices() int { return b.n }

// AddEdge records the directed edge from→to.
//
// Returns ErrVertexRange (wrapped with both endpoints) when either endpoint
// lies outside [0, NumVertices). Duplicate edges are accepted; they are
// harmless to every algorithm in this module.
//
// Complexity: amortized O(1).
func (b *Builder) AddEdge(from, to VertexID) error {
	if int(from) >= b.n || int(to) >= b.n {
		return fmt.Errorf("dag: AddEdge(%d, %d) with %d vertices: %w", from, to, b.n, ErrVertexRange)
	}

	b.from = append(b.from, from)
	b.to = append(b.to, to)

	return nil
}

// Build validates the accumulated edge set and freezes it into a Graph.
//
// Build normalizes edges into CSR adjacency (sorted by (from, to), so
// OutEdges yields ascending target ids regardless of AddEdge order) and runs
// one Kahn pass over the result. The pass serves double duty: it rejects
// cyclic input with ErrCycleDetected, and its output is cached as the
// graph's topological order so TopoOrder never recomputes it.
//
// The Builder remains usable afterwards; the returned Graph shares no
// mutable state with it.
//
// Complexity: O(V + E log E) time, O(V + E) space.
func (b *Builder) Build() (*Graph, error) {
	// 1) Snapshot and sort the edge list by (from, to). Sorting both
	//    normalizes OutEdges order and lets the CSR fill below run linearly.
	m := len(b.from)
	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		ei, ej := order[i], order[j]
		if b.from[ei] != b.from[ej] {
			return b.from[ei] < b.from[ej]
		}

		return b.to[ei] < b.to[ej]
	})

	// 2) Build CSR offsets and targets from the sorted edge sequence.
	offsets := make([]int, b.n+1)
	for _, e := range order {
		offsets[b.from[e]+1]++
	}
	for v := 1; v <= b.n; v++ {
		offsets[v] += offsets[v-1]
	}
	targets := make([]VertexID, m)
	for i, e := range order {
		targets[i] = b.to[e]
	}

	g := &Graph{offsets: offsets, targets: targets}

	// 3) Validate acyclicity and cache the topological order.
	topo, err := kahnOrder(g)
	if err != nil {
		return nil, err
	}
	g.topo = topo

	return g, nil
}

// Graph is an immutable directed acyclic graph over the dense vertex set
// [0, NumVertices), stored as CSR adjacency.
//
// Contract:
//   - Indexing by VertexID is O(1).
//   - OutEdges(v) yields successors in ascending id order, stable across
//     calls and across graphs built from the same edge set.
//   - The graph is acyclic: Build rejected anything else.
//
// Concurrency: immutable after Build; any number of goroutines may read one
// Graph concurrently without synchronization.
type Graph struct {
	offsets []int      // CSR row offsets, length NumVertices+1
	targets []VertexID // CSR column indices (successor ids)
	topo    []VertexID // cached topological order, length NumVertices
}

// NumVertices returns the number of vertices V.
// Complexity: O(1).
func (g *Graph) NumVertices() int {
	return len(g.offsets) - 1
}

// NumEdges returns the number of edges E.
// Complexity: O(1).
func (g *Graph) NumEdges() int {
	return len(g.targets)
}

// OutEdges returns the successors of v in ascending id order.
//
// The returned slice aliases the graph's internal storage and must be
// treated as read-only.
//
// Complexity: O(1).
func (g *Graph) OutEdges(v VertexID) []VertexID {
	return g.targets[g.offsets[v]:g.offsets[v+1]]
}

// TopoOrder returns a topological order of all vertices: for every edge
// u→v, u appears before v. The order is computed once at Build time; each
// call returns a fresh copy the caller may mutate freely.
//
// Complexity: O(V).
func (g *Graph) TopoOrder() []VertexID {
	out := make([]VertexID, len(g.topo))
	copy(out, g.topo)

	return out
}

// Reversed returns a new Graph with the same vertex set and every edge
// reversed. The result shares no mutable state with g; its cached
// topological order is the reverse of g's.
//
// Complexity: O(V + E) time and space.
func (g *Graph) Reversed() *Graph {
	n := g.NumVertices()

	// 1) Count in-degrees of g, which become out-degrees of the reversal.
	offsets := make([]int, n+1)
	for _, t := range g.targets {
		offsets[t+1]++
	}
	for v := 1; v <= n; v++ {
		offsets[v] += offsets[v-1]
	}

	// 2) Fill targets. Scanning sources in ascending order writes each
	//    reversed adjacency list in ascending id order, preserving the
	//    OutEdges determinism contract without a second sort.
	next := make([]int, n)
	copy(next, offsets[:n])
	targets := make([]VertexID, len(g.targets))
	for u := 0; u < n; u++ {
		for _, t := range g.OutEdges(VertexID(u)) {
			targets[next[t]] = VertexID(u)
			next[t]++
		}
	}

	// 3) A topological order of the reversal is g's order read backwards.
	topo := make([]VertexID, n)
	for i, v := range g.topo {
		topo[n-1-i] = v
	}

	return &Graph{offsets: offsets, targets: targets, topo: topo}
}
