// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Core value types for the dense DAG substrate: VertexID, OptionalVertexID,
//       PathCost, and the sentinel errors of the dag package.
// Policy:
//   - Value types only; no graph state lives here.
//   - All ordering and arithmetic on PathCost is total and documented.
//   - Underflow in PathCost.Sub is a programming error and panics.

package dag

import (
	"errors"
	"fmt"
)

// Sentinel errors for DAG construction.
var (
	// ErrCycleDetected indicates that Build found a cycle: the edge set does
	// not admit a topological order.
	ErrCycleDetected = errors.New("dag: cycle detected")

	// ErrVertexRange indicates an edge endpoint outside [0, NumVertices).
	ErrVertexRange = errors.New("dag: vertex id out of range")
)

// VertexID is a dense vertex identifier in [0, V).
//
// VertexIDs are created by Builder and are valid indices into every
// VertexData allocated from the graph that produced them. They are totally
// ordered by the underlying integer.
type VertexID uint32

// OptionalVertexID is either "none" or a VertexID, packed into one word.
//
// The zero value is none; Some(v) is stored as v+1. The packing keeps dense
// parent-pointer arrays at four bytes per vertex.
type OptionalVertexID uint32

// NoVertex is the none value of OptionalVertexID.
const NoVertex OptionalVertexID = 0

// SomeVertex wraps v into an OptionalVertexID.
func SomeVertex(v VertexID) OptionalVertexID {
	return OptionalVertexID(v) + 1
}

// IsSome reports whether o holds a VertexID.
func (o OptionalVertexID) IsSome() bool {
	return o != NoVertex
}

// Get returns the held VertexID and true, or (0, false) when o is none.
func (o OptionalVertexID) Get() (VertexID, bool) {
	if o == NoVertex {
		return 0, false
	}

	return VertexID(o - 1), true
}

// PathCost is the cost of a vertex-weighted path: the sum of runtimes along
// the path and the number of vertices on it.
//
// PathCosts are ordered lexicographically: first by Runtime, ties broken by
// Len, so among equal-runtime paths the longer one ranks higher. The ordering
// is observable (it decides which path is "the" critical path) and must not
// be changed.
//
// The zero value (0, 0) is the identity of Add.
type PathCost struct {
	// Runtime is the summed per-vertex runtime along the path.
	Runtime uint64

	// Len is the number of vertices on the path.
	Len uint32
}

// Add returns the componentwise sum c + o.
// Complexity: O(1).
func (c PathCost) Add(o PathCost) PathCost {
	return PathCost{Runtime: c.Runtime + o.Runtime, Len: c.Len + o.Len}
}

// Sub returns the componentwise difference c − o.
//
// Underflow in either component is a programming error: Sub panics with a
// diagnostic rather than wrapping around. Callers subtract only quantities
// already contained in c (a vertex's own runtime from a path that includes
// the vertex), so a failing Sub means the surrounding algorithm is broken.
// Complexity: O(1).
func (c PathCost) Sub(o PathCost) PathCost {
	if c.Runtime < o.Runtime || c.Len < o.Len {
		panic(fmt.Sprintf("dag: PathCost underflow: (%d,%d) - (%d,%d)", c.Runtime, c.Len, o.Runtime, o.Len))
	}

	return PathCost{Runtime: c.Runtime - o.Runtime, Len: c.Len - o.Len}
}

// Less reports whether c orders strictly before o under the lexicographic
// (Runtime, Len) ordering.
// Complexity: O(1).
func (c PathCost) Less(o PathCost) bool {
	if c.Runtime != o.Runtime {
		return c.Runtime < o.Runtime
	}

	return c.Len < o.Len
}
