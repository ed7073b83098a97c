// Package critpath defines the index types used to address positions on a
// critical path, and the dense side-arrays keyed by them.
//
// A critical path of length L is addressed by CriticalPathIndex values in
// [0, L). OptionalCriticalPathIndex packs "no position" and a position into
// a single word, which keeps the two O(V) marking arrays of the potentials
// computation at four bytes per vertex on million-vertex graphs.
package critpath

// CriticalPathIndex is a dense position on the critical path, in [0, L).
// It is totally ordered by the underlying integer.
type CriticalPathIndex uint32

// Successor returns the next critical-path position, i+1.
func (i CriticalPathIndex) Successor() CriticalPathIndex {
	return i + 1
}

// OptionalCriticalPathIndex is either "none" or a CriticalPathIndex, packed
// into one word: the zero value is none, Some(i) is stored as i+1.
type OptionalCriticalPathIndex uint32

// NoCriticalPathIndex is the none value of OptionalCriticalPathIndex.
const NoCriticalPathIndex OptionalCriticalPathIndex = 0

// SomeCriticalPathIndex wraps i into an OptionalCriticalPathIndex.
func SomeCriticalPathIndex(i CriticalPathIndex) OptionalCriticalPathIndex {
	return OptionalCriticalPathIndex(i) + 1
}

// IsSome reports whether o holds a CriticalPathIndex.
func (o OptionalCriticalPathIndex) IsSome() bool {
	return o != NoCriticalPathIndex
}

// Get returns the held CriticalPathIndex and true, or (0, false) when o is
// none.
func (o OptionalCriticalPathIndex) Get() (CriticalPathIndex, bool) {
	if o == NoCriticalPathIndex {
		return 0, false
	}

	return CriticalPathIndex(o - 1), true
}

// CriticalPathVertexData is a total map from CriticalPathIndex to T, stored
// densely. Index it directly: data[i]. Same shape as dag.VertexData but
// keyed on critical-path position.
type CriticalPathVertexData[T any] []T
