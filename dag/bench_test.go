package dag_test

import (
	"testing"

	"github.com/katalvlaran/critpath/dag"
)

// buildChain returns a Builder holding an n-vertex chain.
func buildChain(n int) *dag.Builder {
	b := dag.NewBuilder(n)
	for i := 0; i < n-1; i++ {
		_ = b.AddEdge(dag.VertexID(i), dag.VertexID(i+1))
	}

	return b
}

// BenchmarkBuilder_Build measures CSR construction plus the Kahn pass on a
// chain of N vertices.
func BenchmarkBuilder_Build(b *testing.B) {
	const n = 100_000
	builder := buildChain(n)

	b.ReportAllocs()
	b.SetBytes(int64(2*n - 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := builder.Build(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGraph_Reversed measures edge reversal on the same chain.
func BenchmarkGraph_Reversed(b *testing.B) {
	const n = 100_000
	g, err := buildChain(n).Build()
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*n - 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = g.Reversed()
	}
}
