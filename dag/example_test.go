package dag_test

import (
	"fmt"

	"github.com/katalvlaran/critpath/dag"
)

// ExampleBuilder builds a diamond DAG and prints its topological order.
func ExampleBuilder() {
	b := dag.NewBuilder(4)
	_ = b.AddEdge(0, 1)
	_ = b.AddEdge(0, 2)
	_ = b.AddEdge(1, 3)
	_ = b.AddEdge(2, 3)

	g, err := b.Build()
	if err != nil {
		fmt.Println("build failed:", err)

		return
	}

	fmt.Println(g.TopoOrder())
	fmt.Println(g.OutEdges(0))
	// Output:
	// [0 1 2 3]
	// [1 2]
}

// ExamplePathCost_Less shows the runtime-major ordering with the length
// tie-break.
func ExamplePathCost_Less() {
	short := dag.PathCost{Runtime: 12, Len: 2}
	long := dag.PathCost{Runtime: 12, Len: 3}

	fmt.Println(short.Less(long))
	fmt.Println(long.Less(short))
	// Output:
	// true
	// false
}
