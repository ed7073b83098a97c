package randdag_test

import (
	"fmt"

	"github.com/katalvlaran/critpath/randdag"
)

// ExampleGenerate builds a reproducible random fixture: same seed, same
// graph, every run.
func ExampleGenerate() {
	g, runtimes, err := randdag.Generate(100,
		randdag.WithEdgeProbability(0.05),
		randdag.WithSeed(42),
	)
	if err != nil {
		fmt.Println("generate failed:", err)

		return
	}

	fmt.Println(g.NumVertices(), len(runtimes))
	// Output: 100 100
}
