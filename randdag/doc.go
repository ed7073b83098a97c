// Package randdag generates seeded random DAGs with per-vertex runtimes,
// the fixtures behind this module's property tests and benchmarks.
//
// Overview:
//
//   - Generate samples an Erdős–Rényi-like DAG over n vertices: every
//     ordered pair i < j carries edge i→j with probability p, so the output
//     is acyclic by construction and 0..n-1 is one of its topological
//     orders.
//   - Runtimes are drawn uniformly from [0, maxRuntime].
//   - Everything is driven by a single seeded math/rand source: a fixed
//     (n, options) pair reproduces the same graph and runtimes on every
//     run, which lets failing property tests be replayed from their seed.
//
// Key features:
//
//   - Functional options: WithEdgeProbability, WithMaxRuntime, WithSeed.
//   - Near-linear sampling: geometric gap skipping visits only the included
//     pairs, O(n + E) expected, so million-vertex fixtures stay cheap.
//   - Sentinel errors only: ErrTooFewVertices, ErrInvalidProbability;
//     branch with errors.Is.
//
// Example:
//
//	g, runtimes, err := randdag.Generate(1_000,
//	    randdag.WithEdgeProbability(0.01),
//	    randdag.WithSeed(42),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, cost, potentials := critpath.ComputeCriticalPathPotentials(g, runtimes)
package randdag
