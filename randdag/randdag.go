// SPDX-License-Identifier: MIT
// Package: critpath/randdag
//
// randdag.go — seeded random DAG generation with per-vertex runtimes.
//
// Canonical model:
//   - Erdős–Rényi-like over ordered pairs: for every i < j, include edge
//     i→j independently with probability p. Edges only point from lower to
//     higher id, so the output is acyclic by construction and 0..n-1 is a
//     topological order.
//   - Pairs are visited by geometric gap sampling (skip lengths drawn from
//     the geometric distribution of the first success), which costs
//     O(n + E) expected instead of one Bernoulli trial per pair.
//   - Runtimes are drawn uniformly from [0, maxRuntime].
//
// Contract:
//   - n ≥ 0 (else ErrTooFewVertices); n == 0 yields the empty graph.
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   - Stable sampling order: rows i asc, gaps within a row left to right;
//     runtimes drawn after all edges. Fixed seed/options give identical
//     output on every run.

package randdag

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/critpath/dag"
)

// Sentinel errors for generator validation.
var (
	// ErrTooFewVertices indicates a negative vertex count.
	ErrTooFewVertices = errors.New("randdag: vertex count must be non-negative")

	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("randdag: probability out of range")
)

// Generator defaults (no magic literals at use sites).
const (
	// DefaultEdgeProbability is the per-pair edge probability when
	// WithEdgeProbability is not supplied; it keeps large graphs sparse.
	DefaultEdgeProbability = 0.05

	// DefaultMaxRuntime is the inclusive upper bound of generated runtimes.
	DefaultMaxRuntime uint64 = 10_000

	// DefaultSeed seeds the generator when WithSeed is not supplied, so the
	// default output is reproducible.
	DefaultSeed int64 = 1
)

// Option configures Generate.
type Option func(*options)

// options holds the resolved generator configuration.
type options struct {
	probability float64 // per-ordered-pair edge probability
	maxRuntime  uint64  // inclusive runtime upper bound
	seed        int64   // RNG seed
}

// defaultOptions returns the generator defaults.
func defaultOptions() options {
	return options{
		probability: DefaultEdgeProbability,
		maxRuntime:  DefaultMaxRuntime,
		seed:        DefaultSeed,
	}
}

// WithEdgeProbability returns an Option setting the per-pair edge
// probability. Values outside [0, 1] are rejected by Generate with
// ErrInvalidProbability.
func WithEdgeProbability(p float64) Option {
	return func(o *options) {
		o.probability = p
	}
}

// WithMaxRuntime returns an Option setting the inclusive upper bound for
// generated runtimes. Zero makes every runtime zero.
func WithMaxRuntime(max uint64) Option {
	return func(o *options) {
		o.maxRuntime = max
	}
}

// WithSeed returns an Option replacing the default RNG seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// Generate samples a random DAG over n vertices together with a runtime per
// vertex.
//
// Edges follow the ordered-pair model documented in the file header, so the
// result always passes dag.Builder's acyclicity check. The same (n, options)
// pair generates the same graph and runtimes on every run.
//
// Complexity: O(n + E) expected sampling + O(V + E log E) graph construction.
func Generate(n int, opts ...Option) (*dag.Graph, dag.VertexData[uint64], error) {
	// 1) Resolve and validate options (fail fast, no side effects).
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if n < 0 {
		return nil, nil, fmt.Errorf("randdag: Generate: n=%d: %w", n, ErrTooFewVertices)
	}
	if cfg.probability < 0 || cfg.probability > 1 {
		return nil, nil, fmt.Errorf("randdag: Generate: p=%.6f not in [0,1]: %w", cfg.probability, ErrInvalidProbability)
	}

	rng := rand.New(rand.NewSource(cfg.seed))

	// 2) Edge sampling, row by row. Within row i the next included column is
	//    found by jumping a geometric gap instead of flipping a coin per
	//    pair: skip = 1 + ⌊log(1−u) / log(1−p)⌋ lands on the first success.
	//    p = 0 produces no edges; p = 1 degenerates to skip 1 (every pair).
	b := dag.NewBuilder(n)
	if cfg.probability > 0 {
		logq := math.Log1p(-cfg.probability) // log(1-p); -Inf when p == 1
		for i := 0; i < n; i++ {
			for j := i; ; {
				gap := 1
				if cfg.probability < 1 {
					gap += int(math.Floor(math.Log(1-rng.Float64()) / logq))
				}
				j += gap
				if j >= n {
					break
				}
				if err := b.AddEdge(dag.VertexID(i), dag.VertexID(j)); err != nil {
					return nil, nil, fmt.Errorf("randdag: Generate: AddEdge(%d,%d): %w", i, j, err)
				}
			}
		}
	}

	g, err := b.Build()
	if err != nil {
		// Unreachable while all edges satisfy i < j.
		return nil, nil, fmt.Errorf("randdag: Generate: %w", err)
	}

	// 3) Runtimes, drawn after all edge sampling.
	runtimes := dag.NewVertexData(g, uint64(0))
	if cfg.maxRuntime > 0 {
		bound := cfg.maxRuntime
		for v := range runtimes {
			if bound == math.MaxUint64 {
				runtimes[v] = rng.Uint64()

				continue
			}
			runtimes[v] = rng.Uint64() % (bound + 1)
		}
	}

	return g, runtimes, nil
}
