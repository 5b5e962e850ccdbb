// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// impl_random_sparse.go: Erdős–Rényi G(n,p).

package builder

import (
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse includes each unordered pair {i,j}, i<j, independently with
// probability p. Pairs are visited in lexicographic order so a fixed seed
// reproduces the same graph. p=0 and p=1 need no RNG. Above p ≈ 6/n the
// result is almost surely non-planar, which the planar package rejects
// through its edge bound before any DFS.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource.
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addVertices(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMin:
					continue
				case p < probMax && cfg.rng.Float64() >= p:
					continue
				}
				if err = connect(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
